// Package query translates listing query parameters into a filtered,
// ordered, paged record set.
package query

import (
	"gorm.io/gorm"

	"estatehub/internal/models"
)

// Params are the supported listing filters. Nil pointer fields mean the
// filter was not supplied; all supplied filters are conjunctive.
type Params struct {
	Page     int
	PerPage  int
	Status   string
	Type     string
	MinPrice *float64
	MaxPrice *float64
	Bedrooms *int
	SortBy   string
}

// Page is one page of matching properties together with the overall match
// counts.
type Page struct {
	Items       []models.Property
	Total       int64
	Pages       int
	CurrentPage int
}

// sortClauses is the closed set of recognized sort keys. An absent or
// unrecognized key applies no ORDER BY and leaves row order to the storage
// engine.
var sortClauses = map[string]string{
	"price-high": "price DESC",
	"price-low":  "price ASC",
	"newest":     "created_at DESC",
	"oldest":     "created_at ASC",
	"size-large": "area DESC",
	"size-small": "area ASC",
}

func (p Params) apply(db *gorm.DB) *gorm.DB {
	q := db.Model(&models.Property{})
	if p.Status != "" {
		q = q.Where("status = ?", p.Status)
	}
	if p.Type != "" {
		q = q.Where("type = ?", p.Type)
	}
	if p.MinPrice != nil {
		q = q.Where("price >= ?", *p.MinPrice)
	}
	if p.MaxPrice != nil {
		q = q.Where("price <= ?", *p.MaxPrice)
	}
	if p.Bedrooms != nil {
		q = q.Where("bedrooms >= ?", *p.Bedrooms)
	}
	return q
}

// Run executes the filtered, sorted, paginated listing query. Page and
// PerPage are handed to OFFSET/LIMIT as-is; an out-of-range page comes back
// as an empty item slice.
func Run(db *gorm.DB, p Params) (*Page, error) {
	if p.Page == 0 {
		p.Page = 1
	}

	var total int64
	if err := p.apply(db).Count(&total).Error; err != nil {
		return nil, err
	}

	q := p.apply(db)
	if clause, ok := sortClauses[p.SortBy]; ok {
		q = q.Order(clause)
	}

	var items []models.Property
	offset := (p.Page - 1) * p.PerPage
	if err := q.Offset(offset).Limit(p.PerPage).Find(&items).Error; err != nil {
		return nil, err
	}

	pages := 0
	if p.PerPage > 0 {
		pages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	}

	return &Page{
		Items:       items,
		Total:       total,
		Pages:       pages,
		CurrentPage: p.Page,
	}, nil
}
