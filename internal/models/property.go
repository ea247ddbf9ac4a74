package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

// Property represents a real-estate listing
type Property struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Location    string `gorm:"size:200;not null"`
	Price       float64
	Status      string `gorm:"size:50;not null"`
	Type        string `gorm:"size:50;not null"`
	Bedrooms    int
	Bathrooms   float64
	Area        int
	YearBuilt   *int
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// Images keeps display order; the column is a real text[] rather
	// than a serialized blob.
	Images     pq.StringArray `gorm:"type:text[]"`
	Amenities  string         `gorm:"type:text"`
	AgentName  string         `gorm:"size:100"`
	AgentPhone string         `gorm:"size:20"`
	AgentEmail string         `gorm:"size:120"`
}

// Agent is the nested contact block in the property JSON shape.
type Agent struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// PropertyResponse is the wire shape of a property. Amenities are exposed
// as a list while being stored comma-joined, and both timestamps go out as
// ISO-8601 strings.
type PropertyResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Status      string   `json:"status"`
	Type        string   `json:"type"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   float64  `json:"bathrooms"`
	Area        int      `json:"area"`
	YearBuilt   *int     `json:"yearBuilt"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Agent       Agent    `json:"agent"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

func (p *Property) ToResponse() PropertyResponse {
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}

	amenities := []string{}
	if p.Amenities != "" {
		amenities = strings.Split(p.Amenities, ",")
	}

	return PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Location:    p.Location,
		Price:       p.Price,
		Status:      p.Status,
		Type:        p.Type,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Area:        p.Area,
		YearBuilt:   p.YearBuilt,
		Description: p.Description,
		Images:      images,
		Amenities:   amenities,
		Agent: Agent{
			Name:  p.AgentName,
			Phone: p.AgentPhone,
			Email: p.AgentEmail,
		},
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}
