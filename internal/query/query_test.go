package query_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"estatehub/internal/models"
	"estatehub/internal/query"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Property{}))
	return db
}

func seed(t *testing.T, db *gorm.DB, props ...models.Property) {
	for i := range props {
		require.NoError(t, db.Create(&props[i]).Error)
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(n int) *int           { return &n }

func TestFilterMinPriceInclusive(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		models.Property{Title: "a", Price: 99999},
		models.Property{Title: "b", Price: 100000},
		models.Property{Title: "c", Price: 250000},
	)

	page, err := query.Run(db, query.Params{PerPage: 10, MinPrice: floatPtr(100000)})
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.Total)
	for _, p := range page.Items {
		assert.GreaterOrEqual(t, p.Price, 100000.0)
	}
}

func TestFiltersAreConjunctive(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		models.Property{Title: "match", Status: "for-sale", Type: "house", Price: 400000, Bedrooms: 3},
		models.Property{Title: "wrong-status", Status: "sold", Type: "house", Price: 400000, Bedrooms: 3},
		models.Property{Title: "wrong-type", Status: "for-sale", Type: "condo", Price: 400000, Bedrooms: 3},
		models.Property{Title: "too-cheap", Status: "for-sale", Type: "house", Price: 100000, Bedrooms: 3},
		models.Property{Title: "too-few-beds", Status: "for-sale", Type: "house", Price: 400000, Bedrooms: 1},
	)

	page, err := query.Run(db, query.Params{
		PerPage:  10,
		Status:   "for-sale",
		Type:     "house",
		MinPrice: floatPtr(200000),
		MaxPrice: floatPtr(500000),
		Bedrooms: intPtr(2),
	})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "match", page.Items[0].Title)
}

func TestBedroomsIsLowerBound(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		models.Property{Title: "studio", Bedrooms: 0},
		models.Property{Title: "two", Bedrooms: 2},
		models.Property{Title: "five", Bedrooms: 5},
	)

	page, err := query.Run(db, query.Params{PerPage: 10, Bedrooms: intPtr(2)})
	require.NoError(t, err)

	assert.Equal(t, int64(2), page.Total)
	for _, p := range page.Items {
		assert.GreaterOrEqual(t, p.Bedrooms, 2)
	}
}

func TestSortKeys(t *testing.T) {
	db := setupTestDB(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	seed(t, db,
		models.Property{Title: "old-cheap-small", Price: 100, Area: 50, CreatedAt: base},
		models.Property{Title: "mid", Price: 200, Area: 150, CreatedAt: base.AddDate(0, 1, 0)},
		models.Property{Title: "new-dear-big", Price: 300, Area: 250, CreatedAt: base.AddDate(0, 2, 0)},
	)

	cases := map[string][]string{
		"price-high": {"new-dear-big", "mid", "old-cheap-small"},
		"price-low":  {"old-cheap-small", "mid", "new-dear-big"},
		"newest":     {"new-dear-big", "mid", "old-cheap-small"},
		"oldest":     {"old-cheap-small", "mid", "new-dear-big"},
		"size-large": {"new-dear-big", "mid", "old-cheap-small"},
		"size-small": {"old-cheap-small", "mid", "new-dear-big"},
	}

	for key, want := range cases {
		page, err := query.Run(db, query.Params{PerPage: 10, SortBy: key})
		require.NoError(t, err, key)

		got := make([]string, len(page.Items))
		for i, p := range page.Items {
			got[i] = p.Title
		}
		assert.Equal(t, want, got, key)
	}
}

func TestUnrecognizedSortKeyReturnsAllRows(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db,
		models.Property{Title: "a"},
		models.Property{Title: "b"},
	)

	page, err := query.Run(db, query.Params{PerPage: 10, SortBy: "price"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Items, 2)
}

func TestPaginationCoversAllRowsWithoutDuplicates(t *testing.T) {
	db := setupTestDB(t)
	const n, perPage = 7, 3

	for i := 0; i < n; i++ {
		seed(t, db, models.Property{Title: fmt.Sprintf("p%d", i), Price: float64(100 * (i + 1))})
	}

	first, err := query.Run(db, query.Params{Page: 1, PerPage: perPage, SortBy: "price-low"})
	require.NoError(t, err)
	assert.Equal(t, int64(n), first.Total)
	assert.Equal(t, 3, first.Pages) // ceil(7/3)
	assert.Equal(t, 1, first.CurrentPage)

	seen := map[string]bool{}
	for p := 1; p <= first.Pages; p++ {
		page, err := query.Run(db, query.Params{Page: p, PerPage: perPage, SortBy: "price-low"})
		require.NoError(t, err)
		for _, item := range page.Items {
			assert.False(t, seen[item.Title], "duplicate %s", item.Title)
			seen[item.Title] = true
		}
	}
	assert.Len(t, seen, n)
}

func TestPageBeyondRangeIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, models.Property{Title: "only"})

	page, err := query.Run(db, query.Params{Page: 5, PerPage: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 5, page.CurrentPage)
}

func TestDefaults(t *testing.T) {
	db := setupTestDB(t)
	seed(t, db, models.Property{Title: "only"})

	page, err := query.Run(db, query.Params{PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.Pages)
}
