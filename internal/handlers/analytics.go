package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetAnalytics serves the static aggregate dashboard payload.
func GetAnalytics(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"marketTrends": echo.Map{
			"labels": []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			"datasets": []echo.Map{
				{"label": "Average Price", "data": []int{650000, 680000, 720000, 710000, 740000, 760000}},
			},
		},
		"propertyTypes": echo.Map{
			"labels": []string{"House", "Apartment", "Villa", "Condo"},
			"datasets": []echo.Map{
				{"data": []int{45, 25, 20, 10}},
			},
		},
		"salesVolume": echo.Map{
			"labels": []string{"Q1", "Q2", "Q3", "Q4"},
			"datasets": []echo.Map{
				{"label": "Sales", "data": []int{120, 150, 180, 200}},
			},
		},
		"locationPopularity": []echo.Map{
			{"location": "Beverly Hills", "count": 45, "growth": "+12%"},
			{"location": "Malibu", "count": 32, "growth": "+8%"},
			{"location": "Santa Monica", "count": 28, "growth": "+15%"},
			{"location": "Hollywood", "count": 22, "growth": "+5%"},
			{"location": "Downtown LA", "count": 18, "growth": "+3%"},
		},
	})
}
