package handlers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"estatehub/internal/config"
	"estatehub/internal/models"
	"estatehub/internal/query"
	"estatehub/internal/upload"
)

type PropertyController struct {
	db       *gorm.DB
	cfg      *config.Config
	uploader *upload.Uploader
}

func NewPropertyController(db *gorm.DB, cfg *config.Config, uploader *upload.Uploader) *PropertyController {
	return &PropertyController{db: db, cfg: cfg, uploader: uploader}
}

// List serves the public filtered/sorted/paginated listing.
func (pc *PropertyController) List(c echo.Context) error {
	params := query.Params{
		Page:    1,
		PerPage: pc.cfg.PropertiesPerPage,
		Status:  c.QueryParam("status"),
		Type:    c.QueryParam("type"),
		SortBy:  c.QueryParam("sort_by"),
	}

	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Page = n
		}
	}
	if v := c.QueryParam("per_page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.PerPage = n
		}
	}
	if v := c.QueryParam("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MinPrice = &f
		}
	}
	if v := c.QueryParam("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.MaxPrice = &f
		}
	}
	if v := c.QueryParam("bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Bedrooms = &n
		}
	}

	page, err := query.Run(pc.db, params)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch properties"})
	}

	properties := make([]models.PropertyResponse, 0, len(page.Items))
	for i := range page.Items {
		properties = append(properties, page.Items[i].ToResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"properties":   properties,
		"total":        page.Total,
		"pages":        page.Pages,
		"current_page": page.CurrentPage,
	})
}

// Get serves a single public property by id.
func (pc *PropertyController) Get(c echo.Context) error {
	var property models.Property
	if err := pc.db.First(&property, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Property not found"})
	}
	return c.JSON(http.StatusOK, property.ToResponse())
}

// AdminList returns every property, unpaged, for the back-office table.
func (pc *PropertyController) AdminList(c echo.Context) error {
	var properties []models.Property
	if err := pc.db.Find(&properties).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch properties"})
	}

	out := make([]models.PropertyResponse, 0, len(properties))
	for i := range properties {
		out = append(out, properties[i].ToResponse())
	}
	return c.JSON(http.StatusOK, out)
}

// Create inserts a new listing from a multipart form. Image files are
// uploaded first, in form order, then the row is written. Any coercion,
// upload, or persistence failure surfaces as a 400.
func (pc *PropertyController) Create(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, err)
	}

	images, err := pc.uploadFiles(c, form.File["images"])
	if err != nil {
		return badRequest(c, err)
	}

	property := models.Property{
		Title:       c.FormValue("title"),
		Location:    c.FormValue("location"),
		Status:      c.FormValue("status"),
		Type:        c.FormValue("type"),
		Description: c.FormValue("description"),
		Images:      pq.StringArray(images),
		Amenities:   c.FormValue("amenities"),
		AgentName:   c.FormValue("agent_name"),
		AgentPhone:  c.FormValue("agent_phone"),
		AgentEmail:  c.FormValue("agent_email"),
	}

	if property.Price, err = parseFloatField(c, "price"); err != nil {
		return badRequest(c, err)
	}
	if property.Bedrooms, err = parseIntField(c, "bedrooms"); err != nil {
		return badRequest(c, err)
	}
	if property.Bathrooms, err = parseFloatField(c, "bathrooms"); err != nil {
		return badRequest(c, err)
	}
	if property.Area, err = parseIntField(c, "area"); err != nil {
		return badRequest(c, err)
	}
	yearBuilt, err := parseIntField(c, "year_built")
	if err != nil {
		return badRequest(c, err)
	}
	property.YearBuilt = &yearBuilt

	if err := pc.db.Create(&property).Error; err != nil {
		return badRequest(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "property": property.ToResponse()})
}

// Update applies a partial multipart update: only supplied fields overwrite
// existing values. The image list is replaced by the decoded existingImages
// selection followed by any newly uploaded files, order preserved.
func (pc *PropertyController) Update(c echo.Context) error {
	var property models.Property
	if err := pc.db.First(&property, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Property not found"})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, err)
	}

	existingImages := []string{}
	if raw := c.FormValue("existingImages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &existingImages); err != nil {
			return badRequest(c, err)
		}
	}

	newImages, err := pc.uploadFiles(c, form.File["images"])
	if err != nil {
		return badRequest(c, err)
	}
	property.Images = pq.StringArray(append(existingImages, newImages...))

	if v := c.FormValue("title"); v != "" {
		property.Title = v
	}
	if v := c.FormValue("location"); v != "" {
		property.Location = v
	}
	if v := c.FormValue("status"); v != "" {
		property.Status = v
	}
	if v := c.FormValue("type"); v != "" {
		property.Type = v
	}
	if v := c.FormValue("description"); v != "" {
		property.Description = v
	}
	if v := c.FormValue("amenities"); v != "" {
		property.Amenities = v
	}
	if v := c.FormValue("agent_name"); v != "" {
		property.AgentName = v
	}
	if v := c.FormValue("agent_phone"); v != "" {
		property.AgentPhone = v
	}
	if v := c.FormValue("agent_email"); v != "" {
		property.AgentEmail = v
	}

	if v := c.FormValue("price"); v != "" {
		if property.Price, err = parseFloatField(c, "price"); err != nil {
			return badRequest(c, err)
		}
	}
	if v := c.FormValue("bedrooms"); v != "" {
		if property.Bedrooms, err = parseIntField(c, "bedrooms"); err != nil {
			return badRequest(c, err)
		}
	}
	if v := c.FormValue("bathrooms"); v != "" {
		if property.Bathrooms, err = parseFloatField(c, "bathrooms"); err != nil {
			return badRequest(c, err)
		}
	}
	if v := c.FormValue("area"); v != "" {
		if property.Area, err = parseIntField(c, "area"); err != nil {
			return badRequest(c, err)
		}
	}
	if v := c.FormValue("year_built"); v != "" {
		yearBuilt, err := parseIntField(c, "year_built")
		if err != nil {
			return badRequest(c, err)
		}
		property.YearBuilt = &yearBuilt
	}

	if err := pc.db.Save(&property).Error; err != nil {
		return badRequest(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "property": property.ToResponse()})
}

// Delete removes a listing permanently.
func (pc *PropertyController) Delete(c echo.Context) error {
	var property models.Property
	if err := pc.db.First(&property, "id = ?", c.Param("id")).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Property not found"})
	}

	if err := pc.db.Delete(&property).Error; err != nil {
		return badRequest(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Property deleted"})
}

// uploadFiles pushes each named file through the upload adapter, keeping
// form order. Files with empty names are skipped.
func (pc *PropertyController) uploadFiles(c echo.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		if fh.Filename == "" {
			continue
		}

		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		url, err := pc.uploader.Upload(c.Request().Context(), f, fh.Filename)
		f.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func parseFloatField(c echo.Context, name string) (float64, error) {
	f, err := strconv.ParseFloat(c.FormValue(name), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, c.FormValue(name))
	}
	return f, nil
}

func parseIntField(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.FormValue(name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, c.FormValue(name))
	}
	return n, nil
}

// badRequest is the single error-normalization boundary for mutation
// handlers: every expected failure becomes a structured 400.
func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": err.Error()})
}
