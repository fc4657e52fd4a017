package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// EmploymentHandler handles work-history entries.
type EmploymentHandler struct {
	service ports.EmploymentService
}

func NewEmploymentHandler(service ports.EmploymentService) *EmploymentHandler {
	return &EmploymentHandler{service: service}
}

type employmentRequest struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Description []string `json:"description"`
}

type employmentResponse struct {
	Message    string             `json:"message"`
	Employment *domain.Employment `json:"employment,omitempty"`
}

type employmentListResponse struct {
	Message    string              `json:"message"`
	Employment []domain.Employment `json:"employment"`
}

func (r employmentRequest) toInput() ports.EmploymentInput {
	return ports.EmploymentInput{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
	}
}

// Create handles POST /employment/create. Required-field checks live in the
// service so they sit next to the normalization rules.
func (h *EmploymentHandler) Create(c echo.Context) error {
	var req employmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	entry, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, employmentResponse{Message: "work experience created", Employment: entry})
}

// List handles GET /employment.
func (h *EmploymentHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employmentListResponse{Message: "work experience retrieved", Employment: entries})
}

// Get handles GET /employment/:id.
func (h *EmploymentHandler) Get(c echo.Context) error {
	entry, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employmentResponse{Message: "work experience retrieved", Employment: entry})
}

// Update handles PUT /employment/update/:id.
func (h *EmploymentHandler) Update(c echo.Context) error {
	var req employmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	entry, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employmentResponse{Message: "work experience updated", Employment: entry})
}

// Delete handles DELETE /employment/delete/:id.
func (h *EmploymentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, employmentResponse{Message: "work experience deleted"})
}
