package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// JobHandler handles the private job-application tracker.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

type jobRequest struct {
	Company    string   `json:"company"`
	Position   string   `json:"position"`
	Status     string   `json:"status"`
	Link       string   `json:"link"`
	Notes      string   `json:"notes"`
	ResumeUsed string   `json:"resume_used"`
	Tags       []string `json:"tags"`
}

type jobResponse struct {
	Message string      `json:"message"`
	Job     *domain.Job `json:"job,omitempty"`
}

type jobListResponse struct {
	Message string       `json:"message"`
	Jobs    []domain.Job `json:"jobs"`
}

func (r jobRequest) toInput() ports.JobInput {
	return ports.JobInput{
		Company:    r.Company,
		Position:   r.Position,
		Status:     r.Status,
		Link:       r.Link,
		Notes:      r.Notes,
		ResumeUsed: r.ResumeUsed,
		Tags:       r.Tags,
	}
}

// Create handles POST /jobs.
func (h *JobHandler) Create(c echo.Context) error {
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	job, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, jobResponse{Message: "job application created", Job: job})
}

// List handles GET /jobs.
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jobListResponse{Message: "job applications retrieved", Jobs: jobs})
}

// Get handles GET /jobs/:id.
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jobResponse{Message: "job application retrieved", Job: job})
}

// Update handles PUT /jobs/:id.
func (h *JobHandler) Update(c echo.Context) error {
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	job, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jobResponse{Message: "job application updated", Job: job})
}

// Delete handles DELETE /jobs/:id.
func (h *JobHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jobResponse{Message: "job application deleted"})
}
