package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/litogalan/portfolio-cms/internal/api/metrics"
	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// ProjectHandler handles portfolio project CRUD. Create and Update accept
// multipart bodies so the image travels with the fields.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type projectResponse struct {
	Message string          `json:"message"`
	Project *domain.Project `json:"project,omitempty"`
}

type projectListResponse struct {
	Message  string           `json:"message"`
	Projects []domain.Project `json:"projects"`
}

// Create handles POST /projects/create.
func (h *ProjectHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	image, err := formFile(c, "image")
	if err != nil {
		return err
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Tags:        formValues(c, "tags"),
		Category:    c.FormValue("category"),
		LiveURL:     c.FormValue("live_url"),
		RepoURL:     c.FormValue("repo_url"),
		OwnerID:     claims.UserID,
		Image:       image,
	})
	if err != nil {
		return err
	}
	metrics.ProjectsCreatedTotal.Inc()
	if image != nil {
		metrics.AssetUploadsTotal.WithLabelValues("portfolio_projects").Inc()
	}

	return c.JSON(http.StatusCreated, projectResponse{Message: "project created", Project: project})
}

// List handles GET /projects. Public, newest first.
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectListResponse{Message: "projects retrieved", Projects: projects})
}

// Get handles GET /projects/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectResponse{Message: "project retrieved", Project: project})
}

// Update handles PUT /projects/:id.
func (h *ProjectHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	image, err := formFile(c, "image")
	if err != nil {
		return err
	}

	project, err := h.service.Update(c.Request().Context(), ports.UpdateProjectInput{
		ID:          c.Param("id"),
		Caller:      claims,
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Tags:        formValues(c, "tags"),
		Category:    c.FormValue("category"),
		LiveURL:     c.FormValue("live_url"),
		RepoURL:     c.FormValue("repo_url"),
		Image:       image,
	})
	if err != nil {
		return err
	}
	if image != nil {
		metrics.AssetUploadsTotal.WithLabelValues("portfolio_projects").Inc()
	}

	return c.JSON(http.StatusOK, projectResponse{Message: "project updated", Project: project})
}

// Delete handles DELETE /projects/:id.
func (h *ProjectHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), claims); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectResponse{Message: "project deleted"})
}

// formValues returns every submitted value for a repeated form field.
func formValues(c echo.Context, field string) []string {
	form, err := c.MultipartForm()
	if err == nil && form != nil && len(form.Value[field]) > 0 {
		return form.Value[field]
	}
	if v := c.FormValue(field); v != "" {
		return []string{v}
	}
	return nil
}
