package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// SkillHandler handles the public skills list and its admin mutations.
type SkillHandler struct {
	service ports.SkillService
}

func NewSkillHandler(service ports.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

type addSkillRequest struct {
	Name     string `json:"name" validate:"required"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

type skillResponse struct {
	Message string        `json:"message"`
	Skill   *domain.Skill `json:"skill,omitempty"`
}

type skillListResponse struct {
	Message string         `json:"message"`
	Skills  []domain.Skill `json:"skills"`
}

// Add handles POST /skills/add.
func (h *SkillHandler) Add(c echo.Context) error {
	var req addSkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	skill, err := h.service.Add(c.Request().Context(), ports.AddSkillInput{
		Name:     req.Name,
		Icon:     req.Icon,
		Category: req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, skillResponse{Message: "skill added", Skill: skill})
}

// List handles GET /skills.
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, skillListResponse{Message: "skills retrieved", Skills: skills})
}

// Delete handles DELETE /skills/:id.
func (h *SkillHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, skillResponse{Message: "skill deleted"})
}
