package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type socialLinksRequest struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Facebook string `json:"facebook"`
	GitLab   string `json:"gitlab"`
}

type registerRequest struct {
	Email       string              `json:"email"     validate:"required,email"`
	Password    string              `json:"password"  validate:"required,min=8"`
	FullName    string              `json:"full_name" validate:"required"`
	JobTitle    string              `json:"job_title"`
	Bio         string              `json:"bio"`
	ShortBio    string              `json:"short_bio"`
	SocialLinks *socialLinksRequest `json:"social_links"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

// Register creates the owner account. It succeeds exactly once: any existing
// account makes it a conflict.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		JobTitle: req.JobTitle,
		Bio:      req.Bio,
		ShortBio: req.ShortBio,
	}
	if req.SocialLinks != nil {
		input.SocialLinks = &domain.SocialLinks{
			GitHub:   req.SocialLinks.GitHub,
			LinkedIn: req.SocialLinks.LinkedIn,
			Facebook: req.SocialLinks.Facebook,
			GitLab:   req.SocialLinks.GitLab,
		}
	}

	user, token, err := h.authService.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Message: "user registered", Token: token, User: user})
}

// Login verifies credentials and returns a fresh token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Message: "login successful", Token: token, User: user})
}
