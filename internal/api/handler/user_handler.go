package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/litogalan/portfolio-cms/internal/api/metrics"
	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// UserHandler handles profile reads and updates.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

type profileResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"user"`
}

// Profile returns the authenticated owner's profile.
func (h *UserHandler) Profile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Profile(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{Message: "profile retrieved", User: user})
}

// PublicProfile returns the owner profile served to the portfolio site
// without authentication.
func (h *UserHandler) PublicProfile(c echo.Context) error {
	user, err := h.authService.PublicProfile(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{Message: "profile retrieved", User: user})
}

// UpdateProfile patches profile fields and swaps hosted assets. The body is
// multipart: text fields plus optional profilePicture and resume parts.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	picture, err := formFile(c, "profilePicture")
	if err != nil {
		return err
	}
	resume, err := formFile(c, "resume")
	if err != nil {
		return err
	}

	input := ports.UpdateProfileInput{
		UserID:         claims.UserID,
		Email:          c.FormValue("email"),
		Password:       c.FormValue("password"),
		FullName:       c.FormValue("full_name"),
		JobTitle:       c.FormValue("job_title"),
		Bio:            c.FormValue("bio"),
		ShortBio:       c.FormValue("short_bio"),
		ProfilePicture: picture,
		Resume:         resume,
	}
	if links := socialLinksFromForm(c); links != nil {
		input.SocialLinks = links
	}

	user, token, err := h.authService.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return err
	}
	if picture != nil {
		metrics.AssetUploadsTotal.WithLabelValues("user_profiles").Inc()
	}
	if resume != nil {
		metrics.AssetUploadsTotal.WithLabelValues("user_resumes").Inc()
	}

	return c.JSON(http.StatusOK, profileResponse{Message: "profile updated", Token: token, User: user})
}

// socialLinksFromForm builds a links patch only when at least one link field
// was submitted, so absent fields never wipe stored links.
func socialLinksFromForm(c echo.Context) *domain.SocialLinks {
	links := domain.SocialLinks{
		GitHub:   c.FormValue("github"),
		LinkedIn: c.FormValue("linkedin"),
		Facebook: c.FormValue("facebook"),
		GitLab:   c.FormValue("gitlab"),
	}
	if links == (domain.SocialLinks{}) {
		return nil
	}
	return &links
}
