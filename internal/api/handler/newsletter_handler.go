package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/litogalan/portfolio-cms/internal/api/metrics"
	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// NewsletterHandler handles the public mailing-list endpoints.
type NewsletterHandler struct {
	service ports.NewsletterService
}

func NewNewsletterHandler(service ports.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type subscribeResponse struct {
	Message    string             `json:"message"`
	Subscriber *domain.Subscriber `json:"subscriber,omitempty"`
}

// Subscribe handles POST /newsletter/subscribe.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sub, err := h.service.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	metrics.NewsletterSubscriptionsTotal.Inc()

	return c.JSON(http.StatusCreated, subscribeResponse{Message: "subscribed", Subscriber: sub})
}

// Unsubscribe handles GET /newsletter/unsubscribe/:token. It is a GET so the
// link in the confirmation email works from any mail client.
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	if err := h.service.Unsubscribe(c.Request().Context(), c.Param("token")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, subscribeResponse{Message: "unsubscribed"})
}
