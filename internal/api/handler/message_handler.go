package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/litogalan/portfolio-cms/internal/api/metrics"
	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// MessageHandler handles the public contact form and the private inbox.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

type sendMessageRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type updateMessageStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unread read archived deleted"`
}

type messageResponse struct {
	Message string          `json:"message"`
	Data    *domain.Message `json:"data,omitempty"`
}

type messageListResponse struct {
	Message string           `json:"message"`
	Data    []domain.Message `json:"data"`
}

// Send handles POST /messages/send, the public contact form.
func (h *MessageHandler) Send(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.service.Send(c.Request().Context(), ports.SendMessageInput{
		SenderName:  req.Name,
		SenderEmail: req.Email,
		Subject:     req.Subject,
		Body:        req.Message,
	})
	if err != nil {
		return err
	}
	metrics.MessagesReceivedTotal.Inc()

	return c.JSON(http.StatusCreated, messageResponse{Message: "message sent", Data: msg})
}

// List handles GET /messages.
func (h *MessageHandler) List(c echo.Context) error {
	msgs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageListResponse{Message: "messages retrieved", Data: msgs})
}

// Get handles GET /messages/:id. Reading an unread message marks it read.
func (h *MessageHandler) Get(c echo.Context) error {
	msg, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "message retrieved", Data: msg})
}

// UpdateStatus handles PUT /messages/:id/status.
func (h *MessageHandler) UpdateStatus(c echo.Context) error {
	var req updateMessageStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.MessageStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "message status updated", Data: msg})
}

// Delete handles DELETE /messages/:id. The document is removed, not soft
// deleted.
func (h *MessageHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "message deleted"})
}
