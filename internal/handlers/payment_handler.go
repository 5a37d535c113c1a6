package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/fintechlabs/payment-service/internal/apperrors"
	"github.com/fintechlabs/payment-service/internal/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error)
	GetPaymentByID(ctx context.Context, id string) (*dto.PaymentResponse, error)
	GetAllPayments(ctx context.Context) ([]dto.PaymentResponse, error)
	UpdatePayment(ctx context.Context, id string, req *dto.PaymentUpdateRequest) (*dto.PaymentResponse, error)
}

type PaymentHandler struct {
	Service PaymentService
}

func NewPaymentHandler(s PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// POST /api/payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	response, err := h.Service.CreatePayment(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GET /api/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	response, err := h.Service.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GET /api/payments
func (h *PaymentHandler) GetAllPayments(c *gin.Context) {
	responses, err := h.Service.GetAllPayments(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// PUT /api/payments/:id
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	var req dto.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	response, err := h.Service.UpdatePayment(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// respondError maps domain error kinds to HTTP statuses. Validation errors
// carry the offending fields in the response body.
func (h *PaymentHandler) respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrFraudCheckUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrBusUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		logrus.Errorf("Unexpected error: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
