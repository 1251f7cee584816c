package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"

	"github.com/avezhov/ReTicket/internal/domain"
	"github.com/avezhov/ReTicket/internal/handler/dto"
)

type OrderSvc interface {
	CreateOrder(ctx context.Context, buyerID, eventID string, selections []domain.Selection) (*domain.Order, bool, error)
	RequestPaymentWindow(ctx context.Context, orderID, buyerID string) (*domain.PaymentLink, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListWaves(ctx context.Context, eventID string) ([]domain.TicketWave, error)
}

type ReconcileSvc interface {
	HandleWebhook(ctx context.Context, provider string, body []byte) error
}

type Handler struct {
	orderService     OrderSvc
	reconcileService ReconcileSvc
}

func NewHandler(orderService OrderSvc, reconcileService ReconcileSvc) *Handler {
	return &Handler{
		orderService:     orderService,
		reconcileService: reconcileService,
	}
}

// Orders

func (h *Handler) CreateOrder(c *ginext.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	selections := make([]domain.Selection, 0, len(req.Selections))
	for _, sel := range req.Selections {
		price, err := decimal.NewFromString(sel.UnitPrice)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid unit_price"})
			return
		}
		selections = append(selections, domain.Selection{
			WaveID:    sel.WaveID,
			UnitPrice: price,
			Quantity:  sel.Quantity,
		})
	}

	order, resumed, err := h.orderService.CreateOrder(c.Request.Context(), req.BuyerID, req.EventID, selections)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	if resumed {
		status = http.StatusOK
	}
	c.JSON(status, dto.ToOrderResponse(order, resumed))
}

func (h *Handler) GetOrder(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order, false))
}

func (h *Handler) Checkout(c *ginext.Context) {
	orderID := c.Param("id")
	if _, err := uuid.Parse(orderID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid order id"})
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	link, err := h.orderService.RequestPaymentWindow(c.Request.Context(), orderID, req.BuyerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentLinkResponse(link))
}

// Events

func (h *Handler) ListWaves(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	waves, err := h.orderService.ListWaves(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.WaveResponse, 0, len(waves))
	for _, w := range waves {
		resp = append(resp, dto.ToWaveResponse(w))
	}
	c.JSON(http.StatusOK, resp)
}

// Webhooks

func (h *Handler) ProviderWebhook(c *ginext.Context) {
	provider := c.Param("provider")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read body"})
		return
	}

	if err := h.reconcileService.HandleWebhook(c.Request.Context(), provider, body); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrWaveNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrUnknownProvider):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTicketsUnavailable),
		errors.Is(err, domain.ErrInsufficientTickets),
		errors.Is(err, domain.ErrOrderNotPending),
		errors.Is(err, domain.ErrOrderExpired):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventFinished),
		errors.Is(err, domain.ErrMixedCurrencies),
		errors.Is(err, domain.ErrSelfPurchase),
		errors.Is(err, domain.ErrTooManyTickets),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrPaymentAmountMismatch):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrProviderUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "payment provider unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
