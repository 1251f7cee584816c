package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/avezhov/ReTicket/internal/domain"
	"github.com/avezhov/ReTicket/internal/handler/dto"
	hmocks "github.com/avezhov/ReTicket/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockOrderSvc, *hmocks.MockReconcileSvc, http.Handler) {
	t.Helper()
	orderSvc := hmocks.NewMockOrderSvc(t)
	reconcileSvc := hmocks.NewMockReconcileSvc(t)

	h := NewHandler(orderSvc, reconcileSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/orders", h.CreateOrder)
		api.GET("/orders/:id", h.GetOrder)
		api.POST("/orders/:id/checkout", h.Checkout)
		api.GET("/events/:id/waves", h.ListWaves)
		api.POST("/webhooks/:provider", h.ProviderWebhook)
	}

	return orderSvc, reconcileSvc, r
}

func sampleOrder() *domain.Order {
	return &domain.Order{
		ID:                   uuid.New().String(),
		BuyerID:              uuid.New().String(),
		EventID:              uuid.New().String(),
		Status:               domain.OrderStatusPending,
		Subtotal:             decimal.RequireFromString("200"),
		Commission:           decimal.RequireFromString("12"),
		VAT:                  decimal.RequireFromString("2.64"),
		Total:                decimal.RequireFromString("214.64"),
		Currency:             "UYU",
		ReservationExpiresAt: time.Now().Add(10 * time.Minute),
		CreatedAt:            time.Now(),
	}
}

// --- Orders ---

func TestHandler_CreateOrder_Success(t *testing.T) {
	orderSvc, _, r := setupRouter(t)

	order := sampleOrder()
	orderSvc.EXPECT().CreateOrder(mock.Anything, order.BuyerID, order.EventID, mock.Anything).Return(order, false, nil)

	body, _ := json.Marshal(dto.CreateOrderRequest{
		BuyerID: order.BuyerID,
		EventID: order.EventID,
		Selections: []dto.SelectionRequest{
			{WaveID: uuid.New().String(), UnitPrice: "100.00", Quantity: 2},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, order.ID, resp.ID)
	assert.Equal(t, "214.64", resp.Total)
	assert.False(t, resp.Resumed)
}

func TestHandler_CreateOrder_Resumed(t *testing.T) {
	orderSvc, _, r := setupRouter(t)

	order := sampleOrder()
	orderSvc.EXPECT().CreateOrder(mock.Anything, order.BuyerID, order.EventID, mock.Anything).Return(order, true, nil)

	body, _ := json.Marshal(dto.CreateOrderRequest{
		BuyerID: order.BuyerID,
		EventID: order.EventID,
		Selections: []dto.SelectionRequest{
			{WaveID: uuid.New().String(), UnitPrice: "100.00", Quantity: 2},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Resumed)
}

func TestHandler_CreateOrder_BadPrice(t *testing.T) {
	_, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CreateOrderRequest{
		BuyerID: uuid.New().String(),
		EventID: uuid.New().String(),
		Selections: []dto.SelectionRequest{
			{WaveID: uuid.New().String(), UnitPrice: "not-a-price", Quantity: 1},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateOrder_Unavailable(t *testing.T) {
	orderSvc, _, r := setupRouter(t)

	orderSvc.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, false, domain.ErrTicketsUnavailable)

	body, _ := json.Marshal(dto.CreateOrderRequest{
		BuyerID: uuid.New().String(),
		EventID: uuid.New().String(),
		Selections: []dto.SelectionRequest{
			{WaveID: uuid.New().String(), UnitPrice: "100.00", Quantity: 1},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetOrder_NotFound(t *testing.T) {
	orderSvc, _, r := setupRouter(t)

	id := uuid.New().String()
	orderSvc.EXPECT().GetOrder(mock.Anything, id).Return(nil, domain.ErrOrderNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetOrder_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Checkout ---

func TestHandler_Checkout_Success(t *testing.T) {
	orderSvc, _, r := setupRouter(t)

	orderID := uuid.New().String()
	buyerID := uuid.New().String()
	link := &domain.PaymentLink{
		PaymentID:   uuid.New().String(),
		Provider:    "yookassa",
		RedirectURL: "https://yookassa.test/pay/yk-1",
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}
	orderSvc.EXPECT().RequestPaymentWindow(mock.Anything, orderID, buyerID).Return(link, nil)

	body, _ := json.Marshal(dto.CheckoutRequest{BuyerID: buyerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentLinkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://yookassa.test/pay/yk-1", resp.RedirectURL)
}

func TestHandler_Checkout_OrderExpired(t *testing.T) {
	orderSvc, _, r := setupRouter(t)

	orderID := uuid.New().String()
	buyerID := uuid.New().String()
	orderSvc.EXPECT().RequestPaymentWindow(mock.Anything, orderID, buyerID).Return(nil, domain.ErrOrderExpired)

	body, _ := json.Marshal(dto.CheckoutRequest{BuyerID: buyerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Checkout_ProviderDown(t *testing.T) {
	orderSvc, _, r := setupRouter(t)

	orderID := uuid.New().String()
	buyerID := uuid.New().String()
	orderSvc.EXPECT().RequestPaymentWindow(mock.Anything, orderID, buyerID).Return(nil, domain.ErrProviderUnavailable)

	body, _ := json.Marshal(dto.CheckoutRequest{BuyerID: buyerID})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

// --- Waves ---

func TestHandler_ListWaves(t *testing.T) {
	orderSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	orderSvc.EXPECT().ListWaves(mock.Anything, eventID).Return([]domain.TicketWave{
		{ID: uuid.New().String(), EventID: eventID, Name: "GA", Currency: "UYU"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID+"/waves", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.WaveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "GA", resp[0].Name)
}

// --- Webhooks ---

func TestHandler_ProviderWebhook(t *testing.T) {
	_, reconcileSvc, r := setupRouter(t)

	body := []byte(`{"event":"payment.succeeded","object":{"id":"yk-1"}}`)
	reconcileSvc.EXPECT().HandleWebhook(mock.Anything, "yookassa", body).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/yookassa", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ProviderWebhook_UnknownProvider(t *testing.T) {
	_, reconcileSvc, r := setupRouter(t)

	body := []byte(`{}`)
	reconcileSvc.EXPECT().HandleWebhook(mock.Anything, "stripe", body).Return(domain.ErrUnknownProvider)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
