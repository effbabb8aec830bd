package handler

import (
	"net/http"
	"testing"

	domainerrors "mart/internal/domain/errors"
	mockUsecase "mart/internal/mocks/usecase"
	"mart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: newDiscardLogger()}), orderUC
}

func testOrderOutput(orderID int64) *usecase.OrderDetailOutput {
	return &usecase.OrderDetailOutput{
		OrderID: orderID,
		Items: []usecase.OrderItemOutput{
			{ProductID: 1, Name: "apple", Price: "1500", Count: 2},
			{ProductID: 2, Name: "pear", Price: "700", Count: 1},
		},
		TotalPrice: "3700",
	}
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	orderUC.EXPECT().PlaceOrder(mock.Anything, testUserID).Return(testOrderOutput(11), nil)

	c, rec := newTestContext(testRequest{method: http.MethodPost, path: "/orders", userID: testUserID})

	require.NoError(t, h.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var data OrderResponse
	decodeSuccess(t, rec, &data)
	assert.Equal(t, int64(11), data.OrderID)
	assert.Equal(t, "3700", data.TotalPrice)
	require.Len(t, data.Items, 2)
	assert.Equal(t, OrderItemResponse{ProductID: 1, Name: "apple", Price: "1500", Count: 2}, data.Items[0])
}

func TestOrderHandler_PlaceOrder_EmptyCart(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	orderUC.EXPECT().PlaceOrder(mock.Anything, testUserID).Return(nil, domainerrors.ErrEmptyCart)

	c, rec := newTestContext(testRequest{method: http.MethodPost, path: "/orders", userID: testUserID})

	require.NoError(t, h.PlaceOrder(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ORDER-401", decodeError(t, rec).Code)
}

func TestOrderHandler_FindOrders(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	orderUC.EXPECT().FindOrders(mock.Anything, testUserID).
		Return([]*usecase.OrderDetailOutput{testOrderOutput(12), testOrderOutput(11)}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, path: "/orders", userID: testUserID})

	require.NoError(t, h.FindOrders(c))

	var data []OrderResponse
	decodeSuccess(t, rec, &data)
	require.Len(t, data, 2)
	assert.Equal(t, int64(12), data[0].OrderID)
}

func TestOrderHandler_FindOrder(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	orderUC.EXPECT().FindOrder(mock.Anything, testUserID, int64(11)).Return(testOrderOutput(11), nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		path:   "/orders/11",
		userID: testUserID,
		params: map[string]string{"orderId": "11"},
	})

	require.NoError(t, h.FindOrder(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_FindOrder_NotFound(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	orderUC.EXPECT().FindOrder(mock.Anything, testUserID, int64(99)).Return(nil, domainerrors.ErrOrderNotFound)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		path:   "/orders/99",
		userID: testUserID,
		params: map[string]string{"orderId": "99"},
	})

	require.NoError(t, h.FindOrder(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER-SERVICE-401", decodeError(t, rec).Code)
}

func TestOrderHandler_OrderReceipt(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	orderUC.EXPECT().OrderReceiptQR(mock.Anything, testUserID, int64(11)).Return(png, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		path:   "/orders/11/receipt",
		userID: testUserID,
		params: map[string]string{"orderId": "11"},
	})

	require.NoError(t, h.OrderReceipt(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOrderHandler_OrderReceipt_InvalidID(t *testing.T) {
	h, _ := newTestOrderHandler(t)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		path:   "/orders/x/receipt",
		userID: testUserID,
		params: map[string]string{"orderId": "x"},
	})

	require.NoError(t, h.OrderReceipt(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
