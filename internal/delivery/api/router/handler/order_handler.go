package handler

import (
	"log/slog"
	"net/http"

	"mart/internal/delivery/api/response"
	deliverycontext "mart/internal/delivery/context"
	"mart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const pngContentType = "image/png"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order placement and order history.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemResponse is one product line of an order.
type OrderItemResponse struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	Price     string `json:"price"`
	Count     int    `json:"count"`
}

// OrderResponse describes a placed order.
type OrderResponse struct {
	OrderID    int64               `json:"orderId"`
	Items      []OrderItemResponse `json:"items"`
	TotalPrice string              `json:"totalPrice"`
}

// PlaceOrder orders everything in the user's cart.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidUser(c)
	}

	output, err := h.orderUC.PlaceOrder(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(output))
}

// FindOrders lists the user's orders, newest first.
func (h *OrderHandler) FindOrders(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidUser(c)
	}

	outputs, err := h.orderUC.FindOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders := make([]OrderResponse, 0, len(outputs))
	for _, output := range outputs {
		orders = append(orders, toOrderResponse(output))
	}

	return response.Success(c, http.StatusOK, orders)
}

// FindOrder returns one of the user's orders.
func (h *OrderHandler) FindOrder(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidUser(c)
	}

	orderID, ok := pathID(c, "orderId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	output, err := h.orderUC.FindOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(output))
}

// OrderReceipt renders the order receipt as a PNG QR code.
func (h *OrderHandler) OrderReceipt(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidUser(c)
	}

	orderID, ok := pathID(c, "orderId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.orderUC.OrderReceiptQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, pngContentType, png)
}

func toOrderResponse(output *usecase.OrderDetailOutput) OrderResponse {
	items := make([]OrderItemResponse, 0, len(output.Items))
	for _, item := range output.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			Price:     item.Price,
			Count:     item.Count,
		})
	}

	return OrderResponse{
		OrderID:    output.OrderID,
		Items:      items,
		TotalPrice: output.TotalPrice,
	}
}
