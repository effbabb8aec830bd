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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the cart of the authenticated user.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddCartProductRequest is the body of POST /carts/products.
type AddCartProductRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

// UpdateCartProductRequest is the body of PATCH /carts/products. Count is
// checked by the cart itself so a non-positive count yields CART-402.
type UpdateCartProductRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Count     int   `json:"count"`
}

// CartItemResponse is one product line of a cart.
type CartItemResponse struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	Price     string `json:"price"`
	Count     int    `json:"count"`
}

// CartResponse is the content of a cart.
type CartResponse struct {
	CartID     int64              `json:"cartId"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice string             `json:"totalPrice"`
}

// FindCart returns the user's cart.
func (h *CartHandler) FindCart(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidUser(c)
	}

	output, err := h.cartUC.FindCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(output))
}

// AddProduct puts a product in the user's cart.
func (h *CartHandler) AddProduct(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidUser(c)
	}

	var req AddCartProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.cartUC.AddProduct(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCartResponse(output))
}

// UpdateProduct changes the count of a product in the user's cart.
func (h *CartHandler) UpdateProduct(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidUser(c)
	}

	var req UpdateCartProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.cartUC.UpdateProduct(c.Request().Context(), userID, req.ProductID, req.Count)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(output))
}

// DeleteProduct removes a product from the user's cart.
func (h *CartHandler) DeleteProduct(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return invalidUser(c)
	}

	productID, ok := pathID(c, "productId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	output, err := h.cartUC.DeleteProduct(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(output))
}

func toCartResponse(output *usecase.CartOutput) CartResponse {
	items := make([]CartItemResponse, 0, len(output.Items))
	for _, item := range output.Items {
		items = append(items, CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			Price:     item.Price,
			Count:     item.Count,
		})
	}

	return CartResponse{
		CartID:     output.CartID,
		Items:      items,
		TotalPrice: output.TotalPrice,
	}
}
