package handler

import (
	"log/slog"
	"net/http"

	"mart/internal/delivery/api/response"
	"mart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the product catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest is the body of POST /products. Name stays a pointer so
// a missing name is told apart from a blank one.
type CreateProductRequest struct {
	Name     *string `json:"name"`
	ImageURL string  `json:"imageUrl" validate:"omitempty,url,max=2048"`
	Price    string  `json:"price"`
}

// ProductResponse is one catalog entry.
type ProductResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Price    string `json:"price"`
}

// CreateProduct registers a product.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Price:    req.Price,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(output))
}

// FindProducts lists the catalog.
func (h *ProductHandler) FindProducts(c echo.Context) error {
	outputs, err := h.productUC.FindProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products := make([]ProductResponse, 0, len(outputs))
	for _, output := range outputs {
		products = append(products, toProductResponse(output))
	}

	return response.Success(c, http.StatusOK, products)
}

func toProductResponse(output *usecase.ProductOutput) ProductResponse {
	return ProductResponse{
		ID:       output.ID,
		Name:     output.Name,
		ImageURL: output.ImageURL,
		Price:    output.Price,
	}
}
