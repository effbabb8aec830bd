package handler

import (
	"net/http"
	"testing"

	domainerrors "mart/internal/domain/errors"
	"mart/internal/errors"
	mockUsecase "mart/internal/mocks/usecase"
	"mart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: newDiscardLogger()}), productUC
}

func TestProductHandler_CreateProduct(t *testing.T) {
	h, productUC := newTestProductHandler(t)
	productUC.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
			return in.Name != nil && *in.Name == "apple" && in.Price == "1500"
		})).
		Return(&usecase.ProductOutput{ID: 1, Name: "apple", ImageURL: "https://mart.example/apple.png", Price: "1500"}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		path:   "/products",
		body:   `{"name":"apple","imageUrl":"https://mart.example/apple.png","price":"1500"}`,
		userID: testUserID,
	})

	require.NoError(t, h.CreateProduct(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var data ProductResponse
	decodeSuccess(t, rec, &data)
	assert.Equal(t, ProductResponse{ID: 1, Name: "apple", ImageURL: "https://mart.example/apple.png", Price: "1500"}, data)
}

func TestProductHandler_CreateProduct_MissingNameStaysNil(t *testing.T) {
	h, productUC := newTestProductHandler(t)
	productUC.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProductInput) bool { return in.Name == nil })).
		Return(nil, domainerrors.ErrNullName)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		path:   "/products",
		body:   `{"price":"1500"}`,
		userID: testUserID,
	})

	require.NoError(t, h.CreateProduct(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PRODUCT-401", decodeError(t, rec).Code)
}

func TestProductHandler_CreateProduct_InvalidImageURL(t *testing.T) {
	h, _ := newTestProductHandler(t)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		path:   "/products",
		body:   `{"name":"apple","imageUrl":"not a url","price":"1500"}`,
		userID: testUserID,
	})

	require.NoError(t, h.CreateProduct(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Equal(t, map[string]any{"imageUrl": "url"}, errInfo.Details)
}

func TestProductHandler_FindProducts(t *testing.T) {
	h, productUC := newTestProductHandler(t)
	productUC.EXPECT().FindProducts(mock.Anything).Return([]*usecase.ProductOutput{
		{ID: 1, Name: "apple", Price: "1500"},
		{ID: 2, Name: "pear", Price: "700"},
	}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, path: "/products"})

	require.NoError(t, h.FindProducts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var data []ProductResponse
	decodeSuccess(t, rec, &data)
	require.Len(t, data, 2)
	assert.Equal(t, "pear", data[1].Name)
}

func TestProductHandler_FindProducts_UnexpectedError(t *testing.T) {
	h, productUC := newTestProductHandler(t)
	errDB := errors.New("connection refused")
	productUC.EXPECT().FindProducts(mock.Anything).Return(nil, errDB)

	c, _ := newTestContext(testRequest{method: http.MethodGet, path: "/products"})

	err := h.FindProducts(c)

	assert.True(t, errors.Is(err, errDB))
}
