package products

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"schoolsite/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockProductDeleter struct {
	mock.Mock
}

func (m *mockProductDeleter) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockImageDeleter struct {
	mock.Mock
}

func (m *mockImageDeleter) DeleteProductImage(ctx context.Context, imageID string) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

func TestProductsDelete_Success(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/api/products/p1", nil)
	w := httptest.NewRecorder()
	ctx := req.Context()

	pd := new(mockProductDeleter)
	pd.On("DeleteProduct", ctx, "p1").Return(nil)

	Delete(ctx, slog.Default(), w, req, "p1", pd)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"response": {"deleted": "p1"}}`, w.Body.String())

	pd.AssertExpectations(t)
}

func TestProductsDelete_Fail_NotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/api/products/missing", nil)
	w := httptest.NewRecorder()
	ctx := req.Context()

	pd := new(mockProductDeleter)
	pd.On("DeleteProduct", ctx, "missing").Return(models.ErrProductNotFound)

	Delete(ctx, slog.Default(), w, req, "missing", pd)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	pd.AssertExpectations(t)
}

func TestProductsDelete_Fail_InternalError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/api/products/p1", nil)
	w := httptest.NewRecorder()
	ctx := req.Context()

	pd := new(mockProductDeleter)
	pd.On("DeleteProduct", ctx, "p1").Return(errors.New("db down"))

	Delete(ctx, slog.Default(), w, req, "p1", pd)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	pd.AssertExpectations(t)
}

func TestDeleteImage_Success(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/api/products/images/img1", nil)
	w := httptest.NewRecorder()
	ctx := req.Context()

	imd := new(mockImageDeleter)
	imd.On("DeleteProductImage", ctx, "img1").Return(nil)

	DeleteImage(ctx, slog.Default(), w, req, "img1", imd)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"response": {"deleted": "img1"}}`, w.Body.String())

	imd.AssertExpectations(t)
}

func TestDeleteImage_Fail_NotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/api/products/images/missing", nil)
	w := httptest.NewRecorder()
	ctx := req.Context()

	imd := new(mockImageDeleter)
	imd.On("DeleteProductImage", ctx, "missing").Return(models.ErrImageNotFound)

	DeleteImage(ctx, slog.Default(), w, req, "missing", imd)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	imd.AssertExpectations(t)
}
