package products

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockProductCreator struct {
	mock.Mock
}

func (m *mockProductCreator) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(*models.Product), args.Error(1)
}

type mockImageAdder struct {
	mock.Mock
}

func (m *mockImageAdder) AddProductImage(ctx context.Context, productID string, filename string, content io.Reader, sortOrder int) (*models.ProductImage, error) {
	args := m.Called(ctx, productID, filename, mock.Anything, sortOrder)
	return args.Get(0).(*models.ProductImage), args.Error(1)
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	body := `{"name": "School T-Shirt", "price": "1500.00", "category": "Clothes", "sizes": ["S", "M", "L"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctx := req.Context()

	created := &models.Product{
		ID:         "p1",
		Name:       "School T-Shirt",
		PriceCents: 150000,
		Category:   "Clothes",
		InStock:    true,
		Sizes:      []string{"S", "M", "L"},
	}

	pc := new(mockProductCreator)
	pc.On("CreateProduct", ctx, mock.AnythingOfType("*models.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*models.Product)
			assert.Equal(t, int64(150000), product.PriceCents)
			// in_stock was omitted, the handler defaults it to true
			assert.True(t, product.InStock)
		}).
		Return(created, nil)

	Create(ctx, slog.Default(), w, req, pc)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var parsed map[string]dto.ProductResponse
	err := json.NewDecoder(resp.Body).Decode(&parsed)
	assert.NoError(t, err)
	assert.Equal(t, "p1", parsed["response"].ID)
	assert.Equal(t, "1500.00", parsed["response"].Price)

	pc.AssertExpectations(t)
}

func TestCreate_Fail_BadPrice(t *testing.T) {
	t.Parallel()

	body := `{"name": "School T-Shirt", "price": "15,00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctx := req.Context()

	pc := new(mockProductCreator)

	Create(ctx, slog.Default(), w, req, pc)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	pc.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestCreate_Fail_InvalidBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{bad`))
	w := httptest.NewRecorder()
	ctx := req.Context()

	pc := new(mockProductCreator)

	Create(ctx, slog.Default(), w, req, pc)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	pc.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestCreate_Fail_InvalidParams(t *testing.T) {
	t.Parallel()

	body := `{"name": "  ", "price": "100"}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctx := req.Context()

	pc := new(mockProductCreator)
	pc.On("CreateProduct", ctx, mock.AnythingOfType("*models.Product")).
		Return((*models.Product)(nil), models.ErrInvalidParams)

	Create(ctx, slog.Default(), w, req, pc)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	pc.AssertExpectations(t)
}

func TestCreate_Fail_ServiceError(t *testing.T) {
	body := `{"name": "School T-Shirt", "price": "1500.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctx := req.Context()

	pc := new(mockProductCreator)
	pc.On("CreateProduct", ctx, mock.AnythingOfType("*models.Product")).
		Return((*models.Product)(nil), models.ErrInternal)

	Create(ctx, slog.Default(), w, req, pc)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	pc.AssertExpectations(t)
}

func TestAddImage_Success(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	writer := multipart.NewWriter(&b)

	imagePart, _ := writer.CreateFormFile("image", "front.jpg")
	imagePart.Write([]byte("jpeg bytes"))

	writer.WriteField("sort_order", "2")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/products/p1/images", &b)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	ctx := req.Context()

	image := &models.ProductImage{ID: "img1", ProductID: "p1", Path: "products/front.jpg", SortOrder: 2}

	ia := new(mockImageAdder)
	ia.On("AddProductImage", mock.Anything, "p1", "front.jpg", mock.Anything, 2).Return(image, nil)

	AddImage(ctx, slog.Default(), w, req, "p1", ia)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var parsed map[string]dto.ProductImageResponse
	err := json.NewDecoder(resp.Body).Decode(&parsed)
	assert.NoError(t, err)
	assert.Equal(t, "products/front.jpg", parsed["response"].Path)
	assert.Equal(t, 2, parsed["response"].SortOrder)

	ia.AssertExpectations(t)
}

func TestAddImage_Fail_MissingPart(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	writer := multipart.NewWriter(&b)
	writer.WriteField("sort_order", "1")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/products/p1/images", &b)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	ctx := req.Context()

	ia := new(mockImageAdder)

	AddImage(ctx, slog.Default(), w, req, "p1", ia)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	ia.AssertNotCalled(t, "AddProductImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddImage_Fail_ProductNotFound(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	writer := multipart.NewWriter(&b)

	imagePart, _ := writer.CreateFormFile("image", "front.jpg")
	imagePart.Write([]byte("jpeg bytes"))

	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/products/missing/images", &b)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	ctx := req.Context()

	ia := new(mockImageAdder)
	ia.On("AddProductImage", mock.Anything, "missing", "front.jpg", mock.Anything, 0).
		Return((*models.ProductImage)(nil), models.ErrProductNotFound)

	AddImage(ctx, slog.Default(), w, req, "missing", ia)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	ia.AssertExpectations(t)
}

func TestAddImage_Fail_BadSortOrder(t *testing.T) {
	t.Parallel()

	var b bytes.Buffer
	writer := multipart.NewWriter(&b)

	imagePart, _ := writer.CreateFormFile("image", "front.jpg")
	imagePart.Write([]byte("jpeg bytes"))

	writer.WriteField("sort_order", "second")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/products/p1/images", &b)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	ctx := req.Context()

	ia := new(mockImageAdder)

	AddImage(ctx, slog.Default(), w, req, "p1", ia)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	ia.AssertNotCalled(t, "AddProductImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
