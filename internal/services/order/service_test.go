package orderservice

import (
	"context"
	"log/slog"
	"schoolsite/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testOrderID    = "c56a4180-65aa-42ec-a945-5fd21dec0538"
	testProductID  = "7f3a9c2e-1b4d-4e8f-9a6b-2c5d8e1f4a7b"
	testProductID2 = "9e107d9d-372b-46bc-9067-d81c40f1b2a4"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) OrderByID(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Orders(ctx context.Context, limit int) ([]*models.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

type MockProductProvider struct {
	mock.Mock
}

func (m *MockProductProvider) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func tshirt() *models.Product {
	return &models.Product{
		ID:         testProductID,
		Name:       "School T-Shirt",
		PriceCents: 150000,
		InStock:    true,
		Sizes:      []string{"S", "M", "L"},
		Colors:     []string{"white", "navy"},
	}
}

func mug() *models.Product {
	return &models.Product{
		ID:         testProductID2,
		Name:       "School Mug",
		PriceCents: 45000,
		InStock:    true,
		Sizes:      []string{},
		Colors:     []string{},
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	products.On("ProductByID", mock.Anything, testProductID).Return(tshirt(), nil)
	products.On("ProductByID", mock.Anything, testProductID2).Return(mug(), nil)

	orderRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Order).Number = "ORD-2025-000001"
		}).
		Return(nil)

	order := &models.Order{
		ParentName: "  Anna Petrova ",
		Phone:      "8 (912) 345-67-89",
		TotalCents: 2*150000 + 45000,
	}

	items := []models.OrderItemInput{
		{ProductID: testProductID, Quantity: 2, Size: "M", Color: "white"},
		{ProductID: testProductID2, Quantity: 1},
	}

	placed, err := service.PlaceOrder(context.Background(), order, items)

	assert.NoError(t, err)
	assert.Equal(t, "Anna Petrova", placed.ParentName)
	assert.Equal(t, "+79123456789", placed.Phone)
	assert.Equal(t, "ORD-2025-000001", placed.Number)
	assert.Equal(t, int64(345000), placed.TotalCents)
	assert.Len(t, placed.Items, 2)
	assert.Equal(t, "School T-Shirt", placed.Items[0].ProductName)
	assert.Equal(t, int64(150000), placed.Items[0].PriceCents)
	assert.Equal(t, placed.ID, placed.Items[0].OrderID)
	orderRepo.AssertExpectations(t)
}

func TestPlaceOrder_MissingParentName(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	order := &models.Order{
		ParentName: "   ",
		Phone:      "+79123456789",
	}

	items := []models.OrderItemInput{{ProductID: testProductID, Quantity: 1, Size: "M", Color: "white"}}

	_, err := service.PlaceOrder(context.Background(), order, items)

	assert.ErrorIs(t, err, models.ErrInvalidParams)
	products.AssertNotCalled(t, "ProductByID", mock.Anything, mock.Anything)
}

func TestPlaceOrder_NoItems(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	order := &models.Order{
		ParentName: "Anna Petrova",
		Phone:      "+79123456789",
	}

	_, err := service.PlaceOrder(context.Background(), order, nil)

	assert.ErrorIs(t, err, models.ErrInvalidParams)
}

func TestPlaceOrder_BadPhone(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	order := &models.Order{
		ParentName: "Anna Petrova",
		Phone:      "12345",
	}

	items := []models.OrderItemInput{{ProductID: testProductID, Quantity: 1, Size: "M", Color: "white"}}

	_, err := service.PlaceOrder(context.Background(), order, items)

	assert.ErrorIs(t, err, models.ErrInvalidParams)
	orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	products.On("ProductByID", mock.Anything, testProductID).Return(nil, models.ErrProductNotFound)

	order := &models.Order{
		ParentName: "Anna Petrova",
		Phone:      "+79123456789",
		TotalCents: 150000,
	}

	items := []models.OrderItemInput{{ProductID: testProductID, Quantity: 1, Size: "M", Color: "white"}}

	_, err := service.PlaceOrder(context.Background(), order, items)

	assert.ErrorIs(t, err, models.ErrProductNotFound)
	orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_OutOfStock(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	product := tshirt()
	product.InStock = false

	products.On("ProductByID", mock.Anything, testProductID).Return(product, nil)

	order := &models.Order{
		ParentName: "Anna Petrova",
		Phone:      "+79123456789",
		TotalCents: 150000,
	}

	items := []models.OrderItemInput{{ProductID: testProductID, Quantity: 1, Size: "M", Color: "white"}}

	_, err := service.PlaceOrder(context.Background(), order, items)

	assert.ErrorIs(t, err, models.ErrProductOutOfStock)
}

func TestPlaceOrder_QuantityOutOfRange(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	products.On("ProductByID", mock.Anything, testProductID).Return(tshirt(), nil)

	order := &models.Order{
		ParentName: "Anna Petrova",
		Phone:      "+79123456789",
		TotalCents: 150000 * 100,
	}

	items := []models.OrderItemInput{{ProductID: testProductID, Quantity: 100, Size: "M", Color: "white"}}

	_, err := service.PlaceOrder(context.Background(), order, items)

	assert.ErrorIs(t, err, models.ErrInvalidParams)
}

func TestPlaceOrder_InvalidSize(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	products.On("ProductByID", mock.Anything, testProductID).Return(tshirt(), nil)

	order := &models.Order{
		ParentName: "Anna Petrova",
		Phone:      "+79123456789",
		TotalCents: 150000,
	}

	items := []models.OrderItemInput{{ProductID: testProductID, Quantity: 1, Size: "XXL", Color: "white"}}

	_, err := service.PlaceOrder(context.Background(), order, items)

	assert.ErrorIs(t, err, models.ErrInvalidSize)
}

func TestPlaceOrder_SizeForSizelessProduct(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	products.On("ProductByID", mock.Anything, testProductID2).Return(mug(), nil)

	order := &models.Order{
		ParentName: "Anna Petrova",
		Phone:      "+79123456789",
		TotalCents: 45000,
	}

	items := []models.OrderItemInput{{ProductID: testProductID2, Quantity: 1, Size: "M"}}

	_, err := service.PlaceOrder(context.Background(), order, items)

	assert.ErrorIs(t, err, models.ErrInvalidSize)
}

func TestPlaceOrder_InvalidColor(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	products.On("ProductByID", mock.Anything, testProductID).Return(tshirt(), nil)

	order := &models.Order{
		ParentName: "Anna Petrova",
		Phone:      "+79123456789",
		TotalCents: 150000,
	}

	items := []models.OrderItemInput{{ProductID: testProductID, Quantity: 1, Size: "M", Color: "green"}}

	_, err := service.PlaceOrder(context.Background(), order, items)

	assert.ErrorIs(t, err, models.ErrInvalidColor)
}

func TestPlaceOrder_TotalMismatch(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	products.On("ProductByID", mock.Anything, testProductID).Return(tshirt(), nil)

	order := &models.Order{
		ParentName: "Anna Petrova",
		Phone:      "+79123456789",
		TotalCents: 100,
	}

	items := []models.OrderItemInput{{ProductID: testProductID, Quantity: 1, Size: "M", Color: "white"}}

	_, err := service.PlaceOrder(context.Background(), order, items)

	assert.ErrorIs(t, err, models.ErrTotalMismatch)
	orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestPlaceOrder_RepoError(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	products.On("ProductByID", mock.Anything, testProductID).Return(tshirt(), nil)
	orderRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*models.Order")).
		Return(assert.AnError)

	order := &models.Order{
		ParentName: "Anna Petrova",
		Phone:      "+79123456789",
		TotalCents: 150000,
	}

	items := []models.OrderItemInput{{ProductID: testProductID, Quantity: 1, Size: "M", Color: "white"}}

	_, err := service.PlaceOrder(context.Background(), order, items)

	assert.ErrorIs(t, err, models.ErrInternal)
}

func TestOrders_Success(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	expected := []*models.Order{
		{ID: testOrderID, Number: "ORD-2025-000002"},
	}

	orderRepo.On("Orders", mock.Anything, 10).Return(expected, nil)

	orders, err := service.Orders(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestOrders_EmptyNotError(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	orderRepo.On("Orders", mock.Anything, 0).Return(nil, models.ErrOrderNotFound)

	orders, err := service.Orders(context.Background(), 0)

	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderByID_Success(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	expected := &models.Order{ID: testOrderID, Number: "ORD-2025-000003"}

	orderRepo.On("OrderByID", mock.Anything, testOrderID).Return(expected, nil)

	order, err := service.OrderByID(context.Background(), testOrderID)

	assert.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestOrderByID_MalformedID(t *testing.T) {
	t.Parallel()

	orderRepo := new(MockOrderRepository)
	products := new(MockProductProvider)

	service := New(slog.Default(), orderRepo, products)

	_, err := service.OrderByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, models.ErrOrderNotFound)
	orderRepo.AssertNotCalled(t, "OrderByID", mock.Anything, mock.Anything)
}
