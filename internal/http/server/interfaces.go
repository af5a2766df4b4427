package server

import (
	"context"
	"io"
	"schoolsite/internal/models"
)

type AuthService interface {
	Register(ctx context.Context, login string, password string, token string) (string, error)
	Login(ctx context.Context, login string, password string) (string, error)
	UserByToken(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

type TeacherService interface {
	Teachers(ctx context.Context, requester *models.User, limit int) ([]*models.Teacher, error)
	TeacherByID(ctx context.Context, id string, requester *models.User) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, teacher *models.Teacher, photoFilename string, photo io.Reader) (*models.Teacher, error)
	UpdateTeacher(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error)
	ReplacePhoto(ctx context.Context, id string, filename string, photo io.Reader) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id string) error
}

type ReviewService interface {
	SubmitReview(ctx context.Context, review *models.Review) (*models.Review, error)
	Reviews(ctx context.Context, limit int) ([]*models.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

type SchoolService interface {
	SchoolInfo(ctx context.Context) (*models.SchoolInfo, error)
	UpdateSchoolInfo(ctx context.Context, info *models.SchoolInfo) (*models.SchoolInfo, error)
}

type DocumentService interface {
	UploadDocument(ctx context.Context, doc *models.Document, filename string, content io.Reader) (*models.Document, error)
	ListDocuments(ctx context.Context, requester *models.User, filter models.DocumentFilter) ([]*models.Document, error)
	DocumentMeta(ctx context.Context, docID string, requester *models.User) (*models.Document, error)
	DownloadDocument(ctx context.Context, docID string, requester *models.User) (*models.Document, io.ReadCloser, error)
	DeleteDocument(ctx context.Context, docID string) error
}

type ProductService interface {
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]*models.MerchCategory, error)
	AddProductImage(ctx context.Context, productID string, filename string, content io.Reader, sortOrder int) (*models.ProductImage, error)
	DeleteProductImage(ctx context.Context, imageID string) error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, order *models.Order, items []models.OrderItemInput) (*models.Order, error)
	Orders(ctx context.Context, limit int) ([]*models.Order, error)
	OrderByID(ctx context.Context, id string) (*models.Order, error)
}

type RateLimiter interface {
	Allow(ctx context.Context, identity string, bucket string) (*models.RateDecision, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}
