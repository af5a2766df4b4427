package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"schoolsite/internal/config"
	"schoolsite/internal/http/handlers/docs"
	"schoolsite/internal/http/handlers/health"
	"schoolsite/internal/http/handlers/merch"
	"schoolsite/internal/http/handlers/orders"
	"schoolsite/internal/http/handlers/products"
	"schoolsite/internal/http/handlers/reviews"
	"schoolsite/internal/http/handlers/school"
	"schoolsite/internal/http/handlers/session"
	"schoolsite/internal/http/handlers/teachers"
	"schoolsite/internal/http/handlers/user"
	"schoolsite/internal/http/middleware"
	"schoolsite/internal/models"
	utils "schoolsite/internal/utils/http_errors"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles everything the route table needs.
type Services struct {
	Auth     AuthService
	Teacher  TeacherService
	Review   ReviewService
	School   SchoolService
	Document DocumentService
	Product  ProductService
	Order    OrderService
	Limiter  RateLimiter
	DB       Pinger
}

func StartServer(ctx context.Context, cfg *config.HTTPServer, log *slog.Logger, services Services) error {
	r := mux.NewRouter()

	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics())

	setupRoutes(r, log, services)

	srv := &http.Server{
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
		Handler:      r,
	}

	errChan := make(chan error, 1)

	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("server closed gracefully")
			} else {
				log.Error("could not start server:", "error", err)
				errChan <- err
			}
		}
	}()
	select {
	case <-ctx.Done():
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down server", "error", err)
			return err
		}
		log.Info("server exited gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupRoutes(r *mux.Router, log *slog.Logger, s Services) {
	// liveness and metrics
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		health.Get(ctx, log, w, r, s.DB)
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// POST user
	r.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user.Add(ctx, log, w, r, s.Auth)
	}).Methods(http.MethodPost)

	// POST session
	r.HandleFunc("/api/auth", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session.Add(ctx, log, w, r, s.Auth)
	}).Methods(http.MethodPost)

	// DELETE session
	r.HandleFunc("/api/auth/{token}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		token := vars["token"]
		session.Delete(ctx, log, w, r, token, s.Auth)
	}).Methods(http.MethodDelete)

	// Public reads share the anon budget. Authenticated callers are
	// resolved first so the limiter can wave them through.
	public := r.NewRoute().Subrouter()

	public.Use(middleware.Identify(log, s.Auth))
	public.Use(middleware.RateLimit(log, s.Limiter, models.RateBucketAnon))

	// GET teachers
	public.HandleFunc("/api/teachers", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		teachers.Get(ctx, log, w, r, s.Teacher)
	}).Methods(http.MethodGet)

	// GET teacher by id
	public.HandleFunc("/api/teachers/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		teacherID := vars["id"]
		teachers.GetByID(ctx, log, w, r, teacherID, s.Teacher)
	}).Methods(http.MethodGet)

	// GET reviews
	public.HandleFunc("/api/reviews", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reviews.Get(ctx, log, w, r, s.Review)
	}).Methods(http.MethodGet)

	// GET school info
	public.HandleFunc("/api/school", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		school.Get(ctx, log, w, r, s.School)
	}).Methods(http.MethodGet)

	// GET docs
	public.HandleFunc("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docs.Get(ctx, log, w, r, s.Document)
	}).Methods(http.MethodGet)

	// HEAD docs
	public.HandleFunc("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docs.Head(ctx, log, w, r, s.Document)
	}).Methods(http.MethodHead)

	// GET doc by id
	public.HandleFunc("/api/documents/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.GetByID(ctx, log, w, r, docID, s.Document)
	}).Methods(http.MethodGet)

	// HEAD doc by id
	public.HandleFunc("/api/documents/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.HeadByID(ctx, log, w, r, docID, s.Document)
	}).Methods(http.MethodHead)

	// GET doc download
	public.HandleFunc("/api/documents/{id}/download", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.Download(ctx, log, w, r, docID, s.Document)
	}).Methods(http.MethodGet)

	// GET merch catalog
	public.HandleFunc("/api/merch", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		merch.Get(ctx, log, w, r, s.Product)
	}).Methods(http.MethodGet)

	// GET merch categories, registered before the id route
	public.HandleFunc("/api/merch/categories", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		merch.Categories(ctx, log, w, r, s.Product)
	}).Methods(http.MethodGet)

	// GET merch by id
	public.HandleFunc("/api/merch/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		productID := vars["id"]
		merch.GetByID(ctx, log, w, r, productID, s.Product)
	}).Methods(http.MethodGet)

	// Review submissions draw from their own, tighter budget.
	reviewSubmit := r.NewRoute().Subrouter()

	reviewSubmit.Use(middleware.Identify(log, s.Auth))
	reviewSubmit.Use(middleware.RateLimit(log, s.Limiter, models.RateBucketReviews))

	// POST review
	reviewSubmit.HandleFunc("/api/reviews", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reviews.Add(ctx, log, w, r, s.Review)
	}).Methods(http.MethodPost)

	// Order submissions likewise.
	orderSubmit := r.NewRoute().Subrouter()

	orderSubmit.Use(middleware.Identify(log, s.Auth))
	orderSubmit.Use(middleware.RateLimit(log, s.Limiter, models.RateBucketOrders))

	// POST order
	orderSubmit.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		orders.Place(ctx, log, w, r, s.Order)
	}).Methods(http.MethodPost)

	// Everything below requires a valid admin session.
	protected := r.NewRoute().Subrouter()

	protected.Use(middleware.Auth(log, s.Auth))

	// POST teacher
	protected.HandleFunc("/api/teachers", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		teachers.Create(ctx, log, w, r, s.Teacher)
	}).Methods(http.MethodPost)

	// PUT/PATCH teacher
	protected.HandleFunc("/api/teachers/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		teacherID := vars["id"]
		teachers.Update(ctx, log, w, r, teacherID, s.Teacher, s.Teacher)
	}).Methods(http.MethodPut, http.MethodPatch)

	// PUT teacher photo
	protected.HandleFunc("/api/teachers/{id}/photo", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		teacherID := vars["id"]
		teachers.UpdatePhoto(ctx, log, w, r, teacherID, s.Teacher)
	}).Methods(http.MethodPut)

	// DELETE teacher
	protected.HandleFunc("/api/teachers/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		teacherID := vars["id"]
		teachers.Delete(ctx, log, w, r, teacherID, s.Teacher)
	}).Methods(http.MethodDelete)

	// DELETE review
	protected.HandleFunc("/api/reviews/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		reviewID := vars["id"]
		reviews.Delete(ctx, log, w, r, reviewID, s.Review)
	}).Methods(http.MethodDelete)

	// PUT/PATCH school info
	protected.HandleFunc("/api/school", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		school.Update(ctx, log, w, r, s.School, s.School)
	}).Methods(http.MethodPut, http.MethodPatch)

	// POST doc
	protected.HandleFunc("/api/documents", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		docs.Upload(ctx, log, w, r, s.Document)
	}).Methods(http.MethodPost)

	// DELETE doc
	protected.HandleFunc("/api/documents/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		docID := vars["id"]
		docs.Delete(ctx, log, w, r, docID, s.Document)
	}).Methods(http.MethodDelete)

	// POST product
	protected.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		products.Create(ctx, log, w, r, s.Product)
	}).Methods(http.MethodPost)

	// PUT/PATCH product
	protected.HandleFunc("/api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		productID := vars["id"]
		products.Update(ctx, log, w, r, productID, s.Product, s.Product)
	}).Methods(http.MethodPut, http.MethodPatch)

	// DELETE product
	protected.HandleFunc("/api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		productID := vars["id"]
		products.Delete(ctx, log, w, r, productID, s.Product)
	}).Methods(http.MethodDelete)

	// POST product image
	protected.HandleFunc("/api/products/{id}/images", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		productID := vars["id"]
		products.AddImage(ctx, log, w, r, productID, s.Product)
	}).Methods(http.MethodPost)

	// DELETE product image
	protected.HandleFunc("/api/products/{id}/images/{imageID}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		imageID := vars["imageID"]
		products.DeleteImage(ctx, log, w, r, imageID, s.Product)
	}).Methods(http.MethodDelete)

	// GET orders
	protected.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		orders.Get(ctx, log, w, r, s.Order)
	}).Methods(http.MethodGet)

	// GET order by id
	protected.HandleFunc("/api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		vars := mux.Vars(r)
		orderID := vars["id"]
		orders.GetByID(ctx, log, w, r, orderID, s.Order)
	}).Methods(http.MethodGet)

	// Not allowed
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONError(w, http.StatusMethodNotAllowed, models.ErrMethodNotAllowed.Error())
	})
}
