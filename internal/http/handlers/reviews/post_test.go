package reviews

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockReviewSubmitter struct{ mock.Mock }

func (m *mockReviewSubmitter) SubmitReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(*models.Review), args.Error(1)
}

func TestAdd_Success(t *testing.T) {
	t.Parallel()

	body := `{"author": "Anna", "text": "Wonderful school", "rating": 5}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	w := httptest.NewRecorder()
	ctx := req.Context()

	created := &models.Review{ID: "r1", Author: "Anna", Text: "Wonderful school", Rating: 5}

	rs := new(mockReviewSubmitter)
	rs.On("SubmitReview", ctx, mock.AnythingOfType("*models.Review")).
		Run(func(args mock.Arguments) {
			review := args.Get(1).(*models.Review)
			assert.Equal(t, "Anna", review.Author)
			assert.Equal(t, 5, review.Rating)
			assert.Equal(t, "203.0.113.7", review.IPAddress)
			assert.Equal(t, "Mozilla/5.0", review.UserAgent)
		}).
		Return(created, nil)

	Add(ctx, slog.Default(), w, req, rs)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var parsed map[string]dto.ReviewResponse
	err := json.NewDecoder(resp.Body).Decode(&parsed)
	assert.NoError(t, err)
	assert.Equal(t, "r1", parsed["response"].ID)

	rs.AssertExpectations(t)
}

func TestAdd_Fail_InvalidBody(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(`{bad`))
	w := httptest.NewRecorder()
	ctx := req.Context()

	rs := new(mockReviewSubmitter)

	Add(ctx, slog.Default(), w, req, rs)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	rs.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything)
}

func TestAdd_Fail_InvalidParams(t *testing.T) {
	t.Parallel()

	body := `{"author": "Anna", "text": "ok", "rating": 9}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctx := req.Context()

	rs := new(mockReviewSubmitter)
	rs.On("SubmitReview", ctx, mock.AnythingOfType("*models.Review")).
		Return((*models.Review)(nil), models.ErrInvalidParams)

	Add(ctx, slog.Default(), w, req, rs)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	rs.AssertExpectations(t)
}

func TestAdd_Fail_ServiceError(t *testing.T) {
	body := `{"author": "Anna", "text": "ok", "rating": 5}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctx := req.Context()

	rs := new(mockReviewSubmitter)
	rs.On("SubmitReview", ctx, mock.AnythingOfType("*models.Review")).
		Return((*models.Review)(nil), models.ErrInternal)

	Add(ctx, slog.Default(), w, req, rs)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	rs.AssertExpectations(t)
}
