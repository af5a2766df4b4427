package orders

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
	moneyutil "schoolsite/internal/utils/money"
)

// Place accepts a merch order from the public site. The quoted total
// must match the catalog prices or the order is rejected.
func Place(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, opl OrderPlacer) {
	op := pkg + "Place"

	log = log.With(slog.String("op", op))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}
	defer r.Body.Close()

	var payload dto.OrderRequest

	if err := json.Unmarshal(body, &payload); err != nil {
		log.Warn("unmarshal body", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	totalCents, err := moneyutil.ParsePrice(payload.Total)
	if err != nil {
		log.Warn("invalid total", slog.String("total", payload.Total))
		errutils.WriteJSONError(w, http.StatusBadRequest, moneyutil.ErrBadAmount.Error())
		return
	}

	order := &models.Order{
		ParentName:    payload.ParentName,
		ChildrenNames: payload.ChildrenNames,
		Phone:         payload.Phone,
		Comment:       payload.Comment,
		TotalCents:    totalCents,
	}

	items := make([]models.OrderItemInput, 0, len(payload.Items))
	for _, item := range payload.Items {
		items = append(items, models.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		})
	}

	placed, err := opl.PlaceOrder(ctx, order, items)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			log.Warn("order names unknown product", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrProductNotFound.Error())
			return
		}
		if errors.Is(err, models.ErrProductOutOfStock) {
			log.Warn("order names out of stock product", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrProductOutOfStock.Error())
			return
		}
		if errors.Is(err, models.ErrInvalidSize) {
			log.Warn("order names unavailable size", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidSize.Error())
			return
		}
		if errors.Is(err, models.ErrInvalidColor) {
			log.Warn("order names unavailable color", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidColor.Error())
			return
		}
		if errors.Is(err, models.ErrTotalMismatch) {
			log.Warn("client total disagrees with catalog prices")
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrTotalMismatch.Error())
			return
		}
		if errors.Is(err, models.ErrInvalidParams) {
			log.Warn("invalid order payload", slog.String("error", err.Error()))
			errutils.WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
			return
		}
		log.Error("failed to place order", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"response": orderResponse(placed),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
