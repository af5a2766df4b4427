package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"schoolsite/internal/dto"
	"schoolsite/internal/models"
	errutils "schoolsite/internal/utils/http_errors"
	moneyutil "schoolsite/internal/utils/money"
	parseutil "schoolsite/internal/utils/parseQuery"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, opr OrderProvider) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	limit := parseutil.ParseLimit(r.URL.Query().Get("limit"))

	orders, err := opr.Orders(ctx, limit)
	if err != nil {
		log.Error("failed to list orders", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, orderResponse(order))
	}

	response := map[string]any{
		"data": map[string]any{
			"orders": items,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func GetByID(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, orderID string, opr OrderProvider) {
	op := pkg + "GetByID"

	log = log.With(slog.String("op", op))

	order, err := opr.OrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			log.Warn("order not found", slog.String("order_id", orderID))
			errutils.WriteJSONError(w, http.StatusNotFound, models.ErrOrderNotFound.Error())
			return
		}
		log.Error("failed to get order by id", slog.String("error", err.Error()))
		errutils.WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return
	}

	response := map[string]any{
		"data": orderResponse(order),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func orderResponse(order *models.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       moneyutil.FormatPrice(item.PriceCents),
			Quantity:    item.Quantity,
			Size:        item.Size,
			Color:       item.Color,
		})
	}

	return dto.OrderResponse{
		ID:            order.ID,
		Number:        order.Number,
		ParentName:    order.ParentName,
		ChildrenNames: order.ChildrenNames,
		Phone:         order.Phone,
		Comment:       order.Comment,
		Total:         moneyutil.FormatPrice(order.TotalCents),
		CreatedAt:     order.CreatedAt,
		Items:         items,
	}
}
