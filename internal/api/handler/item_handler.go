package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	apimw "github.com/ricirt/producer-consumer/internal/api/middleware"
	"github.com/ricirt/producer-consumer/internal/domain"
	"github.com/ricirt/producer-consumer/internal/service"
)

const defaultListLimit = 50

// ItemHandler handles item submission and the consumption journal.
type ItemHandler struct {
	svc    *service.ItemService
	logger *zap.Logger
}

func NewItemHandler(svc *service.ItemService, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, logger: logger}
}

// Submit handles POST /api/v1/items
//
// @Summary     Put an item on the queue
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       body  body      domain.SubmitItemRequest  true  "Item payload"
// @Success     202   {object}  domain.Item
// @Failure     422   {object}  map[string]string
// @Failure     503   {object}  map[string]string
// @Router      /api/v1/items [post]
func (h *ItemHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	item, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		h.logger.Warn("submit item failed",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		mapError(w, err)
		return
	}
	respondJSON(w, http.StatusAccepted, item)
}

// ListConsumptions handles GET /api/v1/consumptions
//
// @Summary  Latest consumptions, newest first
// @Tags     consumptions
// @Produce  json
// @Param    consumer  query     string  false  "Consumer name"
// @Param    limit     query     int     false  "Max records (1-1000, default 50)"
// @Success  200       {object}  map[string]any
// @Failure  422       {object}  map[string]string
// @Router   /api/v1/consumptions [get]
func (h *ItemHandler) ListConsumptions(w http.ResponseWriter, r *http.Request) {
	filter := domain.ConsumptionFilter{Limit: defaultListLimit}
	q := r.URL.Query()

	if v := q.Get("consumer"); v != "" {
		filter.Consumer = &v
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			mapError(w, domain.ErrInvalidLimit)
			return
		}
		filter.Limit = n
	}

	list, err := h.svc.Consumptions(r.Context(), filter)
	if err != nil {
		mapError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"data": list, "count": len(list)})
}

// Stats handles GET /api/v1/consumptions/stats
//
// @Summary  Number of consumed items per consumer
// @Tags     consumptions
// @Produce  json
// @Success  200  {object}  map[string]any
// @Router   /api/v1/consumptions/stats [get]
func (h *ItemHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Stats(r.Context())
	if err != nil {
		h.logger.Error("consumption stats failed", zap.Error(err))
		mapError(w, err)
		return
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	respondJSON(w, http.StatusOK, map[string]any{"consumers": counts, "total": total})
}

// GetQueue handles GET /api/v1/queue
//
// @Summary  Real-time queue depth snapshot
// @Tags     queue
// @Produce  json
// @Success  200  {object}  map[string]int
// @Router   /api/v1/queue [get]
func (h *ItemHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	depth, capacity := h.svc.QueueDepth()
	respondJSON(w, http.StatusOK, map[string]int{
		"depth":    depth,
		"capacity": capacity,
	})
}
