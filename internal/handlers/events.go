package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/threadpool-agent/api/v1"
	"github.com/kubev2v/threadpool-agent/internal/services"
	srvErrors "github.com/kubev2v/threadpool-agent/pkg/errors"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// GetEvents returns the event history with filtering and pagination
// (GET /events)
func (h *Handler) GetEvents(c *gin.Context, params v1.GetEventsParams) {
	limit := defaultPageSize
	if params.Limit != nil && *params.Limit > 0 {
		limit = min(*params.Limit, maxPageSize)
	}
	offset := 0
	if params.Offset != nil && *params.Offset > 0 {
		offset = *params.Offset
	}

	svcParams := services.EventListParams{
		WorkerID: params.Worker,
		Limit:    uint64(limit),
		Offset:   uint64(offset),
	}
	if params.Type != nil {
		for _, t := range *params.Type {
			svcParams.Types = append(svcParams.Types, threadpool.EventType(t))
		}
	}

	result, err := h.eventSrv.List(c.Request.Context(), svcParams)
	if err != nil {
		zap.S().Named("event_handler").Errorw("failed to list events", "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "failed to list events"})
		return
	}

	apiEvents := make([]v1.Event, 0, len(result.Events))
	for _, e := range result.Events {
		apiEvents = append(apiEvents, v1.NewEventFromModel(e))
	}

	c.JSON(http.StatusOK, v1.EventListResponse{
		Events: apiEvents,
		Total:  result.Total,
		Limit:  limit,
		Offset: offset,
	})
}

// GetEvent returns a single event
// (GET /events/{id})
func (h *Handler) GetEvent(c *gin.Context, id int64) {
	e, err := h.eventSrv.Get(c.Request.Context(), id)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			c.JSON(http.StatusNotFound, v1.Error{Error: err.Error()})
			return
		}
		zap.S().Named("event_handler").Errorw("failed to get event", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "failed to get event"})
		return
	}

	c.JSON(http.StatusOK, v1.NewEventFromModel(*e))
}
