package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/threadpool-agent/api/v1"
	srvErrors "github.com/kubev2v/threadpool-agent/pkg/errors"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

// GetPool returns the pool status
// (GET /pool)
func (h *Handler) GetPool(c *gin.Context) {
	var status v1.PoolStatus
	status.FromModel(h.poolSrv.Status())
	c.JSON(http.StatusOK, status)
}

// AddWorker adds one worker to the pool
// (POST /pool/workers)
func (h *Handler) AddWorker(c *gin.Context) {
	if err := h.poolSrv.AddWorker(); err != nil {
		h.poolError(c, "failed to add worker", err)
		return
	}
	h.GetPool(c)
}

// RemoveWorker removes one worker from the pool
// (DELETE /pool/workers)
func (h *Handler) RemoveWorker(c *gin.Context) {
	if err := h.poolSrv.RemoveWorker(); err != nil {
		h.poolError(c, "failed to remove worker", err)
		return
	}
	h.GetPool(c)
}

// ResizePool runs one load check
// (POST /pool/resize)
func (h *Handler) ResizePool(c *gin.Context) {
	decision, err := h.poolSrv.Resize(c.Request.Context())
	if err != nil {
		h.poolError(c, "failed to resize pool", err)
		return
	}
	c.JSON(http.StatusOK, v1.NewResizeDecision(decision))
}

// SubmitJob queues a synthetic job
// (POST /jobs)
func (h *Handler) SubmitJob(c *gin.Context) {
	var req v1.SubmitJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	task := v1.NewTaskFromRequest(req, "job-"+uuid.NewString()[:8])

	if _, err := h.poolSrv.SubmitTask(task); err != nil {
		h.poolError(c, "failed to submit job", err)
		return
	}

	c.JSON(http.StatusAccepted, v1.SubmitJobResponse{Name: task.Name})
}

func (h *Handler) poolError(c *gin.Context, msg string, err error) {
	switch {
	case srvErrors.IsInvalidArgumentError(err):
		c.JSON(http.StatusBadRequest, v1.Error{Error: err.Error()})
	case errors.Is(err, threadpool.ErrLastWorker), errors.Is(err, threadpool.ErrMaxWorkers):
		c.JSON(http.StatusConflict, v1.Error{Error: err.Error()})
	case errors.Is(err, threadpool.ErrQueueFull):
		c.JSON(http.StatusTooManyRequests, v1.Error{Error: err.Error()})
	case errors.Is(err, threadpool.ErrPoolClosed):
		c.JSON(http.StatusServiceUnavailable, v1.Error{Error: err.Error()})
	default:
		zap.S().Named("pool_handler").Errorw(msg, "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: msg})
	}
}
