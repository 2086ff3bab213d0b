package handlers

import (
	"github.com/kubev2v/threadpool-agent/internal/services"
)

type Handler struct {
	poolSrv  *services.PoolService
	eventSrv *services.EventService
}

func New(poolSrv *services.PoolService, eventSrv *services.EventService) *Handler {
	return &Handler{
		poolSrv:  poolSrv,
		eventSrv: eventSrv,
	}
}
