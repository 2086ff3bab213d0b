package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

type Resizer interface {
	Resize(ctx context.Context) (threadpool.ResizeDecision, error)
}

// Autoscaler calls Resize on a fixed period until its context is done.
type Autoscaler struct {
	resizer  Resizer
	interval time.Duration
	log      *zap.SugaredLogger
}

func NewAutoscaler(r Resizer, interval time.Duration) *Autoscaler {
	return &Autoscaler{
		resizer:  r,
		interval: interval,
		log:      zap.S().Named("autoscaler"),
	}
}

// Run blocks until ctx is canceled.
func (a *Autoscaler) Run(ctx context.Context) {
	a.log.Infow("autoscaler started", "interval", a.interval)
	wait.UntilWithContext(ctx, a.tick, a.interval)
	a.log.Info("autoscaler stopped")
}

func (a *Autoscaler) tick(ctx context.Context) {
	decision, err := a.resizer.Resize(ctx)
	if err != nil {
		a.log.Warnw("resize check failed", "error", err)
		return
	}
	if decision.Action != threadpool.ResizeNone {
		a.log.Infow("pool resized", "action", decision.Action, "load", decision.Load, "workers", decision.Workers)
	}
}
