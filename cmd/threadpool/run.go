package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"k8s.io/apimachinery/pkg/util/wait"

	v1 "github.com/kubev2v/threadpool-agent/api/v1"
	"github.com/kubev2v/threadpool-agent/internal/config"
	"github.com/kubev2v/threadpool-agent/internal/handlers"
	"github.com/kubev2v/threadpool-agent/internal/server"
	"github.com/kubev2v/threadpool-agent/internal/services"
	"github.com/kubev2v/threadpool-agent/internal/store"
	"github.com/kubev2v/threadpool-agent/internal/store/migrations"
	"github.com/kubev2v/threadpool-agent/pkg/loadmonitor"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

const (
	shutdownTimeout = 30 * time.Second
	pruneInterval   = time.Minute
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the worker pool with its admin API",
		PreRunE: cobrautil.SyncViperPreRunE(programName),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			flush, err := setupLogger(cfg.LogFormat, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer flush()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}

	registerPoolFlags(cmd.Flags())
	registerServerFlags(cmd.Flags())
	return cmd
}

// newPool builds the pool from configuration. handler may be nil.
func newPool(cfg *config.Configuration, monitor threadpool.LoadMonitor, handler threadpool.EventHandler) (*threadpool.Pool, error) {
	kind, err := threadpool.ParseStrategyKind(cfg.Pool.Strategy)
	if err != nil {
		return nil, err
	}

	opts := []threadpool.Option{
		threadpool.WithLogger(zap.L().Named("threadpool")),
		threadpool.WithLoadMonitor(monitor),
		threadpool.WithResize(cfg.Autoscale.Resize),
		threadpool.WithThresholds(cfg.Autoscale.HighWatermark, cfg.Autoscale.LowWatermark),
		threadpool.WithMaxWorkers(cfg.Pool.MaxWorkers),
		threadpool.WithQueueCapacity(cfg.Pool.QueueCapacity),
	}
	if handler != nil {
		opts = append(opts, threadpool.WithEventHandler(handler))
	}

	return threadpool.New(cfg.Pool.NumWorkers, kind, opts...)
}

func run(ctx context.Context, cfg *config.Configuration) (err error) {
	log := zap.S().Named("run")
	log.Infow("configuration loaded", "config", cfg.DebugMap())

	db, err := store.NewDB(store.DBPath(cfg.Store.DataFolder))
	if err != nil {
		return err
	}
	if err := migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return err
	}
	st := store.NewStore(db)
	defer func() { err = multierr.Append(err, st.Close()) }()

	recorder := services.NewEventRecorder(st, cfg.Store.EventBuffer)
	recorder.Start()

	monitor := loadmonitor.NewCPUMonitor(loadmonitor.WithInterval(cfg.Autoscale.SampleWindow))
	pool, err := newPool(cfg, monitor, recorder.Handle)
	if err != nil {
		recorder.Stop()
		return err
	}

	poolSrv := services.NewPoolService(pool, recorder, cfg.Autoscale.Resize)
	eventSrv := services.NewEventService(st)
	defer func() { err = multierr.Append(err, poolSrv.Shutdown()) }()

	h := handlers.New(poolSrv, eventSrv)
	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Start(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(stopCtx)
	})

	if cfg.Autoscale.Resize {
		autoscaler := services.NewAutoscaler(poolSrv, cfg.Autoscale.Interval)
		g.Go(func() error {
			autoscaler.Run(gctx)
			return nil
		})
	}

	if cfg.Store.Retention > 0 {
		g.Go(func() error {
			wait.UntilWithContext(gctx, func(ctx context.Context) {
				if _, err := eventSrv.Prune(ctx, cfg.Store.Retention); err != nil {
					log.Warnw("failed to prune events", "error", err)
				}
			}, pruneInterval)
			return nil
		})
	}

	err = g.Wait()
	log.Infow("shutting down", "error", err)
	return err
}
