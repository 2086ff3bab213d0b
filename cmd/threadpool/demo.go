package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/threadpool-agent/internal/config"
	"github.com/kubev2v/threadpool-agent/internal/models"
	"github.com/kubev2v/threadpool-agent/internal/services"
	"github.com/kubev2v/threadpool-agent/pkg/loadmonitor"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

type demoOptions struct {
	jobs     int
	duration time.Duration
	load     float64
}

func newDemoCmd() *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:     "demo",
		Short:   "Submit a batch of sleeping tasks, run one resize check and print a summary",
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

			var monitor threadpool.LoadMonitor = loadmonitor.NewCPUMonitor(loadmonitor.WithInterval(cfg.Autoscale.SampleWindow))
			if cmd.Flags().Changed("load") {
				monitor = loadmonitor.Static(opts.load)
			}

			return runDemo(cmd.Context(), cmd.OutOrStdout(), cfg, monitor, opts)
		},
	}

	registerPoolFlags(cmd.Flags())
	cmd.Flags().IntVar(&opts.jobs, "jobs", 4, "Number of tasks to submit")
	cmd.Flags().DurationVar(&opts.duration, "task-duration", time.Second, "How long each task sleeps")
	cmd.Flags().Float64Var(&opts.load, "load", 0, "Report this CPU load instead of sampling the host")
	return cmd
}

type demoSummary struct {
	Strategy  threadpool.StrategyKind
	Completed int
	Canceled  int
	Panicked  int
	Decision  threadpool.ResizeDecision
	Stats     threadpool.Stats
	Elapsed   time.Duration
}

func runDemo(ctx context.Context, out io.Writer, cfg *config.Configuration, monitor threadpool.LoadMonitor, opts demoOptions) error {
	log := zap.S().Named("demo")

	pool, err := newPool(cfg, monitor, nil)
	if err != nil {
		return err
	}
	srv := services.NewPoolService(pool, nil, cfg.Autoscale.Resize)

	start := time.Now()
	futures := make([]*models.Future[models.TaskResult], 0, opts.jobs)
	for i := 1; i <= opts.jobs; i++ {
		name := fmt.Sprintf("Task-%d", i)
		log.Infow("submitting task", "task", name)

		f, err := srv.SubmitTask(models.Task{Name: name, Duration: opts.duration.Milliseconds(), Priority: i})
		if err != nil {
			_ = srv.Shutdown()
			return err
		}
		futures = append(futures, f)
	}

	decision, err := srv.Resize(ctx)
	if err != nil {
		log.Warnw("resize check failed", "error", err)
	}

	summary := demoSummary{Strategy: pool.Strategy(), Decision: decision}
	for _, f := range futures {
		res, err := f.Wait(ctx)
		if err != nil {
			_ = srv.Shutdown()
			return err
		}
		switch {
		case res.Panicked:
			summary.Panicked++
		case res.Canceled:
			summary.Canceled++
		default:
			summary.Completed++
		}
	}

	if err := srv.Shutdown(); err != nil {
		return err
	}
	summary.Stats = pool.Stats()
	summary.Elapsed = time.Since(start)

	printSummary(out, summary)
	return nil
}

func printSummary(out io.Writer, s demoSummary) {
	header := color.New(color.FgCyan, color.Bold).SprintFunc()
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(out, header("Thread pool summary"))
	fmt.Fprintf(out, "  strategy:   %s\n", s.Strategy)
	fmt.Fprintf(out, "  completed:  %s\n", ok(s.Completed))
	if s.Panicked > 0 {
		fmt.Fprintf(out, "  panicked:   %s\n", bad(s.Panicked))
	}
	if s.Canceled > 0 {
		fmt.Fprintf(out, "  canceled:   %s\n", warn(s.Canceled))
	}
	fmt.Fprintf(out, "  resize:     %s (load %.1f%%, %d workers)\n", warn(s.Decision.Action), s.Decision.Load, s.Decision.Workers)
	fmt.Fprintf(out, "  submitted:  %d\n", s.Stats.Submitted)
	fmt.Fprintf(out, "  elapsed:    %s\n", s.Elapsed.Round(time.Millisecond))
}
