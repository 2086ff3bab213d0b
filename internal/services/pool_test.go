package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/kubev2v/threadpool-agent/internal/models"
	"github.com/kubev2v/threadpool-agent/internal/services"
	srvErrors "github.com/kubev2v/threadpool-agent/pkg/errors"
	"github.com/kubev2v/threadpool-agent/pkg/loadmonitor"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

var _ = Describe("PoolService", func() {
	var (
		ctx  context.Context
		pool *threadpool.Pool
		srv  *services.PoolService
	)

	newService := func(workers int, kind threadpool.StrategyKind, load float64) {
		var err error
		pool, err = threadpool.New(workers, kind,
			threadpool.WithLogger(zap.NewNop()),
			threadpool.WithLoadMonitor(loadmonitor.Static(load)))
		Expect(err).NotTo(HaveOccurred())
		srv = services.NewPoolService(pool, nil, true)
	}

	BeforeEach(func() {
		ctx = context.Background()
	})

	AfterEach(func() {
		if srv != nil {
			_ = srv.Shutdown()
		}
	})

	Context("SubmitTask", func() {
		It("should deliver the task result", func() {
			newService(2, threadpool.StrategyNone, 50)

			future, err := srv.SubmitTask(models.Task{Name: "task-1", Duration: 10})
			Expect(err).NotTo(HaveOccurred())

			var result models.TaskResult
			Eventually(future.C(), 2*time.Second).Should(Receive(&result))
			Expect(result.Name).To(Equal("task-1"))
			Expect(result.Canceled).To(BeFalse())
			Expect(result.Panicked).To(BeFalse())
		})

		// Given a task asked to panic
		// When it runs
		// Then its future reports the panic and the pool keeps its worker
		It("should report a panicking task", func() {
			newService(1, threadpool.StrategyNone, 50)

			future, err := srv.SubmitTask(models.Task{Name: "boom", Panic: true})
			Expect(err).NotTo(HaveOccurred())

			result, err := future.Wait(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Panicked).To(BeTrue())
			Expect(srv.Status().Stats.Workers).To(Equal(1))
			Eventually(func() uint64 { return srv.Status().Stats.Panicked }).Should(Equal(uint64(1)))
		})

		It("should cancel a queued task", func() {
			newService(1, threadpool.StrategyNone, 50)

			blocker, err := srv.SubmitTask(models.Task{Name: "blocker", Duration: 200})
			Expect(err).NotTo(HaveOccurred())
			queued, err := srv.SubmitTask(models.Task{Name: "queued", Duration: 10})
			Expect(err).NotTo(HaveOccurred())

			queued.Stop()

			result, err := queued.Wait(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Canceled).To(BeTrue())

			result, err = blocker.Wait(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Canceled).To(BeFalse())
		})

		It("should reject a negative duration", func() {
			newService(1, threadpool.StrategyNone, 50)

			_, err := srv.SubmitTask(models.Task{Name: "bad", Duration: -1})
			Expect(srvErrors.IsInvalidArgumentError(err)).To(BeTrue())
		})

		It("should fail once the pool is shut down", func() {
			newService(1, threadpool.StrategyNone, 50)
			Expect(srv.Shutdown()).To(Succeed())

			_, err := srv.SubmitTask(models.Task{Name: "late"})
			Expect(err).To(MatchError(threadpool.ErrPoolClosed))
		})
	})

	Context("Resize", func() {
		It("should remember the last decision", func() {
			newService(1, threadpool.StrategyPriority, 95)
			Expect(srv.Status().LastDecision).To(BeNil())

			decision, err := srv.Resize(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(decision.Action).To(Equal(threadpool.ResizeAdded))

			status := srv.Status()
			Expect(status.LastDecision).NotTo(BeNil())
			Expect(status.LastDecision.Action).To(Equal(threadpool.ResizeAdded))
			Expect(status.Stats.Workers).To(Equal(2))
			Expect(status.Strategy).To(Equal(threadpool.StrategyPriority))
			Expect(status.Autoscale).To(BeTrue())
		})
	})

	Context("AddWorker and RemoveWorker", func() {
		It("should pass through pool errors", func() {
			newService(1, threadpool.StrategyRoundRobin, 50)

			Expect(srv.RemoveWorker()).To(MatchError(threadpool.ErrLastWorker))
			Expect(srv.AddWorker()).To(Succeed())
			Expect(srv.Status().Stats.Workers).To(Equal(2))
			Expect(srv.RemoveWorker()).To(Succeed())
		})
	})
})
