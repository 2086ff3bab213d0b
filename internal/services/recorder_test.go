package services_test

import (
	"context"
	"database/sql"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/kubev2v/threadpool-agent/internal/services"
	"github.com/kubev2v/threadpool-agent/internal/store"
	"github.com/kubev2v/threadpool-agent/internal/store/migrations"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

func newTestStore(ctx context.Context) (*store.Store, *sql.DB) {
	db, err := store.NewDB(":memory:")
	Expect(err).NotTo(HaveOccurred())
	Expect(migrations.Run(ctx, db)).To(Succeed())
	return store.NewStore(db), db
}

var _ = Describe("EventRecorder", func() {
	var (
		ctx context.Context
		st  *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()
		st, db = newTestStore(ctx)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	// Given a pool whose events go to the recorder
	// When jobs run, one panics, and the pool shuts down
	// Then the store holds the worker and job events but no job_started
	It("should persist pool events", func() {
		recorder := services.NewEventRecorder(st, 128)
		recorder.Start()

		pool, err := threadpool.New(2, threadpool.StrategyNone,
			threadpool.WithLogger(zap.NewNop()),
			threadpool.WithEventHandler(recorder.Handle))
		Expect(err).NotTo(HaveOccurred())

		Expect(pool.Submit(func() {})).To(Succeed())
		Expect(pool.Submit(func() { panic(errors.New("bad job")) })).To(Succeed())

		srv := services.NewPoolService(pool, recorder, false)
		Expect(srv.Shutdown()).To(Succeed())

		count := func(t threadpool.EventType) int {
			n, err := st.Events().Count(ctx, store.ByTypes(t))
			Expect(err).NotTo(HaveOccurred())
			return n
		}
		Expect(count(threadpool.EventWorkerStarted)).To(Equal(2))
		Expect(count(threadpool.EventWorkerStopped)).To(Equal(2))
		Expect(count(threadpool.EventJobCompleted)).To(Equal(1))
		Expect(count(threadpool.EventJobPanicked)).To(Equal(1))
		Expect(count(threadpool.EventJobStarted)).To(Equal(0))

		events, err := st.Events().List(ctx, store.ByTypes(threadpool.EventJobPanicked))
		Expect(err).NotTo(HaveOccurred())
		Expect(events[0].Error).To(ContainSubstring("bad job"))
		Expect(events[0].PoolID).To(Equal(pool.ID()))
		Expect(recorder.Dropped()).To(BeZero())
	})

	It("should drop events when the buffer is full", func() {
		recorder := services.NewEventRecorder(st, 1)

		// not started: the single slot fills and the rest are dropped
		for i := range 5 {
			recorder.Handle(threadpool.Event{Type: threadpool.EventJobCompleted, PoolID: "p", WorkerID: i})
		}
		Expect(recorder.Dropped()).To(Equal(uint64(4)))

		recorder.Stop()
		Expect(recorder.Written()).To(Equal(uint64(1)))
	})

	It("should ignore events after Stop", func() {
		recorder := services.NewEventRecorder(st, 4)
		recorder.Start()
		recorder.Stop()
		recorder.Stop()

		Expect(func() {
			recorder.Handle(threadpool.Event{Type: threadpool.EventJobCompleted, PoolID: "p"})
		}).NotTo(Panic())

		n, err := st.Events().Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeZero())
	})
})

var _ = Describe("EventService", func() {
	var (
		ctx context.Context
		st  *store.Store
		db  *sql.DB
		srv *services.EventService
	)

	BeforeEach(func() {
		ctx = context.Background()
		st, db = newTestStore(ctx)
		srv = services.NewEventService(st)

		recorder := services.NewEventRecorder(st, 64)
		recorder.Start()
		for i := range 6 {
			recorder.Handle(threadpool.Event{Type: threadpool.EventJobCompleted, PoolID: "p", WorkerID: i % 2})
		}
		recorder.Handle(threadpool.Event{Type: threadpool.EventResized, PoolID: "p", Action: threadpool.ResizeAdded})
		recorder.Stop()
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	It("should paginate and report the total", func() {
		result, err := srv.List(ctx, services.EventListParams{Limit: 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Events).To(HaveLen(3))
		Expect(result.Total).To(Equal(7))

		result, err = srv.List(ctx, services.EventListParams{Limit: 3, Offset: 6})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Events).To(HaveLen(1))
	})

	It("should filter by type and worker", func() {
		worker := 1
		result, err := srv.List(ctx, services.EventListParams{
			Types:    []threadpool.EventType{threadpool.EventJobCompleted},
			WorkerID: &worker,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Total).To(Equal(3))
		Expect(result.Events).To(HaveLen(3))
	})

	It("should get an event by id", func() {
		result, err := srv.List(ctx, services.EventListParams{Types: []threadpool.EventType{threadpool.EventResized}})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Events).To(HaveLen(1))

		e, err := srv.Get(ctx, result.Events[0].ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Action).To(Equal(threadpool.ResizeAdded))
		Expect(e.WorkerID).To(BeNil())
	})

	It("should prune old events", func() {
		deleted, err := srv.Prune(ctx, time.Hour)
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted).To(BeZero())

		deleted, err = srv.Prune(ctx, -time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted).To(Equal(int64(7)))
	})
})
