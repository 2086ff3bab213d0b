package store_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/threadpool-agent/internal/models"
	"github.com/kubev2v/threadpool-agent/internal/store"
	"github.com/kubev2v/threadpool-agent/internal/store/migrations"
	srvErrors "github.com/kubev2v/threadpool-agent/pkg/errors"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

func workerEvent(t threadpool.EventType, worker int) models.Event {
	return models.Event{
		PoolID:   "pool-1",
		Type:     t,
		WorkerID: &worker,
		JobID:    uint64(worker + 100),
		Duration: 1500 * time.Microsecond,
	}
}

var _ = Describe("EventStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Insert and Get", func() {
		// Given a job event with a worker id and a duration
		// When we insert it and read it back
		// Then every field should round trip
		It("should store a job event", func() {
			err := s.Events().Insert(ctx, workerEvent(threadpool.EventJobCompleted, 2))
			Expect(err).NotTo(HaveOccurred())

			events, err := s.Events().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(1))

			got, err := s.Events().Get(ctx, events[0].ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.PoolID).To(Equal("pool-1"))
			Expect(got.Type).To(Equal(threadpool.EventJobCompleted))
			Expect(got.WorkerID).NotTo(BeNil())
			Expect(*got.WorkerID).To(Equal(2))
			Expect(got.JobID).To(Equal(uint64(102)))
			Expect(got.Duration).To(Equal(1500 * time.Microsecond))
			Expect(got.CreatedAt).NotTo(BeZero())
		})

		It("should store a resize event without a worker", func() {
			err := s.Events().Insert(ctx, models.Event{
				PoolID:  "pool-1",
				Type:    threadpool.EventResized,
				Load:    91.5,
				Workers: 3,
				Action:  threadpool.ResizeAdded,
			})
			Expect(err).NotTo(HaveOccurred())

			events, err := s.Events().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(1))
			Expect(events[0].WorkerID).To(BeNil())
			Expect(events[0].Load).To(Equal(91.5))
			Expect(events[0].Workers).To(Equal(3))
			Expect(events[0].Action).To(Equal(threadpool.ResizeAdded))
		})

		It("should return ResourceNotFoundError for an unknown id", func() {
			_, err := s.Events().Get(ctx, 4242)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("List", func() {
		BeforeEach(func() {
			for i := range 3 {
				Expect(s.Events().Insert(ctx, workerEvent(threadpool.EventJobCompleted, i))).To(Succeed())
			}
			Expect(s.Events().Insert(ctx, workerEvent(threadpool.EventJobPanicked, 1))).To(Succeed())
			Expect(s.Events().Insert(ctx, models.Event{PoolID: "pool-2", Type: threadpool.EventResized})).To(Succeed())
		})

		It("should filter by type", func() {
			events, err := s.Events().List(ctx, store.ByTypes(threadpool.EventJobPanicked, threadpool.EventResized))
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(2))

			count, err := s.Events().Count(ctx, store.ByTypes(threadpool.EventJobCompleted))
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(3))
		})

		It("should filter by worker", func() {
			events, err := s.Events().List(ctx, store.ByWorker(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(2))
			for _, e := range events {
				Expect(*e.WorkerID).To(Equal(1))
			}
		})

		It("should filter by pool", func() {
			count, err := s.Events().Count(ctx, store.ByPool("pool-2"))
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})

		It("should sort newest first and paginate", func() {
			all, err := s.Events().List(ctx, store.WithDefaultSort())
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(5))
			Expect(all[0].ID).To(BeNumerically(">", all[4].ID))

			page, err := s.Events().List(ctx, store.WithDefaultSort(), store.WithLimit(2), store.WithOffset(2))
			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(HaveLen(2))
			Expect(page[0].ID).To(Equal(all[2].ID))
			Expect(page[1].ID).To(Equal(all[3].ID))

			total, err := s.Events().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(5))
		})
	})

	Context("DeleteBefore", func() {
		It("should remove old events only", func() {
			old := workerEvent(threadpool.EventJobCompleted, 0)
			old.CreatedAt = time.Now().Add(-2 * time.Hour)
			Expect(s.Events().Insert(ctx, old)).To(Succeed())
			Expect(s.Events().Insert(ctx, workerEvent(threadpool.EventJobCompleted, 1))).To(Succeed())

			deleted, err := s.Events().DeleteBefore(ctx, time.Now().Add(-time.Hour))
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(1)))

			count, err := s.Events().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})
	})

	Context("Concurrent writes", func() {
		// Given multiple goroutines inserting events
		// When all of them write at the same time
		// Then every event should be stored
		It("should handle concurrent inserts from multiple goroutines", func() {
			const numGoroutines = 20
			var wg sync.WaitGroup
			errs := make(chan error, numGoroutines)

			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func(idx int) {
					defer wg.Done()
					if err := s.Events().Insert(ctx, workerEvent(threadpool.EventJobCompleted, idx)); err != nil {
						errs <- fmt.Errorf("goroutine %d: %w", idx, err)
					}
				}(i)
			}

			wg.Wait()
			close(errs)

			var all []error
			for err := range errs {
				all = append(all, err)
			}
			Expect(all).To(BeEmpty())

			count, err := s.Events().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(numGoroutines))
		})
	})
})
