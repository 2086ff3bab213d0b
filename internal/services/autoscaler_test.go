package services_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/threadpool-agent/internal/services"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

type fakeResizer struct {
	calls atomic.Int32
	err   error
}

func (f *fakeResizer) Resize(context.Context) (threadpool.ResizeDecision, error) {
	f.calls.Add(1)
	return threadpool.ResizeDecision{Action: threadpool.ResizeNone}, f.err
}

var _ = Describe("Autoscaler", func() {
	It("should resize periodically until canceled", func() {
		resizer := &fakeResizer{}
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan struct{})
		go func() {
			defer close(done)
			services.NewAutoscaler(resizer, 10*time.Millisecond).Run(ctx)
		}()

		Eventually(resizer.calls.Load, time.Second).Should(BeNumerically(">=", 3))
		cancel()
		Eventually(done, time.Second).Should(BeClosed())

		stopped := resizer.calls.Load()
		Consistently(resizer.calls.Load, 50*time.Millisecond).Should(Equal(stopped))
	})

	It("should keep running when a check fails", func() {
		resizer := &fakeResizer{err: errors.New("pool closed")}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go services.NewAutoscaler(resizer, 10*time.Millisecond).Run(ctx)

		Eventually(resizer.calls.Load, time.Second).Should(BeNumerically(">=", 3))
	})
})
