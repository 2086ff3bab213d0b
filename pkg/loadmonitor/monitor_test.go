package loadmonitor_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/threadpool-agent/pkg/loadmonitor"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

var _ = Describe("CPUMonitor", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should satisfy the pool load monitor interface", func() {
		var _ threadpool.LoadMonitor = loadmonitor.NewCPUMonitor()
		var _ threadpool.LoadMonitor = loadmonitor.Static(0)
	})

	It("should return the aggregate sample", func() {
		var gotInterval time.Duration
		var gotPerCPU bool
		m := loadmonitor.NewCPUMonitor(
			loadmonitor.WithInterval(10*time.Millisecond),
			loadmonitor.WithSampleFunc(func(_ context.Context, interval time.Duration, percpu bool) ([]float64, error) {
				gotInterval = interval
				gotPerCPU = percpu
				return []float64{42.5}, nil
			}),
		)

		load, err := m.Sample(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(load).To(Equal(42.5))
		Expect(gotInterval).To(Equal(10 * time.Millisecond))
		Expect(gotPerCPU).To(BeFalse())
	})

	// Given a sampler that fails twice
	// When Sample is called with three retries
	// Then the third attempt's value is returned
	It("should retry transient failures", func() {
		calls := 0
		m := loadmonitor.NewCPUMonitor(
			loadmonitor.WithRetries(3),
			loadmonitor.WithSampleFunc(func(context.Context, time.Duration, bool) ([]float64, error) {
				calls++
				if calls < 3 {
					return nil, errors.New("proc not ready")
				}
				return []float64{12}, nil
			}),
		)

		load, err := m.Sample(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(load).To(Equal(12.0))
		Expect(calls).To(Equal(3))
	})

	It("should give up after the configured retries", func() {
		calls := 0
		m := loadmonitor.NewCPUMonitor(
			loadmonitor.WithRetries(2),
			loadmonitor.WithSampleFunc(func(context.Context, time.Duration, bool) ([]float64, error) {
				calls++
				return nil, errors.New("proc not ready")
			}),
		)

		_, err := m.Sample(ctx)
		Expect(err).To(MatchError(ContainSubstring("proc not ready")))
		Expect(calls).To(Equal(2))
	})

	It("should not retry an empty result", func() {
		calls := 0
		m := loadmonitor.NewCPUMonitor(
			loadmonitor.WithRetries(5),
			loadmonitor.WithSampleFunc(func(context.Context, time.Duration, bool) ([]float64, error) {
				calls++
				return []float64{}, nil
			}),
		)

		_, err := m.Sample(ctx)
		Expect(err).To(MatchError(loadmonitor.ErrNoSample))
		Expect(calls).To(Equal(1))
	})

	It("should sample the real host", func() {
		m := loadmonitor.NewCPUMonitor(loadmonitor.WithInterval(50 * time.Millisecond))
		load, err := m.Sample(ctx)
		if err != nil {
			Skip("cpu statistics unavailable: " + err.Error())
		}
		Expect(load).To(BeNumerically(">=", 0))
		Expect(load).To(BeNumerically("<=", 100))
	})
})

var _ = Describe("Static", func() {
	It("should always report its value", func() {
		s := loadmonitor.Static(77)
		for range 3 {
			load, err := s.Sample(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(load).To(Equal(77.0))
		}
		Expect(s.String()).To(Equal("static(77.0)"))
	})
})
