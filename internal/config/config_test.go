package config_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/threadpool-agent/internal/config"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

var _ = Describe("Configuration", func() {
	Context("defaults", func() {
		It("should apply the default values", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			Expect(cfg.Server.ServerMode).To(Equal("dev"))
			Expect(cfg.Server.HTTPPort).To(Equal(8000))
			Expect(cfg.Pool.NumWorkers).To(Equal(4))
			Expect(cfg.Pool.Strategy).To(Equal("none"))
			Expect(cfg.Pool.QueueCapacity).To(BeZero())
			Expect(cfg.Autoscale.Resize).To(BeTrue())
			Expect(cfg.Autoscale.Interval).To(Equal(5 * time.Second))
			Expect(cfg.Autoscale.SampleWindow).To(Equal(500 * time.Millisecond))
			Expect(cfg.Autoscale.HighWatermark).To(Equal(threadpool.DefaultHighWatermark))
			Expect(cfg.Autoscale.LowWatermark).To(Equal(threadpool.DefaultLowWatermark))
			Expect(cfg.Store.EventBuffer).To(Equal(256))
			Expect(cfg.Store.Retention).To(Equal(24 * time.Hour))
			Expect(cfg.Auth.Enabled).To(BeFalse())
			Expect(cfg.LogFormat).To(Equal("console"))
			Expect(cfg.LogLevel).To(Equal("info"))

			Expect(cfg.Validate()).To(Succeed())
		})

		It("should let options override defaults", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(
				config.WithPool(*config.NewPoolWithOptionsAndDefaults(
					config.WithNumWorkers(2),
					config.WithStrategy("round-robin"),
				)),
				config.WithLogLevel("debug"),
			)

			Expect(cfg.Pool.NumWorkers).To(Equal(2))
			Expect(cfg.Pool.Strategy).To(Equal("round-robin"))
			Expect(cfg.Pool.QueueCapacity).To(BeZero())
			Expect(cfg.LogLevel).To(Equal("debug"))
		})
	})

	Context("Validate", func() {
		var cfg *config.Configuration

		BeforeEach(func() {
			cfg = config.NewConfigurationWithOptionsAndDefaults()
		})

		DescribeTable("should reject invalid settings",
			func(mutate func(*config.Configuration), substr string) {
				mutate(cfg)
				err := cfg.Validate()
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring(substr))
			},
			Entry("zero workers", func(c *config.Configuration) { c.Pool.NumWorkers = 0 }, "at least 1"),
			Entry("unknown strategy", func(c *config.Configuration) { c.Pool.Strategy = "lottery" }, "unknown scheduling strategy"),
			Entry("max below initial", func(c *config.Configuration) { c.Pool.MaxWorkers = 2 }, "max workers"),
			Entry("negative queue capacity", func(c *config.Configuration) { c.Pool.QueueCapacity = -1 }, "queue capacity"),
			Entry("inverted thresholds", func(c *config.Configuration) {
				c.Autoscale.HighWatermark = 20
				c.Autoscale.LowWatermark = 50
			}, "invalid resize thresholds"),
			Entry("high above 100", func(c *config.Configuration) { c.Autoscale.HighWatermark = 120 }, "invalid resize thresholds"),
			Entry("zero interval", func(c *config.Configuration) { c.Autoscale.Interval = 0 }, "interval"),
			Entry("bad port", func(c *config.Configuration) { c.Server.HTTPPort = 70000 }, "port"),
			Entry("bad mode", func(c *config.Configuration) { c.Server.ServerMode = "staging" }, "server mode"),
			Entry("zero event buffer", func(c *config.Configuration) { c.Store.EventBuffer = 0 }, "event buffer"),
			Entry("negative retention", func(c *config.Configuration) { c.Store.Retention = -time.Second }, "retention"),
			Entry("auth without secret", func(c *config.Configuration) { c.Auth.Enabled = true }, "secret"),
			Entry("bad log format", func(c *config.Configuration) { c.LogFormat = "xml" }, "log format"),
		)

		It("should report all problems together", func() {
			cfg.Pool.NumWorkers = 0
			cfg.LogFormat = "xml"

			err := cfg.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("at least 1"))
			Expect(err.Error()).To(ContainSubstring("log format"))
		})

		It("should accept an interval of zero when resizing is off", func() {
			cfg.Autoscale.Resize = false
			cfg.Autoscale.Interval = 0
			Expect(cfg.Validate()).To(Succeed())
		})
	})

	Context("DebugMap", func() {
		It("should not expose the authentication secret", func() {
			auth := config.NewAuthenticationWithOptionsAndDefaults(
				config.WithEnabled(true),
				config.WithSecret("s3cr3t"),
			)

			m := auth.DebugMap()
			Expect(m).To(HaveKey("Enabled"))
			Expect(m).NotTo(HaveKey("Secret"))
		})

		It("should list every top level section", func() {
			m := config.NewConfigurationWithOptionsAndDefaults().DebugMap()
			Expect(m).To(HaveKey("Server"))
			Expect(m).To(HaveKey("Pool"))
			Expect(m).To(HaveKey("Autoscale"))
			Expect(m).To(HaveKey("Store"))
			Expect(m).To(HaveKey("Auth"))
			Expect(m).To(HaveKey("LogLevel"))
		})
	})
})
