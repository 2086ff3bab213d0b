package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/kubev2v/threadpool-agent/pkg/loadmonitor"
	"github.com/kubev2v/threadpool-agent/pkg/threadpool"
)

var _ = Describe("loadConfig", func() {
	var fs *pflag.FlagSet

	BeforeEach(func() {
		fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
		registerPoolFlags(fs)
		registerServerFlags(fs)
	})

	It("returns defaults when nothing is set", func() {
		cfg, err := loadConfig(fs)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Pool.NumWorkers).To(Equal(4))
		Expect(cfg.Pool.Strategy).To(Equal("none"))
		Expect(cfg.Autoscale.HighWatermark).To(Equal(80.0))
		Expect(cfg.Autoscale.LowWatermark).To(Equal(30.0))
		Expect(cfg.Server.HTTPPort).To(Equal(8000))
	})

	It("applies flags", func() {
		Expect(fs.Parse([]string{"--workers=2", "--strategy=priority", "--high-watermark=90", "--http-port=9100"})).To(Succeed())

		cfg, err := loadConfig(fs)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Pool.NumWorkers).To(Equal(2))
		Expect(cfg.Pool.Strategy).To(Equal("priority"))
		Expect(cfg.Autoscale.HighWatermark).To(Equal(90.0))
		Expect(cfg.Server.HTTPPort).To(Equal(9100))
	})

	It("reads a config file and lets flags win", func() {
		// Given a config file
		path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
		Expect(os.WriteFile(path, []byte("workers: 6\nstrategy: round-robin\n"), 0o600)).To(Succeed())

		// When a flag overrides one of its keys
		Expect(fs.Parse([]string{"--config=" + path, "--workers=3"})).To(Succeed())
		cfg, err := loadConfig(fs)

		// Then the flag wins and the rest comes from the file
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Pool.NumWorkers).To(Equal(3))
		Expect(cfg.Pool.Strategy).To(Equal("round-robin"))
	})

	It("rejects an invalid configuration", func() {
		Expect(fs.Parse([]string{"--workers=0"})).To(Succeed())

		_, err := loadConfig(fs)
		Expect(err).To(HaveOccurred())
	})

	It("leaves server settings at defaults for pool-only commands", func() {
		poolOnly := pflag.NewFlagSet("demo", pflag.ContinueOnError)
		registerPoolFlags(poolOnly)

		cfg, err := loadConfig(poolOnly)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Server.HTTPPort).To(Equal(8000))
	})
})

var _ = Describe("setupLogger", func() {
	It("rejects unknown formats and levels", func() {
		_, err := setupLogger("xml", "info")
		Expect(err).To(HaveOccurred())

		_, err = setupLogger("json", "loud")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("runDemo", func() {
	BeforeEach(func() {
		color.NoColor = true
	})

	It("runs every task, resizes once and prints a summary", func() {
		fs := pflag.NewFlagSet("demo", pflag.ContinueOnError)
		registerPoolFlags(fs)
		Expect(fs.Parse([]string{"--workers=2", "--strategy=priority"})).To(Succeed())
		cfg, err := loadConfig(fs)
		Expect(err).NotTo(HaveOccurred())

		out := &bytes.Buffer{}
		opts := demoOptions{jobs: 5, duration: 10 * time.Millisecond}

		err = runDemo(context.Background(), out, cfg, loadmonitor.Static(95), opts)
		Expect(err).NotTo(HaveOccurred())

		Expect(out.String()).To(ContainSubstring("Thread pool summary"))
		Expect(out.String()).To(ContainSubstring("strategy:   priority"))
		Expect(out.String()).To(ContainSubstring("completed:  5"))
		Expect(out.String()).To(ContainSubstring(string(threadpool.ResizeAdded)))
	})
})
