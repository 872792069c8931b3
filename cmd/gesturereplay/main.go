// Command gesturereplay replays a JSON gesture script against a virtual
// surface and logs every gesture it recognizes.
//
// Usage:
//
//	gesturereplay [-config gesture.yaml] [-log-level debug] [-metrics] script.json
//
// Thresholds and the log level come from the config package: defaults, then
// the YAML file, then GESTURE_ environment variables. The -log-level flag
// overrides the configured level.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/phanxgames/gesture"
	"github.com/phanxgames/gesture/config"
	"github.com/phanxgames/gesture/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

var replayEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // fixed virtual start time

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gesturereplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML threshold file (default $GESTURE_CONFIG)")
	logLevel := fs.String("log-level", "", "log level override: debug, info, warn, error")
	dumpMetrics := fs.Bool("metrics", false, "print Prometheus metrics after the replay")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: gesturereplay [flags] script.json")
		fs.PrintDefaults()
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "failed to load config: "+err.Error())
		return exitFailed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitUsage
	}
	log := slog.New(slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: level}))

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		log.Error("failed to read script", slog.String("path", fs.Arg(0)), slog.Any("error", err))
		return exitFailed
	}
	runner, err := gesture.LoadScript(data)
	if err != nil {
		log.Error("failed to load script", slog.String("path", fs.Arg(0)), slog.Any("error", err))
		return exitFailed
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(metrics.WithPrometheusRegistry(registry))

	r := newReplay(cfg.Thresholds(), log, collector)
	defer r.dispose()
	r.play(runner)

	log.Info("replay finished",
		slog.Int("steps", runner.Len()),
		slog.Int("gestures", r.recognized),
		slog.Duration("virtual_time", r.clock.Now().Sub(replayEpoch)))

	if *dumpMetrics {
		if err := writeMetrics(stdout, registry); err != nil {
			log.Error("failed to write metrics", slog.Any("error", err))
			return exitFailed
		}
	}
	return exitOK
}

// replay binds every gesture callback to a surface driven by a ManualClock.
type replay struct {
	clock      *gesture.ManualClock
	surface    *gesture.Surface
	log        *slog.Logger
	collector  *metrics.Collector
	dispose    func()
	recognized int
}

func newReplay(th gesture.ThresholdTable, log *slog.Logger, collector *metrics.Collector) *replay {
	r := &replay{
		clock:     gesture.NewManualClock(replayEpoch),
		log:       log,
		collector: collector,
	}
	r.surface = gesture.NewSurface(gesture.WithClock(r.clock))
	r.dispose = gesture.Bind(r.surface, gesture.Options{
		OnTap: func(t gesture.Tap) {
			r.report("tap", slog.Float64("x", t.Position.X), slog.Float64("y", t.Position.Y), slog.Duration("elapsed", t.Elapsed))
		},
		OnLongPress: func(lp gesture.LongPress) {
			r.report("long_press", slog.Float64("x", lp.Position.X), slog.Float64("y", lp.Position.Y))
		},
		OnSwipe: func(s gesture.Swipe) {
			r.report("swipe", slog.String("direction", s.Direction.String()),
				slog.Float64("distance", s.Distance), slog.Duration("elapsed", s.Elapsed))
		},
		OnPan: func(p gesture.Pan) {
			r.trace("pan", slog.Float64("dx", p.DeltaX), slog.Float64("dy", p.DeltaY))
		},
		OnPinch: func(p gesture.Pinch) {
			r.report("pinch", slog.Float64("scale", p.Scale), slog.Float64("rotation", p.Rotation))
		},
		OnPull: func(p gesture.Pull) {
			r.trace("pull", slog.Float64("distance", p.Distance), slog.Float64("progress", p.Progress))
		},
		OnRefresh: func(rf gesture.Refresh) {
			r.report("refresh", slog.Float64("pull", rf.PullDistance))
			// Replays complete refreshes immediately.
			rf.Done()
			r.collector.RefreshDone()
		},
		OnPullRelease: func(p gesture.Pull) {
			r.report("pull_release", slog.Float64("distance", p.Distance))
		},
		Thresholds: &th,
		Sink:       collector,
		Logger:     log,
	})
	return r
}

func (r *replay) play(runner *gesture.Runner) {
	for i := 0; runner.Step(r.surface); i++ {
		r.log.Debug("step", slog.Int("index", i), slog.Duration("t", r.clock.Now().Sub(replayEpoch)))
	}
}

func (r *replay) report(kind string, attrs ...slog.Attr) {
	r.recognized++
	r.log.LogAttrs(context.Background(), slog.LevelInfo, "gesture", append([]slog.Attr{slog.String("kind", kind)}, attrs...)...)
}

// trace logs continuous gestures at debug.
func (r *replay) trace(kind string, attrs ...slog.Attr) {
	r.recognized++
	r.log.LogAttrs(context.Background(), slog.LevelDebug, "gesture", append([]slog.Attr{slog.String("kind", kind)}, attrs...)...)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var errs []error
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
