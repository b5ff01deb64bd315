// Command ws2812cycle fills a WS2812 strip with one color after the other.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DerLukas15/ws2812"
	"github.com/DerLukas15/ws2812/promhook"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

var (
	config  = "ws2812cycle.toml"
	verbose = false
)

func init() {
	pflag.StringVarP(&config, "config", "c", config, "configuration file")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose output")
}

func main() {
	pflag.Parse()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).Level(level)

	ws2812.Debug = verbose
	ws2812.SetLogger(log.With().Str("component", "ws2812").Logger())

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("ws2812cycle failed")
	}
}

func run() error {
	cfg, err := readConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var opts []ws2812.Option
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		col, err := promhook.NewCollector(reg, cfg.Strip)
		if err != nil {
			return err
		}
		opts = col.Options()

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("metrics server stopped")
			}
		}()
		defer srv.Close()
		log.Info().Str("addr", cfg.MetricsAddr).Msg("serving metrics")
	}

	dev, stop, err := openDevice(cfg, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := stop(); err != nil {
			log.Warn().Err(err).Msg("failed to release the strip")
		}
	}()

	log.Info().
		Str("backend", string(cfg.Backend)).
		Int("gpio", cfg.GPIO).
		Int("pixels", cfg.Pixels).
		Stringer("profile", ws2812.ActiveProfile).
		Msg("strip ready")

	cycle(ctx, dev, cfg)

	stats := dev.Stats()
	log.Info().
		Uint64("frames", stats.Frames).
		Uint64("timer_faults", stats.TimerFaults).
		Uint64("pin_faults", stats.PinFaults).
		Msg("stopped")
	return nil
}

func readConfig() (*Config, error) {
	f, err := os.Open(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer f.Close()

	return ParseConfig(f)
}

// openDevice brings up the strip for the configured backend. The returned func releases it.
func openDevice(cfg *Config, opts []ws2812.Option) (*ws2812.Device, func() error, error) {
	switch cfg.Backend {
	case BackendRPi:
		c := ws2812.NewConfig(uint32(cfg.GPIO))
		if cfg.SourceClock != 0 {
			if err := c.SetSourceClock(cfg.SourceClock); err != nil {
				return nil, nil, err
			}
		}
		if err := c.SetOptions(opts...); err != nil {
			return nil, nil, err
		}
		dev, err := c.Initialize()
		if err != nil {
			return nil, nil, err
		}
		return dev, c.Stop, nil

	case BackendPeriph:
		pin, err := ws2812.PeriphPinByName(fmt.Sprintf("GPIO%d", cfg.GPIO))
		if err != nil {
			return nil, nil, err
		}
		log.Warn().Msg("periph backend uses the host clock, expect flicker")
		dev := ws2812.New(ws2812.NewClockTimer(ws2812.TickFrequency), pin, opts...)
		return dev, pin.Low, nil
	}
	return nil, nil, errors.Errorf("unknown backend %q", cfg.Backend)
}

// cycle writes one color per period until ctx is done.
func cycle(ctx context.Context, w ws2812.Writer, cfg *Config) {
	ticker := time.NewTicker(time.Duration(cfg.Period))
	defer ticker.Stop()

	colors := cfg.RGB()
	for i := 0; ; i++ {
		c := colors[i%len(colors)]
		_ = w.Write(ws2812.Repeat(cfg.Pixels, c))
		log.Debug().Stringer("color", c).Msg("frame sent")

		if ctx.Err() != nil {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
