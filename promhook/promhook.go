//Package promhook exports the diagnostics of a ws2812.Device as prometheus metrics.
package promhook

import (
	"github.com/DerLukas15/ws2812"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

//Collector counts frames, pixels and dropped errors of one strip.
type Collector struct {
	dropped *prometheus.CounterVec
	frames  prometheus.Counter
	pixels  prometheus.Counter
}

//NewCollector creates the metrics for strip and registers them with reg.
func NewCollector(reg prometheus.Registerer, strip string) (*Collector, error) {
	labels := prometheus.Labels{"strip": strip}
	c := &Collector{
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "ws2812_dropped_errors_total",
			Help:        "Timer and pin errors dropped while sending frames.",
			ConstLabels: labels,
		}, []string{"kind"}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "ws2812_frames_total",
			Help:        "Frames sent including the latch.",
			ConstLabels: labels,
		}),
		pixels: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "ws2812_pixels_total",
			Help:        "Pixels sent.",
			ConstLabels: labels,
		}),
	}
	for _, m := range []prometheus.Collector{c.dropped, c.frames, c.pixels} {
		if err := reg.Register(m); err != nil {
			return nil, errors.Wrapf(err, "register metrics for strip %q", strip)
		}
	}
	// Export both kinds from the start.
	c.dropped.WithLabelValues(ws2812.FaultTimer.String())
	c.dropped.WithLabelValues(ws2812.FaultPin.String())
	return c, nil
}

//Fault counts a dropped error. It can be passed to ws2812.WithFaultHook.
func (c *Collector) Fault(kind ws2812.Fault, _ error) {
	c.dropped.WithLabelValues(kind.String()).Inc()
}

//Frame counts a sent frame of pixels. It can be passed to ws2812.WithFrameHook.
func (c *Collector) Frame(pixels int) {
	c.frames.Inc()
	c.pixels.Add(float64(pixels))
}

//Options returns the Device options wiring both hooks.
func (c *Collector) Options() []ws2812.Option {
	return []ws2812.Option{
		ws2812.WithFaultHook(c.Fault),
		ws2812.WithFrameHook(c.Frame),
	}
}
