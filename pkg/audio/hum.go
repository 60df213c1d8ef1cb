// Package audio plays the engine hum heard while the rocket thrusts.
package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-gravity/pkg/config"
	"github.com/opd-ai/go-gravity/pkg/event"
	"github.com/opd-ai/go-gravity/pkg/logging"
)

// humGain keeps the two partials of the hum well below clipping.
const humGain = 0.25

// gainStreamer scales another streamer's output.
type gainStreamer struct {
	s    beep.Streamer
	gain float64
}

func (g *gainStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.s.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= g.gain
		samples[i][1] *= g.gain
	}
	return n, ok
}

func (g *gainStreamer) Err() error {
	return g.s.Err()
}

// NewHumStreamer returns an endless low tone: a fundamental at freq and a
// quieter octave above it.
func NewHumStreamer(sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	base, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("fundamental: %w", err)
	}
	octave, err := generators.SineTone(sr, 2*freq)
	if err != nil {
		return nil, fmt.Errorf("octave: %w", err)
	}
	return beep.Mix(
		&gainStreamer{s: base, gain: humGain},
		&gainStreamer{s: octave, gain: humGain / 2},
	), nil
}

// EngineHum starts and pauses the hum as thrust events arrive. Until
// Initialize succeeds it only tracks state, so a machine without an audio
// device runs silently.
type EngineHum struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	ctrl        *beep.Ctrl
	initialized bool
	logger      *logging.Logger
	subs        []*event.Subscription
}

// NewEngineHum builds a paused hum from cfg.
func NewEngineHum(cfg config.AudioConfig, logger *logging.Logger) (*EngineHum, error) {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	sr := beep.SampleRate(cfg.SampleRate)
	hum, err := NewHumStreamer(sr, cfg.Frequency)
	if err != nil {
		return nil, logging.WrapError(err, "build engine hum")
	}
	return &EngineHum{
		sampleRate: sr,
		ctrl:       &beep.Ctrl{Streamer: hum, Paused: true},
		logger:     logger,
	}, nil
}

// Initialize opens the speaker and starts streaming the (paused) hum.
func (h *EngineHum) Initialize() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.initialized {
		return nil
	}
	if err := speaker.Init(h.sampleRate, h.sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(h.ctrl)
	h.initialized = true
	return nil
}

// Attach subscribes the hum to thrust events on bus.
func (h *EngineHum) Attach(bus *event.Bus) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs,
		bus.Subscribe(event.ThrustStarted, func(event.Event) { h.SetThrust(true) }),
		bus.Subscribe(event.ThrustStopped, func(event.Event) { h.SetThrust(false) }),
	)
}

// SetThrust plays or pauses the hum.
func (h *EngineHum) SetThrust(on bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.initialized {
		speaker.Lock()
		h.ctrl.Paused = !on
		speaker.Unlock()
	} else {
		h.ctrl.Paused = !on
	}
	h.logger.Debug(context.Background(), "engine hum", "playing", on)
}

// Playing reports whether the hum is currently audible.
func (h *EngineHum) Playing() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return !h.ctrl.Paused
}

// Close unsubscribes from the bus and silences the hum.
func (h *EngineHum) Close() {
	h.mu.Lock()
	subs := h.subs
	h.subs = nil
	h.mu.Unlock()

	for _, s := range subs {
		s.Cancel()
	}
	h.SetThrust(false)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.initialized {
		speaker.Clear()
		h.initialized = false
	}
}
