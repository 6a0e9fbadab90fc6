// Package monitor samples system load for the optional readout in the
// counter bar.
package monitor

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// DefaultInterval keeps the sampler out of the way of the game loop.
const DefaultInterval = 2 * time.Second

// SampleFunc returns CPU and memory usage in percent.
type SampleFunc func() (cpuPct, memPct float64, err error)

// Monitor publishes the latest sample. Zero values until the first one.
type Monitor struct {
	sample SampleFunc
	cpu    atomic.Uint64 // float64 bits
	mem    atomic.Uint64
	ready  atomic.Bool
}

// New returns a Monitor backed by gopsutil.
func New() *Monitor {
	return &Monitor{sample: gopsutilSample}
}

// NewWithSampler is for callers that bring their own source.
func NewWithSampler(f SampleFunc) *Monitor {
	return &Monitor{sample: f}
}

// Start samples immediately and then every interval until ctx is done.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			m.update()
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stats returns the last CPU and memory percentages, rounded to one decimal.
func (m *Monitor) Stats() (float64, float64) {
	return math.Float64frombits(m.cpu.Load()), math.Float64frombits(m.mem.Load())
}

// Label renders the bar suffix, or "" before the first sample.
func (m *Monitor) Label() string {
	if !m.ready.Load() {
		return ""
	}
	c, v := m.Stats()
	return fmt.Sprintf("CPU %.1f%% MEM %.1f%%", c, v)
}

func (m *Monitor) update() {
	c, v, err := m.sample()
	if err != nil {
		log.Debug().Str("module", "monitor").Err(err).Msg("sample failed")
		return
	}
	m.cpu.Store(math.Float64bits(round1(c)))
	m.mem.Store(math.Float64bits(round1(v)))
	m.ready.Store(true)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func gopsutilSample() (float64, float64, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, fmt.Errorf("memory: %w", err)
	}
	// interval 0 compares against the previous call instead of blocking
	c, err := cpu.Percent(0, false)
	if err != nil {
		return 0, 0, fmt.Errorf("cpu: %w", err)
	}
	if len(c) == 0 {
		return 0, v.UsedPercent, nil
	}
	return c[0], v.UsedPercent, nil
}
