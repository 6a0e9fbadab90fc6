package input

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	hook "github.com/robotn/gohook"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func logger() zerolog.Logger {
	return log.With().Str("module", "input").Logger()
}

// DefaultStartTimeout 是等待系统钩子就绪的时间，超时视为钩子不可用。
const DefaultStartTimeout = 3 * time.Second

// ErrHookNotReady means the OS hook never reported that it was enabled.
var ErrHookNotReady = errors.New("input hook did not start")

// Source delivers raw OS input events.
type Source interface {
	Events() <-chan hook.Event
	Close()
}

// hookSource 是全局键盘/鼠标钩子 (gohook)。
type hookSource struct {
	ch chan hook.Event
}

// NewHookSource installs the global keyboard and mouse hook.
func NewHookSource() Source {
	return &hookSource{ch: hook.Start()}
}

func (s *hookSource) Events() <-chan hook.Event { return s.ch }

func (s *hookSource) Close() { hook.End() }

// Counts reports whether an event kind is a hit. gohook names are
// misleading: KeyHold is a key press, MouseHold a button press and
// MouseDown a button release. A click is counted on press and on release;
// KeyDown is the "typed" twin of KeyHold and is skipped.
func Counts(kind uint8) bool {
	switch kind {
	case hook.KeyHold, hook.MouseHold, hook.MouseDown:
		return true
	}
	return false
}

// Observer drains a Source into an Exchange.
type Observer struct {
	src Source
	ex  *Exchange

	stopOnce sync.Once
	done     chan struct{}
}

func NewObserver(src Source, ex *Exchange) *Observer {
	return &Observer{src: src, ex: ex, done: make(chan struct{})}
}

// Start waits up to timeout for the source to report HookEnabled, then
// drains it in its own goroutine until ctx is cancelled, Stop is called or
// the source closes. On error the source is already released.
func (o *Observer) Start(ctx context.Context, timeout time.Duration) error {
	l := logger()
	events := o.src.Events()

	// 1. 等钩子就绪，期间到达的输入照常计数
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for ready := false; !ready; {
		select {
		case <-ctx.Done():
			o.Stop()
			close(o.done)
			return ctx.Err()
		case <-timer.C:
			o.Stop()
			close(o.done)
			return fmt.Errorf("%w within %v", ErrHookNotReady, timeout)
		case ev, ok := <-events:
			if !ok {
				close(o.done)
				return fmt.Errorf("%w: source closed", ErrHookNotReady)
			}
			if ev.Kind == hook.HookEnabled {
				ready = true
			} else if Counts(ev.Kind) {
				o.ex.Record()
			}
		}
	}
	l.Info().Msg("input observer started")

	// 2. 后台协程持续消费事件
	go o.run(ctx, events)
	return nil
}

func (o *Observer) run(ctx context.Context, events <-chan hook.Event) {
	defer close(o.done)
	for {
		select {
		case <-ctx.Done():
			o.Stop()
			return
		case ev, ok := <-events:
			if !ok {
				l := logger()
				l.Info().Msg("input source closed")
				return
			}
			if Counts(ev.Kind) {
				o.ex.Record()
			}
		}
	}
}

// Stop releases the OS hook. Safe to call more than once.
func (o *Observer) Stop() {
	o.stopOnce.Do(func() {
		o.src.Close()
		l := logger()
		l.Info().Uint64("hits", o.ex.Hits()).Msg("input observer stopped")
	})
}

// Done is closed once the observer has nothing left running.
func (o *Observer) Done() <-chan struct{} {
	return o.done
}
