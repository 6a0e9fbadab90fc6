package game

import (
	"errors"
	"testing"
	"time"

	"bongobuddy/internal/entity"
	"bongobuddy/internal/input"
	"bongobuddy/internal/texture"
)

func TestStepScale(t *testing.T) {
	errDisk := errors.New("disk gone")
	tests := []struct {
		name      string
		start     float64
		notches   int
		fail      bool
		wantLoads int
		wantScale float64
		wantErr   error
	}{
		{"grow three notches", 0.4, 3, false, 3, 0.55, nil},
		{"shrink two notches", 0.4, -2, false, 2, 0.3, nil},
		{"at max does not reload", entity.MaxScale, 1, false, 0, entity.MaxScale, nil},
		{"at min does not reload", entity.MinScale, -4, false, 0, entity.MinScale, nil},
		{"stops at the bound", 1.45, 5, false, 1, entity.MaxScale, nil},
		{"failed load keeps scale", 0.4, 2, true, 1, 0.4, errDisk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := entity.NewBuddy(tt.start)
			current := &texture.Set{Scale: b.Scale}
			loads := 0
			load := func(scale float64) (*texture.Set, error) {
				loads++
				if tt.fail {
					return nil, errDisk
				}
				return &texture.Set{Scale: scale}, nil
			}
			apply := func(s *texture.Set) {
				current = s
				b.Scale = s.Scale
			}

			applied, err := stepScale(b, tt.notches, load, apply)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if loads != tt.wantLoads {
				t.Errorf("loads = %d, want %d", loads, tt.wantLoads)
			}
			if !tt.fail && applied != tt.wantLoads {
				t.Errorf("applied = %d, want %d", applied, tt.wantLoads)
			}
			if b.Scale != tt.wantScale {
				t.Errorf("scale = %v, want %v", b.Scale, tt.wantScale)
			}
			if current.Scale != b.Scale {
				t.Errorf("visible set at %v, buddy at %v", current.Scale, b.Scale)
			}
		})
	}
}

func TestAdvanceShowsHitThenIdle(t *testing.T) {
	b := entity.NewBuddy(0.4)
	ex := &input.Exchange{}
	a := NewAnimator(120*time.Millisecond, fixedPick(entity.PoseRight))
	t0 := time.Unix(0, 0)

	advance(b, a, ex, t0)
	if b.Pose != entity.PoseIdle || b.Hits != 0 {
		t.Fatalf("quiet tick: pose %s hits %d", b.Pose, b.Hits)
	}

	ex.Record()
	advance(b, a, ex, t0.Add(20*time.Millisecond))
	if b.Pose != entity.PoseRight || b.Hits != 1 {
		t.Fatalf("hit tick: pose %s hits %d", b.Pose, b.Hits)
	}

	advance(b, a, ex, t0.Add(100*time.Millisecond))
	if b.Pose != entity.PoseRight {
		t.Errorf("reverted early: %s", b.Pose)
	}
	advance(b, a, ex, t0.Add(140*time.Millisecond))
	if b.Pose != entity.PoseIdle || b.Hits != 1 {
		t.Errorf("after hit: pose %s hits %d", b.Pose, b.Hits)
	}
}

func TestAdvanceReportsLabelWidthChange(t *testing.T) {
	b := entity.NewBuddy(0.4)
	ex := &input.Exchange{}
	a := NewAnimator(time.Millisecond, fixedPick(entity.PoseLeft))
	now := time.Unix(0, 0)

	for i := 0; i < 9; i++ {
		ex.Record()
	}
	if advance(b, a, ex, now) {
		t.Errorf("0 -> 9 keeps one digit")
	}
	ex.Record()
	if !advance(b, a, ex, now) {
		t.Errorf("9 -> 10 adds a digit")
	}
}
