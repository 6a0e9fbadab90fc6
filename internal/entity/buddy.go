package entity

import "math"

// Pose is which texture the buddy is showing.
type Pose int

const (
	PoseIdle Pose = iota
	PoseLeft
	PoseRight
	PoseBoth
)

// PoseCount is the number of distinct textures.
const PoseCount = 4

func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "idle"
	case PoseLeft:
		return "left"
	case PoseRight:
		return "right"
	case PoseBoth:
		return "both"
	}
	return "unknown"
}

// Scale limits for scroll-wheel resizing.
const (
	MinScale  = 0.2
	MaxScale  = 1.5
	ScaleStep = 0.05

	scaleEpsilon = 1e-6
)

// Buddy is the on-screen character's runtime state. It is owned by the game
// loop; input callbacks never touch it.
type Buddy struct {
	Scale float64 // always within [MinScale, MaxScale]
	Hits  uint64  // last count shown in the bar
	Pose  Pose

	Width  int // image size in pixels at Scale
	Height int
}

func NewBuddy(scale float64) *Buddy {
	return &Buddy{Scale: ClampScale(scale), Pose: PoseIdle}
}

// ClampScale pins s to [MinScale, MaxScale], rounded to hundredths so
// repeated steps do not drift.
func ClampScale(s float64) float64 {
	s = math.Round(s*100) / 100
	return math.Max(MinScale, math.Min(MaxScale, s))
}

// NextScale returns the scale one wheel notch away in direction dir
// (positive grows, negative shrinks) and whether it differs from the
// current one. Buddy is not modified; the caller commits after reloading.
func (b *Buddy) NextScale(dir int) (float64, bool) {
	step := ScaleStep
	if dir < 0 {
		step = -ScaleStep
	} else if dir == 0 {
		return b.Scale, false
	}
	ns := ClampScale(b.Scale + step)
	if math.Abs(ns-b.Scale) < scaleEpsilon {
		return b.Scale, false
	}
	return ns, true
}
