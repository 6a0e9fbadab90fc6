package game

import (
	"time"

	"bongobuddy/internal/entity"
)

// Animator decides which pose is on screen. It is driven once per tick by
// the game loop and never reads the clock itself.
type Animator struct {
	hit  time.Duration
	pick func() entity.Pose

	pose  entity.Pose
	until time.Time
}

// NewAnimator shows a pose from pick for hit after every pending tick.
func NewAnimator(hit time.Duration, pick func() entity.Pose) *Animator {
	return &Animator{hit: hit, pick: pick, pose: entity.PoseIdle}
}

// Tick advances to now. A pending hit always starts a fresh hit window,
// even over one still showing.
func (a *Animator) Tick(now time.Time, pending bool) entity.Pose {
	switch {
	case pending:
		a.pose = a.pick()
		a.until = now.Add(a.hit)
	case a.pose != entity.PoseIdle && !now.Before(a.until):
		a.pose = entity.PoseIdle
	}
	return a.pose
}
