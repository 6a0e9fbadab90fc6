package game

import (
	"time"

	"bongobuddy/internal/entity"
	"bongobuddy/internal/input"
	"bongobuddy/internal/texture"
)

// stepScale 按滚轮格数逐格缩放，每格都重新加载贴图。
//
// apply is called with every successfully loaded set and must commit its
// scale to b. A notch that does not change the scale stops without loading;
// a failed load stops and leaves b untouched. It returns how many sets were
// applied and the load error, if any.
func stepScale(b *entity.Buddy, n int, load LoadFunc, apply func(*texture.Set)) (int, error) {
	dir := 1
	if n < 0 {
		dir, n = -1, -n
	}
	applied := 0
	for i := 0; i < n; i++ {
		ns, changed := b.NextScale(dir)
		if !changed {
			return applied, nil
		}
		set, err := load(ns)
		if err != nil {
			return applied, err
		}
		apply(set)
		applied++
	}
	return applied, nil
}

// advance 是每帧的动画驱动：取走输入计数，推进动画。
// It reports whether the counter text changed width.
func advance(b *entity.Buddy, a *Animator, ex *input.Exchange, now time.Time) bool {
	snap := ex.Take()
	prev := len(hitsLabel(b.Hits))
	b.Hits = snap.Hits
	b.Pose = a.Tick(now, snap.Pending)
	return len(hitsLabel(b.Hits)) != prev
}
