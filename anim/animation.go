// Package anim implements the frame-list animation contract from spec.md
// §4.8: a time-driven sampler over ordered frames and an advance
// controller a system calls once per fixed tick.
//
// Grounded on the teacher's ecs/component/animation.go (Sheet/Defs/
// Current/Frame/FrameTimer/Playing) and ecs/system/animation.go's
// frame-advance loop, generalized from a fixed 60-tick-rate frame counter
// to a continuous elapsed-seconds sampler per spec.md's contract.
package anim

import "github.com/hearthlight/engine2d/math2d"

// Frame is one entry of an animation: a source UV rect and how long it is
// shown, in seconds.
type Frame struct {
	UV       math2d.Rect
	Duration float64
}

// Animation is an ordered, named list of frames.
type Animation struct {
	Name    string
	Frames  []Frame
	Looping bool
}

// TotalDuration sums every frame's duration.
func (a *Animation) TotalDuration() float64 {
	total := 0.0
	for _, f := range a.Frames {
		total += f.Duration
	}
	return total
}

// Sample implements spec.md §4.8's sample(animation, elapsed_seconds)
// contract: non-looping animations clamp to the last frame once elapsed
// reaches the total duration; looping animations wrap with elapsed mod
// total.
func Sample(a *Animation, elapsedSeconds float64) math2d.Rect {
	if len(a.Frames) == 0 {
		return math2d.Rect{}
	}
	total := a.TotalDuration()
	if total <= 0 {
		return a.Frames[0].UV
	}

	t := elapsedSeconds
	if a.Looping {
		t = mod(t, total)
	} else if t >= total {
		return a.Frames[len(a.Frames)-1].UV
	}

	acc := 0.0
	for _, f := range a.Frames {
		acc += f.Duration
		if t < acc {
			return f.UV
		}
	}
	return a.Frames[len(a.Frames)-1].UV
}

func mod(a, b float64) float64 {
	m := a - b*float64(int(a/b))
	if m < 0 {
		m += b
	}
	return m
}
