package engine

import "github.com/hearthlight/engine2d/math2d"

// DayNightColor is the ambient color resource published each tick by
// DayNightCycle.Update, per SPEC_FULL.md §4.9. Consumers read it as an
// ECS resource for the renderer's clear color and sprite tinting.
type DayNightColor struct {
	Ambient math2d.Color
	Clear   math2d.Color
}

// DayNightCycle interpolates four color stops (dawn, noon, dusk,
// midnight) piecewise-linearly over a 24-hour game-clock cycle.
//
// Grounded on original_source/crates/engine_render/src/day_night.rs's
// DayNightCycle/get_ambient_color, adapted to this engine's math2d.Color
// and published as an ecs.Resource instead of a directly-queried struct.
type DayNightCycle struct {
	Dawn     math2d.Color
	Noon     math2d.Color
	Dusk     math2d.Color
	Midnight math2d.Color
}

// DefaultDayNightCycle mirrors the original's default palette: warm
// orange-pink dawn, white noon, orange-coral dusk, dark blue midnight.
func DefaultDayNightCycle() DayNightCycle {
	return DayNightCycle{
		Dawn:     math2d.ColorFromHex(0xFFB07A),
		Noon:     math2d.White,
		Dusk:     math2d.ColorFromHex(0xFF7F50),
		Midnight: math2d.ColorFromHex(0x1A1A3A),
	}
}

const (
	dawnHour = 6.0
	noonHour = 12.0
	duskHour = 18.0
	dayHours = 24.0
)

// Sample returns the ambient color for the given hour (0-23) and minute
// (0-59), piecewise-linear between the four stops.
func (c *DayNightCycle) Sample(hour, minute int) math2d.Color {
	hourF := float64(hour) + float64(minute)/60.0

	switch {
	case hourF < dawnHour:
		t := hourF / dawnHour
		return c.Midnight.Lerp(c.Dawn, t)
	case hourF < noonHour:
		t := (hourF - dawnHour) / (noonHour - dawnHour)
		return c.Dawn.Lerp(c.Noon, t)
	case hourF < duskHour:
		t := (hourF - noonHour) / (duskHour - noonHour)
		return c.Noon.Lerp(c.Dusk, t)
	default:
		t := (hourF - duskHour) / (dayHours - duskHour)
		return c.Dusk.Lerp(c.Midnight, t)
	}
}

// ClearColor darkens the ambient color for use as the renderer's clear
// color, matching the original's get_clear_color tint ratios.
func (c *DayNightCycle) ClearColor(hour, minute int) math2d.Color {
	ambient := c.Sample(hour, minute)
	return math2d.Color{R: ambient.R * 0.15, G: ambient.G * 0.15, B: ambient.B * 0.2, A: 1}
}
