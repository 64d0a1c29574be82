package engine

import "github.com/hearthlight/engine2d/ecs"

// GameClockResource is the minimal time-of-day resource DayNightSystem
// reads; a fuller calendar (season, day-of-week) belongs to a host, not
// this engine's core.
type GameClockResource struct {
	Hour   int
	Minute int
}

// DayNightSystem publishes a DayNightColor resource each fixed tick by
// sampling a DayNightCycle against the world's GameClockResource. Grounded
// on the teacher's ecs/system package's resource-producer pattern (small
// systems that read one resource and write another).
type DayNightSystem struct {
	Cycle DayNightCycle
}

// NewDayNightSystem returns a system using the default color palette.
func NewDayNightSystem() *DayNightSystem {
	return &DayNightSystem{Cycle: DefaultDayNightCycle()}
}

func (s *DayNightSystem) Update(w *ecs.World) {
	clock, ok := ecs.Resource[GameClockResource](w)
	if !ok {
		clock = GameClockResource{Hour: 12}
	}
	ecs.SetResource(w, DayNightColor{
		Ambient: s.Cycle.Sample(clock.Hour, clock.Minute),
		Clear:   s.Cycle.ClearColor(clock.Hour, clock.Minute),
	})
}
