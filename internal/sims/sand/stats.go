package sand

import (
	"log/slog"
	"strconv"

	"falling-sand/internal/core"
)

// Snapshot summarizes the simulation after a tick.
type Snapshot struct {
	Tick  uint64 `csv:"tick"`
	Moved int    `csv:"moved"`
	Stone int    `csv:"stone"`
	Sand  int    `csv:"sand"`
	Water int    `csv:"water"`
	Wall  int    `csv:"wall"`
}

// Stats captures the current tick counter, move count and particle tallies.
func (s *Simulation) Stats() Snapshot {
	counts := s.Counts()
	return Snapshot{
		Tick:  s.ticks,
		Moved: s.moved,
		Stone: counts[KindStone],
		Sand:  counts[KindSand],
		Water: counts[KindWater],
		Wall:  counts[KindWall],
	}
}

// Total returns the number of particles in the snapshot.
func (s Snapshot) Total() int { return s.Stone + s.Sand + s.Water + s.Wall }

// LogValue implements slog.LogValuer for structured logging.
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("tick", s.Tick),
		slog.Int("moved", s.Moved),
		slog.Int("stone", s.Stone),
		slog.Int("sand", s.Sand),
		slog.Int("water", s.Water),
		slog.Int("wall", s.Wall),
	)
}

// Parameters exposes the world settings and live counters to the HUD.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	stats := s.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.cfg.Seed, 10)},
				{Key: "preset", Label: "Preset", Type: core.ParamTypeString, Value: s.cfg.Preset},
			},
		},
		{
			Name: "Tick",
			Params: []core.Parameter{
				{Key: "tick", Label: "Tick", Type: core.ParamTypeInt, Value: strconv.FormatUint(stats.Tick, 10)},
				intParam("moved", "Moved", stats.Moved),
				{Key: "tick_visit", Label: "Pending flag", Type: core.ParamTypeString, Value: strconv.FormatBool(s.tickVisit)},
			},
		},
		{
			Name: "Particles",
			Params: []core.Parameter{
				intParam("stone", "Stone", stats.Stone),
				intParam("sand", "Sand", stats.Sand),
				intParam("water", "Water", stats.Water),
				intParam("wall", "Wall", stats.Wall),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
