package config

// Control holds the tunables that govern one simulation run: how many
// vehicles to spawn, how fast they go, and how the traffic lights
// cycle. Mirrors the teacher's two-layer Config/Control split
// (utils/config/type.go) but replaces the map-interval/day fields of a
// discrete-step simulation with this spec's continuous, wall-clock
// tunables.
type Control struct {
	// VehicleCount is how many vehicle agents the simulation engine
	// spawns for a standalone run.
	VehicleCount int `yaml:"vehicle_count,omitempty"`
	// MinSpeed and MaxSpeed bound the uniform speed distribution
	// (meters/second) a vehicle is assigned at spawn, spec.md §4.3.
	MinSpeed float64 `yaml:"min_speed,omitempty"`
	MaxSpeed float64 `yaml:"max_speed,omitempty"`

	// GreenDuration and ClearanceDuration are the per-phase hold times
	// (seconds) of the junction phase cycle, spec.md §4.2.
	GreenDuration     float64 `yaml:"green_duration,omitempty"`
	ClearanceDuration float64 `yaml:"clearance_duration,omitempty"`
	// LightPollInterval is how often a vehicle re-checks a lane's
	// light color while waiting, spec.md §4.3 step 2b.
	LightPollInterval float64 `yaml:"light_poll_interval,omitempty"`

	// CongestionThreshold is the vehicle count at or above which the
	// Flow Analyzer emits a recommendation, spec.md §4.4.
	CongestionThreshold uint32 `yaml:"congestion_threshold,omitempty"`
	// RecommendedGreenTime is the new_green_time the analyzer attaches
	// to every recommendation it emits.
	RecommendedGreenTime uint32 `yaml:"recommended_green_time,omitempty"`
}

// Input optionally points at an external lane table file; when empty
// the embedded default table (entity/lane.DefaultTable) is used.
type Input struct {
	LaneTableFile string `yaml:"lane_table_file,omitempty"`
}

// Config is the YAML configuration file's root structure.
type Config struct {
	Input   Input   `yaml:"input,omitempty"`
	Control Control `yaml:"control,omitempty"`
}

// WithDefaults fills in zero-valued fields with the spec's documented
// defaults (spec.md §4.2 for durations, §4.3 for speed, §4.4 for the
// congestion threshold and recommendation, §8 scenario 5 for the
// vehicle count), so a config file only needs to override what it
// actually wants to change.
func (c Config) WithDefaults() Config {
	if c.Control.VehicleCount == 0 {
		c.Control.VehicleCount = 30
	}
	if c.Control.MinSpeed == 0 {
		c.Control.MinSpeed = 70
	}
	if c.Control.MaxSpeed == 0 {
		c.Control.MaxSpeed = 90
	}
	if c.Control.GreenDuration == 0 {
		c.Control.GreenDuration = 5
	}
	if c.Control.ClearanceDuration == 0 {
		c.Control.ClearanceDuration = 10
	}
	if c.Control.LightPollInterval == 0 {
		c.Control.LightPollInterval = 0.1
	}
	if c.Control.CongestionThreshold == 0 {
		c.Control.CongestionThreshold = 4
	}
	if c.Control.RecommendedGreenTime == 0 {
		c.Control.RecommendedGreenTime = 40
	}
	return c
}
