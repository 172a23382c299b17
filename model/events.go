// Package model holds the wire-format structs exchanged over the bus.
//
// Payloads are plain JSON, matching the schemas in spec.md §6. A single
// Go module has no per-binary compilation boundary, so unlike the Rust
// prototype this spec was distilled from (which redeclares each struct
// in every crate), every event type is defined exactly once here.
package model

// TrafficUpdate reports the current vehicle count on a lane after an
// enter or leave event.
type TrafficUpdate struct {
	LaneID        int32  `json:"lane_id"`
	VehicleCount  uint32 `json:"vehicle_count"`
	TimestampSecs uint64 `json:"timestamp"`
}

// Recommendation asks the traffic light controller to turn a lane
// green, typically in response to congestion.
type Recommendation struct {
	LaneID        int32  `json:"lane_id"`
	NewGreenTime  uint32 `json:"new_green_time"`
	TimestampSecs uint64 `json:"timestamp"`
}

// LogEvent is a single line of structured narration published by any
// service, destined for the System Monitor.
type LogEvent struct {
	Source        string `json:"source"`
	Message       string `json:"message"`
	TimestampSecs uint64 `json:"timestamp"`
}

// LightStatus announces the current color of a controlled lane.
// Status is the plain string "Green" or "Red", matching the original
// Rust LightStatus.status field (see original_source/RabbitMQ/src/model.rs)
// rather than an encoded enum tag.
type LightStatus struct {
	LaneID int32  `json:"lane_id"`
	Status string `json:"status"`
}

const (
	StatusGreen = "Green"
	StatusRed   = "Red"
)

// Exchange names, spec.md §6.
const (
	ExchangeTrafficUpdates  = "simulation.updates"
	ExchangeRecommendations = "recommendations"
	ExchangeLogs            = "logs"
	ExchangeLightStatus     = "light_status"
)
