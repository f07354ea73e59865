package domain

import "time"

// Universe is a fictional setting whose canon is attached to jobs for
// continuity. The core snapshots it; it never regenerates canon.
type Universe struct {
	ID          string
	Name        string
	Description string
	CanonRules  map[string]any
	CreatedAt   time.Time
}

// Character belongs to a universe.
type Character struct {
	ID         string
	UniverseID string
	Name       string
	Bio        string
	Traits     map[string]any
}

// CanonEvent is a timeline entry in a universe.
type CanonEvent struct {
	ID         string
	UniverseID string
	Title      string
	Summary    string
	TimeIndex  int
}

// CrossoverRule constrains how two series may share canon.
type CrossoverRule struct {
	ID           string
	UniverseID   string
	FromSeriesID string
	ToSeriesID   string
	Rule         map[string]any
}

// CanonPacket is the snapshot attached to a job: the universe, its top
// characters, ordered events, and applicable crossover rules.
type CanonPacket struct {
	Universe   Universe        `json:"universe"`
	Characters []Character     `json:"characters"`
	Events     []CanonEvent    `json:"events"`
	Crossovers []CrossoverRule `json:"crossovers"`
}
