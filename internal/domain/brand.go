package domain

import "time"

// Brand is the owning identity content is generated for.
type Brand struct {
	ID               string
	Name             string
	VoiceTone        string
	ProhibitedTopics string
	TargetAudience   string
	Channels         []string
	CreatedAt        time.Time
}

// DoDont captures a persona's editorial guardrails.
type DoDont struct {
	Do   []string `json:"do"`
	Dont []string `json:"dont"`
}

// Persona is a named writing voice attached to a brand.
type Persona struct {
	ID         string
	BrandID    string
	Name       string
	StyleGuide string
	DoDont     DoDont
	Examples   []string
	CreatedAt  time.Time
}

// Plan is one scheduled content slot on a brand's calendar.
type Plan struct {
	ID                string
	BrandID           string
	SeriesID          string
	ScheduledAt       time.Time
	Channel           string
	Objective         string
	CTA               string
	AssetRequirements string
	CreatedAt         time.Time
}

// PlanFilter narrows plan listings.
type PlanFilter struct {
	Channel string
	From    *time.Time
	To      *time.Time
}
