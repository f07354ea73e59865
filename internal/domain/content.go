package domain

// Platform enumerates the publication targets content is formatted for.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
)

// MusicOptions tunes the music generator. Zero values fall back to
// mood-appropriate defaults.
type MusicOptions struct {
	Task          string `json:"task,omitempty"` // bgm | jingle | chord_extract | style_transform
	Mood          string `json:"mood,omitempty"` // happy | serene | epic | sad
	TempoBPM      int    `json:"tempoBpm,omitempty"`
	DurationSec   int    `json:"durationSec,omitempty"`
	Style         string `json:"style,omitempty"`
	ReferenceLink string `json:"referenceLink,omitempty"`
}

// GenerateInput is the canonical context handed to a content generator. The
// deterministic seed is derived from Seed when set, otherwise from the JSON
// serialization of the whole struct, so every field can influence the output.
type GenerateInput struct {
	BrandName        string        `json:"brandName"`
	VoiceTone        string        `json:"voiceTone"`
	ProhibitedTopics string        `json:"prohibitedTopics"`
	TargetAudience   string        `json:"targetAudience"`
	Topic            string        `json:"topic"`
	Objective        string        `json:"objective"`
	CTA              string        `json:"cta,omitempty"`
	Platforms        []Platform    `json:"platforms"`
	Language         string        `json:"language"` // th | en
	Seed             string        `json:"seed,omitempty"`
	PersonaName      string        `json:"personaName,omitempty"`
	Music            *MusicOptions `json:"music,omitempty"`
}

// PlatformContent is one platform-formatted rendition of the content.
type PlatformContent struct {
	Title    string   `json:"title"`
	Hook     string   `json:"hook"`
	Body     string   `json:"body"`
	CTA      string   `json:"cta"`
	Hashtags []string `json:"hashtags"`
}

// VideoScene is a single scene in a generated video script.
type VideoScene struct {
	Scene        int    `json:"scene"`
	Visual       string `json:"visual"`
	Narration    string `json:"narration"`
	OnScreenText string `json:"onScreenText,omitempty"`
	Duration     string `json:"duration,omitempty"`
}

// VideoScript is the structured output of the video generator.
type VideoScript struct {
	Hook      string       `json:"hook"`
	Scenes    []VideoScene `json:"scenes"`
	EndingCTA string       `json:"ending_cta"`
}

// ImagePrompt is the structured output of the image generator.
type ImagePrompt struct {
	Description    string   `json:"description"`
	Style          string   `json:"style"`
	NegativePrompt string   `json:"negative_prompt"`
	Notes          []string `json:"notes"`
}

// Shot is one entry in a shotlist accompanying image/video output.
type Shot struct {
	Shot        int    `json:"shot"`
	Description string `json:"description"`
	AspectRatio string `json:"aspectRatio,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Style       string `json:"style"`
}

// MusicStructure describes the harmonic plan of a generated piece.
type MusicStructure struct {
	Key              string   `json:"key"`
	TempoBPM         int      `json:"tempoBpm"`
	ChordProgression []string `json:"chordProgression"`
	Sections         []string `json:"sections"`
}

// MusicPlan is the structured output of the music generator.
type MusicPlan struct {
	Task            string         `json:"task"`
	Mood            string         `json:"mood"`
	Structure       MusicStructure `json:"structure"`
	Lyrics          string         `json:"lyrics,omitempty"`
	ProductionNotes []string       `json:"productionNotes"`
}

// CanonRef is the lightweight canon linkage stamped into output metadata.
type CanonRef struct {
	UniverseID     string `json:"universeId"`
	Snapshot       bool   `json:"snapshot"`
	CharacterCount int    `json:"characterCount"`
	EventCount     int    `json:"eventCount"`
}

// OutputMeta carries reproducibility metadata. DeterministicSeed is the stable
// hash of the canonical input; identical inputs always produce identical
// output bytes, so no wall-clock fields belong here.
type OutputMeta struct {
	DeterministicSeed string    `json:"deterministicSeed"`
	Canon             *CanonRef `json:"canon,omitempty"`
}

// GeneratedBundle aggregates the structured outputs of all generators that ran
// for a job.
type GeneratedBundle struct {
	Caption     string                       `json:"caption,omitempty"`
	Platforms   map[Platform]PlatformContent `json:"platforms,omitempty"`
	VideoScript *VideoScript                 `json:"video_script,omitempty"`
	ImagePrompt *ImagePrompt                 `json:"image_prompt,omitempty"`
	Shotlist    []Shot                       `json:"shotlist,omitempty"`
	Music       *MusicPlan                   `json:"music,omitempty"`
	Meta        OutputMeta                   `json:"meta"`
}
