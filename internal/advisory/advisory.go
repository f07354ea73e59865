// Package advisory implements the lightweight input-quality analysis that runs
// ahead of provider selection. It is pure and total: the same input always
// produces the same result and no input can make it fail.
package advisory

import (
	"regexp"
	"strings"

	"contentforge/internal/domain"
)

// Input is the raw request text the analyzer inspects.
type Input struct {
	BrandName   string
	VoiceTone   string
	Topic       string
	Objective   string
	PersonaName string
	Platforms   []domain.Platform
	StyleHints  []string
}

// minObjectiveLen is the shortest objective that is not flagged as unclear.
const minObjectiveLen = 10

// patternFamily is an ordered list of patterns sharing one warning/suggestion
// pair. The first matching pattern short-circuits the family, so a family
// contributes at most one warning regardless of how many patterns match.
type patternFamily struct {
	patterns   []*regexp.Regexp
	warning    string
	suggestion string
	guard      string
}

var culturalFamily = patternFamily{
	patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)หนุมาน`),
		regexp.MustCompile(`(?i)รามเกียรติ์`),
		regexp.MustCompile(`(?i)พระราม`),
		regexp.MustCompile(`(?i)นางสีดา`),
		regexp.MustCompile(`(?i)ทศกัณฐ์`),
		regexp.MustCompile(`(?i)hanuman`),
		regexp.MustCompile(`(?i)ramayana`),
	},
	warning:    "topic carries a culturally ambiguous reference; the intended context is unclear",
	suggestion: "state whether the reference is literary, mythological, or a figure of speech",
	guard:      "references Thai literary canon; keep the framing explicit",
}

var vagueStyleFamily = patternFamily{
	patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)ดีมาก`),
		regexp.MustCompile(`(?i)ทั่วไป`),
		regexp.MustCompile(`(?i)สวย`),
		regexp.MustCompile(`(?i)เยี่ยม`),
		regexp.MustCompile(`(?i)\bnice\b`),
		regexp.MustCompile(`(?i)\bgood\b`),
		regexp.MustCompile(`(?i)\bgeneric\b`),
	},
	warning:    "voice tone is ambiguous; broad descriptors produce unfocused output",
	suggestion: "name a concrete tone, e.g. friendly, academic, playful, inspiring",
}

var broadTopicFamily = patternFamily{
	patterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)สุขภาพ`),
		regexp.MustCompile(`(?i)อาหาร`),
		regexp.MustCompile(`(?i)ท่องเที่ยว`),
		regexp.MustCompile(`(?i)\bhealth\b`),
		regexp.MustCompile(`(?i)\bfood\b`),
		regexp.MustCompile(`(?i)\btravel\b`),
	},
	warning:    "topic is ambiguous and too broad to target well",
	suggestion: `narrow the angle, e.g. "health: exercise for seniors" instead of "health"`,
}

func (f patternFamily) match(text string) bool {
	for _, p := range f.patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

var asciiTopic = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// Analyze scans the request and returns warnings, suggestions, and a
// normalized view. Warning order is fixed: cultural, style, topic breadth,
// missing persona, missing platforms, unclear objective.
func Analyze(in Input) domain.AdvisoryResult {
	var warnings, suggestions, guards []string

	topicText := in.Topic + " " + in.Objective

	if culturalFamily.match(topicText) {
		warnings = append(warnings, culturalFamily.warning)
		suggestions = append(suggestions, culturalFamily.suggestion)
		guards = append(guards, culturalFamily.guard)
	}

	if in.VoiceTone != "" && vagueStyleFamily.match(in.VoiceTone) {
		warnings = append(warnings, vagueStyleFamily.warning)
		suggestions = append(suggestions, vagueStyleFamily.suggestion)
	}

	if broadTopicFamily.match(topicText) {
		warnings = append(warnings, broadTopicFamily.warning)
		suggestions = append(suggestions, broadTopicFamily.suggestion)
	}

	if in.PersonaName == "" && in.BrandName != "" {
		warnings = append(warnings, "no persona selected; content may miss the target audience")
		suggestions = append(suggestions, "create or pick a persona matching the audience")
	}

	if len(in.Platforms) == 0 {
		warnings = append(warnings, "no platforms selected; output will be generic")
		suggestions = append(suggestions, "pick target platforms: facebook, instagram, tiktok, youtube")
	}

	if len([]rune(strings.TrimSpace(in.Objective))) < minObjectiveLen {
		warnings = append(warnings, "objective is unclear; content may miss the goal")
		suggestions = append(suggestions, `state a concrete objective, e.g. "grow engagement", "convert to customers"`)
	}

	return domain.AdvisoryResult{
		Warnings:    warnings,
		Suggestions: suggestions,
		Normalized: domain.AdvisoryNormalized{
			Language:       inferLanguage(in.Topic),
			StyleHints:     in.StyleHints,
			CulturalGuards: guards,
		},
	}
}

// inferLanguage guesses a display language from the topic. Thai-first: only a
// topic made purely of ASCII letters and spaces reads as English. This never
// overrides an explicitly supplied language.
func inferLanguage(topic string) string {
	if topic != "" && asciiTopic.MatchString(topic) {
		return "en"
	}
	return "th"
}
