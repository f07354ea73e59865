package advisory

import (
	"reflect"
	"strings"
	"testing"

	"contentforge/internal/domain"
)

func TestAnalyzeIsPureAndDeterministic(t *testing.T) {
	in := Input{
		BrandName: "Demo Brand",
		VoiceTone: "friendly",
		Topic:     "สุขภาพ",
		Objective: "เพิ่มการมีส่วนร่วมในชุมชน",
		Platforms: []domain.Platform{domain.PlatformFacebook},
	}
	first := Analyze(in)
	second := Analyze(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Analyze() not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeFamilies(t *testing.T) {
	tests := []struct {
		name         string
		in           Input
		wantWarnings int
		wantContains string
	}{
		{
			name: "clean input",
			in: Input{
				BrandName:   "Demo",
				PersonaName: "Expert",
				Topic:       "weekly meal prep for athletes",
				Objective:   "grow engagement with the community",
				Platforms:   []domain.Platform{domain.PlatformFacebook},
			},
			wantWarnings: 0,
		},
		{
			name: "cultural reference",
			in: Input{
				BrandName:   "Demo",
				PersonaName: "Expert",
				Topic:       "hanuman themed merchandise",
				Objective:   "launch the new collection",
				Platforms:   []domain.Platform{domain.PlatformInstagram},
			},
			wantWarnings: 1,
			wantContains: "culturally ambiguous",
		},
		{
			name: "vague voice tone",
			in: Input{
				BrandName:   "Demo",
				PersonaName: "Expert",
				VoiceTone:   "nice and good",
				Topic:       "running shoes",
				Objective:   "drive sales this month",
				Platforms:   []domain.Platform{domain.PlatformFacebook},
			},
			wantWarnings: 1,
			wantContains: "voice tone is ambiguous",
		},
		{
			name: "broad topic single warning despite multiple matches",
			in: Input{
				BrandName:   "Demo",
				PersonaName: "Expert",
				Topic:       "health and food and travel",
				Objective:   "build awareness broadly",
				Platforms:   []domain.Platform{domain.PlatformFacebook},
			},
			wantWarnings: 1,
			wantContains: "too broad",
		},
		{
			name: "missing persona with brand present",
			in: Input{
				BrandName: "Demo",
				Topic:     "running shoes",
				Objective: "drive sales this month",
				Platforms: []domain.Platform{domain.PlatformFacebook},
			},
			wantWarnings: 1,
			wantContains: "no persona",
		},
		{
			name: "no platforms and short objective",
			in: Input{
				BrandName:   "Demo",
				PersonaName: "Expert",
				Topic:       "running shoes",
				Objective:   "sell",
			},
			wantWarnings: 2,
			wantContains: "objective is unclear",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Analyze(tc.in)
			if len(got.Warnings) != tc.wantWarnings {
				t.Fatalf("Analyze() warnings = %d (%v), want %d", len(got.Warnings), got.Warnings, tc.wantWarnings)
			}
			if len(got.Suggestions) != len(got.Warnings) {
				t.Fatalf("Analyze() suggestions = %d, want one per warning (%d)", len(got.Suggestions), len(got.Warnings))
			}
			if tc.wantContains != "" {
				found := false
				for _, w := range got.Warnings {
					if containsFold(w, tc.wantContains) {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("Analyze() warnings %v missing %q", got.Warnings, tc.wantContains)
				}
			}
		})
	}
}

func TestInferLanguage(t *testing.T) {
	tests := []struct {
		topic string
		want  string
	}{
		{"running shoes", "en"},
		{"รองเท้าวิ่ง", "th"},
		{"promo 2024", "th"}, // digits break the pure-ASCII-letters rule
		{"", "th"},
	}
	for _, tc := range tests {
		if got := inferLanguage(tc.topic); got != tc.want {
			t.Fatalf("inferLanguage(%q) = %q, want %q", tc.topic, got, tc.want)
		}
	}
}

func TestAnalyzeCulturalGuardRecorded(t *testing.T) {
	got := Analyze(Input{
		BrandName:   "Demo",
		PersonaName: "Expert",
		Topic:       "หนุมาน",
		Objective:   "สร้างการรับรู้ให้แบรนด์",
		Platforms:   []domain.Platform{domain.PlatformFacebook},
	})
	if len(got.Normalized.CulturalGuards) != 1 {
		t.Fatalf("CulturalGuards = %v, want exactly one guard", got.Normalized.CulturalGuards)
	}
	if got.Normalized.Language != "th" {
		t.Fatalf("Language = %q, want th", got.Normalized.Language)
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
