package generator

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"contentforge/internal/domain"
)

func baseInput() domain.GenerateInput {
	return domain.GenerateInput{
		BrandName:        "Content Forge Demo Brand",
		VoiceTone:        "clear and warm",
		ProhibitedTopics: "politics",
		TargetAudience:   "senior travellers",
		Topic:            "safe trips",
		Objective:        "invite people to join this week's activity",
		Platforms:        []domain.Platform{domain.PlatformFacebook, domain.PlatformTikTok},
		Language:         "en",
	}
}

func TestGenerateIsByteIdentical(t *testing.T) {
	for _, kind := range []domain.ProviderKind{
		domain.ProviderKindText,
		domain.ProviderKindImage,
		domain.ProviderKindVideo,
		domain.ProviderKindMusic,
	} {
		t.Run(string(kind), func(t *testing.T) {
			in := baseInput()
			in.Seed = "alpha"
			first, err := Run(kind, in)
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			second, err := Run(kind, in)
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			a, _ := json.Marshal(first)
			b, _ := json.Marshal(second)
			if string(a) != string(b) {
				t.Fatalf("Run(%s) not byte-identical:\n%s\n%s", kind, a, b)
			}
		})
	}
}

func TestSeedChangesChosenHook(t *testing.T) {
	in := baseInput()

	in.Seed = "alpha" // sha256("alpha") -> n%5 == 2
	withAlpha := Text(in)
	in.Seed = "beta" // sha256("beta") -> n%5 == 3
	withBeta := Text(in)

	alphaHook := withAlpha.VideoScript.Hook
	betaHook := withBeta.VideoScript.Hook
	if alphaHook != enHooks[2] {
		t.Fatalf("alpha hook = %q, want %q", alphaHook, enHooks[2])
	}
	if betaHook != enHooks[3] {
		t.Fatalf("beta hook = %q, want %q", betaHook, enHooks[3])
	}
	if alphaHook == betaHook {
		t.Fatal("different seeds produced the same hook")
	}
	if withAlpha.Meta.DeterministicSeed == withBeta.Meta.DeterministicSeed {
		t.Fatal("different seeds produced the same deterministic seed")
	}
}

func TestImplicitSeedTracksEveryField(t *testing.T) {
	in := baseInput() // no explicit seed: canonical JSON of the input drives n
	original := Text(in).Meta.DeterministicSeed

	mutations := []func(*domain.GenerateInput){
		func(g *domain.GenerateInput) { g.Topic = "street food tours" },
		func(g *domain.GenerateInput) { g.Objective = "announce the new schedule" },
		func(g *domain.GenerateInput) { g.BrandName = "Other Brand" },
		func(g *domain.GenerateInput) { g.Language = "th" },
		func(g *domain.GenerateInput) { g.Seed = "explicit" },
	}
	for i, mutate := range mutations {
		changed := baseInput()
		mutate(&changed)
		got := Text(changed).Meta.DeterministicSeed
		if got == original {
			t.Fatalf("mutation %d did not change the deterministic seed", i)
		}
	}
}

func TestExplicitSeedPinsChoices(t *testing.T) {
	in := baseInput()
	in.Seed = "alpha"
	first := Text(in)

	in.Topic = "completely different topic"
	second := Text(in)

	if first.Meta.DeterministicSeed != second.Meta.DeterministicSeed {
		t.Fatal("explicit seed must pin the deterministic seed across topic changes")
	}
	if first.VideoScript.Hook != second.VideoScript.Hook {
		t.Fatal("explicit seed must pin the chosen hook")
	}
	if first.Caption == second.Caption {
		t.Fatal("topic change must still flow into the caption")
	}
}

func TestCallerCTAWinsOverPool(t *testing.T) {
	in := baseInput()
	in.CTA = "  Book now  "
	out := Text(in)
	if out.VideoScript.EndingCTA != "Book now" {
		t.Fatalf("EndingCTA = %q, want trimmed caller CTA", out.VideoScript.EndingCTA)
	}
}

func TestTextPlatformFormatting(t *testing.T) {
	in := baseInput()
	in.Platforms = []domain.Platform{domain.PlatformFacebook, domain.PlatformYouTube}
	out := Text(in)

	if len(out.Platforms) != 2 {
		t.Fatalf("platforms = %v, want exactly the two requested", out.Platforms)
	}
	if _, ok := out.Platforms[domain.PlatformTikTok]; ok {
		t.Fatal("unrequested platform present in output")
	}

	fb := out.Platforms[domain.PlatformFacebook]
	wantTag := "#safetrips"
	found := false
	for _, tag := range fb.Hashtags {
		if tag == wantTag {
			found = true
		}
		if strings.Contains(tag, " ") {
			t.Fatalf("hashtag %q contains whitespace", tag)
		}
	}
	if !found {
		t.Fatalf("facebook hashtags %v missing topic tag %q", fb.Hashtags, wantTag)
	}

	yt := out.Platforms[domain.PlatformYouTube]
	if !strings.Contains(yt.Body, "In this video") {
		t.Fatalf("youtube body %q missing long-form framing", yt.Body)
	}
}

func TestThaiHashtagsDifferFromEnglish(t *testing.T) {
	th := baseInput()
	th.Language = "th"
	th.Platforms = []domain.Platform{domain.PlatformInstagram}
	en := baseInput()
	en.Platforms = []domain.Platform{domain.PlatformInstagram}

	thTags := Text(th).Platforms[domain.PlatformInstagram].Hashtags
	enTags := Text(en).Platforms[domain.PlatformInstagram].Hashtags
	if reflect.DeepEqual(thTags, enTags) {
		t.Fatalf("hashtag sets identical across languages: %v", thTags)
	}
}

func TestVideoProducesTimedScenes(t *testing.T) {
	in := baseInput()
	in.Seed = "alpha"
	out := Video(in)

	if out.VideoScript == nil || len(out.VideoScript.Scenes) != 3 {
		t.Fatalf("video script = %+v, want 3 scenes", out.VideoScript)
	}
	for i, scene := range out.VideoScript.Scenes {
		if scene.Duration == "" {
			t.Fatalf("scene %d missing duration", i+1)
		}
		if scene.Scene != i+1 {
			t.Fatalf("scene numbering = %d, want %d", scene.Scene, i+1)
		}
	}
	if len(out.Shotlist) != 3 {
		t.Fatalf("shotlist = %v, want 3 shots", out.Shotlist)
	}
}

func TestMusicPlan(t *testing.T) {
	in := baseInput()
	in.Seed = "alpha" // n%8 == 5 -> Em, n%5 == 2 -> G Em C D
	out := Music(in)

	plan := out.Music
	if plan == nil {
		t.Fatal("music plan missing")
	}
	if plan.Structure.Key != "Em" {
		t.Fatalf("key = %q, want Em", plan.Structure.Key)
	}
	if !reflect.DeepEqual(plan.Structure.ChordProgression, []string{"G", "Em", "C", "D"}) {
		t.Fatalf("progression = %v", plan.Structure.ChordProgression)
	}
	if plan.Structure.TempoBPM != 120 {
		t.Fatalf("tempo = %d, want happy default 120", plan.Structure.TempoBPM)
	}
	// 30s default -> 30/8+1 = 4 sections
	if !reflect.DeepEqual(plan.Structure.Sections, []string{"intro", "verse", "chorus", "bridge"}) {
		t.Fatalf("sections = %v", plan.Structure.Sections)
	}
	if plan.Lyrics != "" {
		t.Fatalf("bgm task must not produce lyrics, got %q", plan.Lyrics)
	}
}

func TestMusicJingleLyricsAndMoodTempo(t *testing.T) {
	in := baseInput()
	in.Seed = "alpha"
	in.Music = &domain.MusicOptions{Task: "jingle", Mood: "serene"}
	out := Music(in)

	plan := out.Music
	if plan.Structure.TempoBPM != 80 {
		t.Fatalf("tempo = %d, want serene default 80", plan.Structure.TempoBPM)
	}
	if !strings.Contains(plan.Lyrics, in.Topic) {
		t.Fatalf("jingle lyrics %q missing topic", plan.Lyrics)
	}
}

func TestRunRejectsUnknownKind(t *testing.T) {
	_, err := Run(domain.ProviderKind("hologram"), baseInput())
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("Run() error = %v, want ErrInvalidRequest", err)
	}
}

func TestMergeCombinesKinds(t *testing.T) {
	in := baseInput()
	in.Seed = "alpha"

	bundle := &domain.GeneratedBundle{}
	Merge(bundle, Text(in))
	Merge(bundle, Image(in))
	Merge(bundle, Music(in))

	if bundle.Caption == "" || bundle.ImagePrompt == nil || bundle.Music == nil {
		t.Fatalf("merged bundle incomplete: %+v", bundle)
	}
	if len(bundle.Shotlist) == 0 {
		t.Fatal("image shotlist lost in merge")
	}
	if bundle.Meta.DeterministicSeed == "" {
		t.Fatal("merged bundle missing deterministic seed")
	}
}
