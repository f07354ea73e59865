package generator

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"contentforge/internal/domain"
)

// Fixed candidate pools. Order matters: the derived index n addresses these
// lists directly, so reordering changes every historical output.
var thHooks = []string{
	"เริ่มจากเรื่องเล็ก ๆ ที่ทำได้วันนี้",
	"ถ้าคุณอยากเห็นผลลัพธ์ที่ชัดใน 7 วัน",
	"3 ขั้นตอนสั้น ๆ ที่คนส่วนใหญ่ข้ามไป",
	"ทำไมวิธีเดิมถึงไม่เวิร์ก แล้วควรทำอย่างไร",
	"เรื่องนี้เปลี่ยนมุมมองของฉันไปเลย",
}

var enHooks = []string{
	"Start with the smallest action you can do today.",
	"If you want a clear result in 7 days, do this.",
	"Three short steps most people skip.",
	"Why the old way fails, and what to do instead.",
	"This changed my perspective completely.",
}

var thCTAs = []string{
	"ทักมาเพื่อรับเช็กลิสต์",
	"คอมเมนต์ \"สนใจ\" แล้วส่งรายละเอียดให้",
	"บันทึกโพสต์นี้ไว้ แล้วลองทำตาม",
	"แชร์ให้คนที่กำลังต้องการ",
	"ลองทำแล้วคอมเมนต์บอกผลลัพธ์",
}

var enCTAs = []string{
	"DM us for the checklist.",
	"Comment \"info\" and we will send details.",
	"Save this post and try it.",
	"Share with someone who needs it.",
	"Try it and comment with your results.",
}

var enTitleCaser = cases.Title(language.English)

// Text renders the full text package: base caption, per-platform content,
// a video script draft, and an image prompt. The hook is picked by n, the
// fallback CTA independently by n+1.
func Text(in domain.GenerateInput) *domain.GeneratedBundle {
	seed, n := deriveSeed(in)
	isThai := in.Language != "en"

	var hook, cta string
	if isThai {
		hook = pick(thHooks, n)
		cta = pick(thCTAs, n+1)
	} else {
		hook = pick(enHooks, n)
		cta = pick(enCTAs, n+1)
	}
	if trimmed := strings.TrimSpace(in.CTA); trimmed != "" {
		cta = trimmed
	}

	var caption string
	if isThai {
		caption = fmt.Sprintf("%s\n\n%s\n\nหัวข้อ: %s\nกลุ่มเป้าหมาย: %s\n\n%s",
			hook, in.Objective, in.Topic, in.TargetAudience, cta)
	} else {
		caption = fmt.Sprintf("%s\n\n%s\n\nTopic: %s\nTarget: %s\n\n%s",
			hook, in.Objective, in.Topic, in.TargetAudience, cta)
	}

	platforms := make(map[domain.Platform]domain.PlatformContent, len(in.Platforms))
	for _, p := range in.Platforms {
		switch p {
		case domain.PlatformFacebook:
			platforms[p] = facebookContent(in, hook, cta, isThai)
		case domain.PlatformInstagram:
			platforms[p] = instagramContent(in, hook, cta, isThai)
		case domain.PlatformTikTok:
			platforms[p] = tiktokContent(in, hook, cta, isThai)
		case domain.PlatformYouTube:
			platforms[p] = youtubeContent(in, hook, cta, isThai)
		}
	}
	if len(platforms) == 0 {
		platforms = nil
	}

	return &domain.GeneratedBundle{
		Caption:     caption,
		Platforms:   platforms,
		VideoScript: scriptDraft(in, hook, cta, isThai),
		ImagePrompt: imagePrompt(in, isThai),
		Meta:        domain.OutputMeta{DeterministicSeed: seed},
	}
}

func facebookContent(in domain.GenerateInput, hook, cta string, isThai bool) domain.PlatformContent {
	var body string
	if isThai {
		body = fmt.Sprintf("โทนแบรนด์: %s\n\n%s\n\n1) %s — ทำไมถึงสำคัญ\n2) วิธีเริ่มต้นที่ทำได้ทันที\n3) ตัวอย่างที่เห็นผลจริง",
			in.VoiceTone, in.Objective, in.Topic)
	} else {
		body = fmt.Sprintf("Brand tone: %s\n\n%s\n\n1) %s — Why it matters\n2) How to start right away\n3) Real examples that work",
			in.VoiceTone, in.Objective, in.Topic)
	}
	body += avoidNote(in, isThai)
	return domain.PlatformContent{
		Title:    displayTitle(in.Topic, isThai) + " — " + in.Objective,
		Hook:     hook,
		Body:     body,
		CTA:      cta,
		Hashtags: hashtags(in.Topic, isThai, []string{"#การตลาด", "#คอนเทนต์", "#ไอเดีย", "#แบรนด์"}, []string{"#marketing", "#content", "#ideas", "#brand"}),
	}
}

func instagramContent(in domain.GenerateInput, hook, cta string, isThai bool) domain.PlatformContent {
	var body string
	if isThai {
		body = fmt.Sprintf("%s\n\n%s\n\n✨ %s\n\n💡 ทำได้ทันที:\n1. เริ่มจากจุดเล็ก\n2. ทำให้สม่ำเสมอ\n3. ติดตามผล\n\n%s",
			hook, in.Objective, in.Topic, cta)
	} else {
		body = fmt.Sprintf("%s\n\n%s\n\n✨ %s\n\n💡 Start now:\n1. Start small\n2. Stay consistent\n3. Track results\n\n%s",
			hook, in.Objective, in.Topic, cta)
	}
	return domain.PlatformContent{
		Title:    displayTitle(in.Topic, isThai),
		Hook:     hook,
		Body:     body,
		CTA:      cta,
		Hashtags: hashtags(in.Topic, isThai, []string{"#คอนเทนต์", "#ไอเดีย", "#แบรนด์", "#thailand"}, []string{"#content", "#ideas", "#brand", "#marketing"}),
	}
}

func tiktokContent(in domain.GenerateInput, hook, cta string, isThai bool) domain.PlatformContent {
	var body string
	if isThai {
		body = fmt.Sprintf("%s\n\n%s — ทำไมถึงสำคัญ?\n\n3 ขั้นตอน:\n1️⃣ %s\n2️⃣ เริ่มทำเลย\n3️⃣ ติดตามผล\n\n%s",
			hook, in.Topic, shortObjective(in.Objective), cta)
	} else {
		body = fmt.Sprintf("%s\n\n%s — Why it matters?\n\n3 steps:\n1️⃣ %s\n2️⃣ Start now\n3️⃣ Track results\n\n%s",
			hook, in.Topic, shortObjective(in.Objective), cta)
	}
	return domain.PlatformContent{
		Title:    hook,
		Hook:     hook,
		Body:     body,
		CTA:      cta,
		Hashtags: hashtags(in.Topic, isThai, []string{"#tiktok", "#คอนเทนต์", "#viral", "#thailand"}, []string{"#tiktok", "#content", "#viral", "#tips"}),
	}
}

func youtubeContent(in domain.GenerateInput, hook, cta string, isThai bool) domain.PlatformContent {
	var body string
	if isThai {
		body = fmt.Sprintf("%s\n\nในวิดีโอนี้เราจะพูดถึง:\n\n1. %s — ทำไมถึงสำคัญ\n2. %s — วิธีทำ\n3. ตัวอย่างจริงที่เห็นผล\n4. สรุปและข้อควรระวัง\n\n%s",
			hook, in.Topic, in.Objective, cta)
	} else {
		body = fmt.Sprintf("%s\n\nIn this video we'll cover:\n\n1. %s — Why it matters\n2. %s — How to do it\n3. Real examples that work\n4. Summary and warnings\n\n%s",
			hook, in.Topic, in.Objective, cta)
	}
	return domain.PlatformContent{
		Title:    displayTitle(in.Topic, isThai) + ": " + in.Objective,
		Hook:     hook,
		Body:     body,
		CTA:      cta,
		Hashtags: hashtags(in.Topic, isThai, []string{"#youtube", "#คอนเทนต์", "#แบรนด์", "#thailand"}, []string{"#youtube", "#content", "#brand", "#tutorial"}),
	}
}

// scriptDraft is the four-scene script sketch bundled with text output; the
// dedicated video generator produces the timed three-scene variant.
func scriptDraft(in domain.GenerateInput, hook, cta string, isThai bool) *domain.VideoScript {
	if isThai {
		return &domain.VideoScript{
			Hook: hook,
			Scenes: []domain.VideoScene{
				{Scene: 1, Visual: fmt.Sprintf("แสดง %s อย่างรวดเร็ว", in.Topic), Narration: hook, OnScreenText: in.Topic},
				{Scene: 2, Visual: fmt.Sprintf("แสดงความสำคัญของ %s", in.Objective), Narration: fmt.Sprintf("ทำไม %s ถึงสำคัญ?", in.Topic), OnScreenText: "ทำไมถึงสำคัญ?"},
				{Scene: 3, Visual: "แสดงขั้นตอน 3 ขั้น", Narration: "3 ขั้นตอนง่าย ๆ:", OnScreenText: "3 ขั้นตอน"},
				{Scene: 4, Visual: "แสดงผลลัพธ์และ CTA", Narration: cta, OnScreenText: cta},
			},
			EndingCTA: cta,
		}
	}
	return &domain.VideoScript{
		Hook: hook,
		Scenes: []domain.VideoScene{
			{Scene: 1, Visual: fmt.Sprintf("Show %s quickly", in.Topic), Narration: hook, OnScreenText: in.Topic},
			{Scene: 2, Visual: fmt.Sprintf("Show importance of %s", in.Objective), Narration: fmt.Sprintf("Why is %s important?", in.Topic), OnScreenText: "Why it matters?"},
			{Scene: 3, Visual: "Show 3 steps", Narration: "3 simple steps:", OnScreenText: "3 Steps"},
			{Scene: 4, Visual: "Show results and CTA", Narration: cta, OnScreenText: cta},
		},
		EndingCTA: cta,
	}
}

func avoidNote(in domain.GenerateInput, isThai bool) string {
	if in.ProhibitedTopics == "" {
		return ""
	}
	if isThai {
		return "\n\n⚠️ หลีกเลี่ยง: " + in.ProhibitedTopics
	}
	return "\n\n⚠️ Avoid: " + in.ProhibitedTopics
}

// displayTitle renders the topic for titles; English topics get title casing.
func displayTitle(topic string, isThai bool) string {
	if isThai {
		return topic
	}
	return enTitleCaser.String(topic)
}

// shortObjective truncates the objective to its first three words.
func shortObjective(objective string) string {
	words := strings.Fields(objective)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

// hashtags builds the per-platform tag set: language-specific fixed tags plus
// the whitespace-stripped topic tag in the middle.
func hashtags(topic string, isThai bool, th, en []string) []string {
	base := en
	if isThai {
		base = th
	}
	topicTag := "#" + strings.Join(strings.Fields(topic), "")
	out := make([]string, 0, len(base)+1)
	out = append(out, base[:2]...)
	out = append(out, topicTag)
	out = append(out, base[2:]...)
	return out
}
