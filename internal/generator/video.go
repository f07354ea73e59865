package generator

import (
	"fmt"

	"contentforge/internal/domain"
)

// Scene templates for the timed video plan. Each template fixes the cut
// structure; n selects which template a given input lands on.
type sceneTemplate struct {
	durations []string
	styles    []string
}

var sceneTemplates = []sceneTemplate{
	{durations: []string{"0-5s", "5-20s", "20-30s"}, styles: []string{"dynamic", "clear", "call-to-action"}},
	{durations: []string{"0-3s", "3-15s", "15-30s"}, styles: []string{"bold", "steady", "call-to-action"}},
	{durations: []string{"0-7s", "7-25s", "25-30s"}, styles: []string{"calm", "clear", "punchy"}},
}

// Video renders a timed three-scene script and matching shotlist.
func Video(in domain.GenerateInput) *domain.GeneratedBundle {
	seed, n := deriveSeed(in)
	isThai := in.Language != "en"
	tpl := pick(sceneTemplates, n)

	var hook, cta string
	if isThai {
		hook = pick(thHooks, n)
		cta = pick(thCTAs, n+1)
	} else {
		hook = pick(enHooks, n)
		cta = pick(enCTAs, n+1)
	}
	if in.CTA != "" {
		cta = in.CTA
	}

	var scenes []domain.VideoScene
	if isThai {
		scenes = []domain.VideoScene{
			{Scene: 1, Visual: fmt.Sprintf("แสดง %s อย่างรวดเร็ว", in.Topic), Narration: fmt.Sprintf("ทำไม %s ถึงสำคัญ?", in.Topic), Duration: tpl.durations[0]},
			{Scene: 2, Visual: "แสดงขั้นตอน 3 ขั้น", Narration: "3 ขั้นตอนง่าย ๆ:", Duration: tpl.durations[1]},
			{Scene: 3, Visual: "แสดงผลลัพธ์และ CTA", Narration: cta, Duration: tpl.durations[2]},
		}
	} else {
		scenes = []domain.VideoScene{
			{Scene: 1, Visual: fmt.Sprintf("Show %s quickly", in.Topic), Narration: fmt.Sprintf("Why is %s important?", in.Topic), Duration: tpl.durations[0]},
			{Scene: 2, Visual: "Show 3 steps", Narration: "3 simple steps:", Duration: tpl.durations[1]},
			{Scene: 3, Visual: "Show results and CTA", Narration: cta, Duration: tpl.durations[2]},
		}
	}

	shotlist := []domain.Shot{
		{Shot: 1, Description: shotText(isThai, "เปิดเรื่อง", "Opening"), Duration: tpl.durations[0], Style: tpl.styles[0]},
		{Shot: 2, Description: shotText(isThai, "เนื้อหาหลัก", "Main content"), Duration: tpl.durations[1], Style: tpl.styles[1]},
		{Shot: 3, Description: shotText(isThai, "ปิดท้าย", "Closing"), Duration: tpl.durations[2], Style: tpl.styles[2]},
	}

	return &domain.GeneratedBundle{
		VideoScript: &domain.VideoScript{Hook: hook, Scenes: scenes, EndingCTA: cta},
		Shotlist:    shotlist,
		Meta:        domain.OutputMeta{DeterministicSeed: seed},
	}
}
