package generator

import (
	"fmt"

	"contentforge/internal/domain"
)

// Style and negative-prompt pools for the image generator, indexed by n.
var thImageStyles = []string{
	"สไตล์ไทยร่วมสมัย, สีสันสดใส, องค์ประกอบชัดเจน",
	"มินิมอล, พื้นหลังสะอาด, แสงนุ่ม",
	"ภาพถ่ายสินค้า, แสงสตูดิโอ, รายละเอียดคมชัด",
}

var enImageStyles = []string{
	"Modern Thai style, vibrant colors, clear composition",
	"Minimal, clean background, soft lighting",
	"Product photography, studio lighting, sharp detail",
}

var thNegativePrompts = []string{
	"ภาพเบลอ, สีซีด, องค์ประกอบรก, ข้อความเยอะเกินไป",
	"แสงแข็งเกินไป, เงารบกวน, พื้นหลังรก",
}

var enNegativePrompts = []string{
	"blurry, faded colors, cluttered composition, too much text",
	"harsh lighting, distracting shadows, busy background",
}

// Image renders a structured image prompt plus a two-shot shotlist.
func Image(in domain.GenerateInput) *domain.GeneratedBundle {
	seed, n := deriveSeed(in)
	isThai := in.Language != "en"

	var prompt domain.ImagePrompt
	if isThai {
		prompt = domain.ImagePrompt{
			Description: fmt.Sprintf("%s — %s, สไตล์ %s, กลุ่มเป้าหมาย %s",
				in.Topic, in.Objective, in.VoiceTone, in.TargetAudience),
			Style:          pick(thImageStyles, n),
			NegativePrompt: pick(thNegativePrompts, n+1),
			Notes: []string{
				"⚠️ ระวัง: หลีกเลี่ยงสัญลักษณ์หรือสีที่อาจมีความหมายทางวัฒนธรรมที่ซับซ้อน",
				fmt.Sprintf("ใช้สีที่เหมาะสมกับแบรนด์ %s", in.BrandName),
			},
		}
	} else {
		prompt = domain.ImagePrompt{
			Description: fmt.Sprintf("%s — %s, %s style, target %s",
				in.Topic, in.Objective, in.VoiceTone, in.TargetAudience),
			Style:          pick(enImageStyles, n),
			NegativePrompt: pick(enNegativePrompts, n+1),
			Notes: []string{
				"⚠️ Note: Avoid symbols or colors with complex cultural meanings",
				fmt.Sprintf("Use colors appropriate for brand %s", in.BrandName),
			},
		}
	}

	shotlist := []domain.Shot{
		{Shot: 1, Description: shotText(isThai, "ภาพหลักแสดงหัวข้อ", "Main image showing topic"), AspectRatio: "16:9", Style: "vibrant"},
		{Shot: 2, Description: shotText(isThai, "ภาพประกอบแสดงผลลัพธ์", "Supporting image showing results"), AspectRatio: "1:1", Style: "clean"},
	}

	return &domain.GeneratedBundle{
		ImagePrompt: &prompt,
		Shotlist:    shotlist,
		Meta:        domain.OutputMeta{DeterministicSeed: seed},
	}
}

// imagePrompt is the prompt sketch attached to text output; the dedicated
// image generator adds the shotlist and seed-varied styles.
func imagePrompt(in domain.GenerateInput, isThai bool) *domain.ImagePrompt {
	if isThai {
		return &domain.ImagePrompt{
			Description: fmt.Sprintf("%s — %s, สไตล์ %s, กลุ่มเป้าหมาย %s, สีสันสดใส, องค์ประกอบชัดเจน",
				in.Topic, in.Objective, in.VoiceTone, in.TargetAudience),
			Style:          thImageStyles[0],
			NegativePrompt: thNegativePrompts[0],
			Notes: []string{
				"⚠️ ระวัง: หลีกเลี่ยงสัญลักษณ์หรือสีที่อาจมีความหมายทางวัฒนธรรมที่ซับซ้อน",
				fmt.Sprintf("ใช้สีที่เหมาะสมกับแบรนด์ %s", in.BrandName),
			},
		}
	}
	return &domain.ImagePrompt{
		Description: fmt.Sprintf("%s — %s, %s style, target %s, vibrant colors, clear composition",
			in.Topic, in.Objective, in.VoiceTone, in.TargetAudience),
		Style:          enImageStyles[0],
		NegativePrompt: enNegativePrompts[0],
		Notes: []string{
			"⚠️ Note: Avoid symbols or colors with complex cultural meanings",
			fmt.Sprintf("Use colors appropriate for brand %s", in.BrandName),
		},
	}
}

func shotText(isThai bool, th, en string) string {
	if isThai {
		return th
	}
	return en
}
