// Package policy scores generated content for platform risk. Scoring is
// deterministic: fixed pattern lists, fixed additive adjustments, no clock.
package policy

import (
	"encoding/json"
	"regexp"
	"strings"

	"contentforge/internal/domain"
)

// highRiskTopics flag content that most platforms restrict outright. First
// match wins; later patterns are not tried.
var highRiskTopics = []*regexp.Regexp{
	regexp.MustCompile(`(?i)18\+`),
	regexp.MustCompile(`(?i)โป๊`),
	regexp.MustCompile(`(?i)เปลือย`),
	regexp.MustCompile(`(?i)เซ็ก`),
	regexp.MustCompile(`(?i)พนัน`),
	regexp.MustCompile(`(?i)gambling`),
	regexp.MustCompile(`(?i)casino`),
	regexp.MustCompile(`(?i)ยาเสพติด`),
	regexp.MustCompile(`(?i)ความรุนแรง`),
	regexp.MustCompile(`(?i)ฆ่า`),
	regexp.MustCompile(`(?i)violence`),
}

// copyrightRiskPatterns only apply to music requests; matched against the
// topic plus the serialized outputs so lyric text is covered too.
var copyrightRiskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ใช้เพลงต้นฉบับ`),
	regexp.MustCompile(`(?i)copy`),
	regexp.MustCompile(`(?i)เหมือนเพลง`),
	regexp.MustCompile(`(?i)ลอกเพลง`),
	regexp.MustCompile(`(?i)ดนตรีต้นฉบับ`),
	regexp.MustCompile(`(?i)cover song`),
}

const (
	baseRiskScore      = 10
	highRiskBoost      = 70
	copyrightBoost     = 50
	ambiguityBoost     = 10
	strictProviderCut  = 10
	youtubeStrictBoost = 10
)

// Evaluate scores the request and returns per-platform results plus the
// overall tier and on-air gate decision.
func Evaluate(in domain.PolicyInput) domain.PolicyEvaluationResult {
	score := baseRiskScore
	var warnings []string
	var notes []string

	for _, pattern := range highRiskTopics {
		if pattern.MatchString(in.Topic) {
			score += highRiskBoost
			warnings = append(warnings, "หัวข้ออาจมีเนื้อหาที่ไม่เหมาะสม")
			notes = append(notes, "ตรวจสอบเนื้อหาก่อนเผยแพร่")
			break
		}
	}

	if in.Kind == domain.ProviderKindMusic {
		haystack := in.Topic
		if in.Outputs != nil {
			if raw, err := json.Marshal(in.Outputs); err == nil {
				haystack += " " + string(raw)
			}
		}
		for _, pattern := range copyrightRiskPatterns {
			if pattern.MatchString(haystack) {
				score += copyrightBoost
				warnings = append(warnings, "อาจมีความเสี่ยงด้านลิขสิทธิ์ - ควรใช้เพลงที่ได้รับอนุญาตหรือเพลงต้นฉบับ")
				notes = append(notes, "ตรวจสอบลิขสิทธิ์เพลงก่อนใช้งาน")
				break
			}
		}
	}

	if ambiguous := ambiguousWarnings(in.Advisory); len(ambiguous) > 0 {
		score += ambiguityBoost
		warnings = append(warnings, "คำเตือนจากผู้ช่วยวิเคราะห์: "+strings.Join(ambiguous, ", "))
	}

	for _, tag := range in.ProviderPolicyTags {
		if tag == "strict" {
			score -= strictProviderCut
			notes = append(notes, "Provider มีนโยบายเข้มงวด - ลดความเสี่ยง")
			break
		}
	}

	score = clamp(score)

	tier := domain.RiskTierLow
	switch {
	case score >= 70:
		tier = domain.RiskTierHigh
	case score >= 30:
		tier = domain.RiskTierMedium
	}

	platformResults := make(map[domain.Platform]domain.PlatformPolicyResult, len(in.Platforms))
	for _, platform := range in.Platforms {
		platformScore := score
		platformWarnings := append([]string(nil), warnings...)
		requiredEdits := []string{}

		switch platform {
		case domain.PlatformYouTube:
			if score >= 50 {
				platformScore += youtubeStrictBoost
				platformWarnings = append(platformWarnings, "YouTube มีนโยบายเข้มงวด - ควรตรวจสอบเพิ่มเติม")
			}
		case domain.PlatformTikTok:
			if score >= 60 {
				platformWarnings = append(platformWarnings, "TikTok อาจจำกัดเนื้อหาบางประเภท")
			}
		case domain.PlatformFacebook:
			if score >= 60 {
				platformWarnings = append(platformWarnings, "Facebook มีนโยบายเนื้อหาที่เข้มงวด")
			}
		}

		platformResults[platform] = domain.PlatformPolicyResult{
			RiskScore:     clamp(platformScore),
			Warnings:      platformWarnings,
			RequiredEdits: requiredEdits,
		}
	}

	gateRequired := tier == domain.RiskTierHigh
	if !gateRequired {
		for _, result := range platformResults {
			if result.RiskScore >= 80 {
				gateRequired = true
				break
			}
		}
	}
	if gateRequired {
		notes = append(notes, "⚠️ ต้องผ่านการตรวจสอบก่อนเผยแพร่ (onAirGateRequired=true)")
	}

	return domain.PolicyEvaluationResult{
		Platform: platformResults,
		Overall: domain.PolicyOverall{
			RiskScore:         score,
			Tier:              tier,
			OnAirGateRequired: gateRequired,
		},
		Notes: notes,
	}
}

// ambiguousWarnings filters the advisory warnings down to the ambiguity
// family, recognized by its token in either language.
func ambiguousWarnings(advisory *domain.AdvisoryResult) []string {
	if advisory == nil {
		return nil
	}
	var out []string
	for _, w := range advisory.Warnings {
		if strings.Contains(w, "คลุมเครือ") || strings.Contains(w, "ambiguous") {
			out = append(out, w)
		}
	}
	return out
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
