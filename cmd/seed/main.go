// Command seed loads the demo dataset: one brand with a persona and a short
// plan calendar, the mock capability providers, policy profiles, product
// templates, and a small canon universe. Providers and templates upsert;
// everything else expects an empty database.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"

	"contentforge/internal/adapter/repo"
	"contentforge/internal/domain"
	"contentforge/internal/infra"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	if err := repo.EnsureSchema(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	now := time.Now().UTC()

	brands := repo.NewBrandRepository(pool)
	brand := &domain.Brand{
		ID:               "seed-brand-1",
		Name:             "Content Forge Demo Brand",
		VoiceTone:        "ชัดเจน อบอุ่น แบบมืออาชีพ",
		ProhibitedTopics: "การเมือง/ความเกลียดชัง/ข้อมูลเท็จ",
		TargetAudience:   "ผู้สนใจการท่องเที่ยวและกิจกรรมผู้สูงอายุ",
		Channels:         []string{"FB", "IG", "TikTok", "YouTube", "LINE"},
		CreatedAt:        now,
	}
	if err := brands.Create(ctx, brand); err != nil {
		logger.Fatal().Err(err).Msg("seed brand failed")
	}

	personas := repo.NewPersonaRepository(pool)
	persona := &domain.Persona{
		ID:         "seed-persona-1",
		BrandID:    brand.ID,
		Name:       "ผู้เชี่ยวชาญที่เป็นมิตร",
		StyleGuide: "ใช้ภาษาง่าย ชัดเจน มีขั้นตอน และมี CTA เสมอ",
		DoDont: domain.DoDont{
			Do:   []string{"ใช้ตัวเลขและขั้นตอน", "เน้นประโยชน์ต่อผู้อ่าน", "ปิดด้วย CTA"},
			Dont: []string{"สัญญาผลลัพธ์เกินจริง", "เนื้อหาคลุมเครือ", "แตะประเด็นต้องห้ามของแบรนด์"},
		},
		Examples: []string{
			"3 ขั้นตอนวางแผนกิจกรรมผู้สูงอายุให้คนมาร่วมมากขึ้น",
			"เช็กลิสต์ก่อนออกทริปสำหรับผู้สูงอายุ: ต้องมีอะไรบ้าง",
		},
		CreatedAt: now,
	}
	if err := personas.Create(ctx, persona); err != nil {
		logger.Fatal().Err(err).Msg("seed persona failed")
	}

	plans := repo.NewPlanRepository(pool)
	base := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, time.UTC)
	planSeeds := []struct {
		dayOffset int
		channel   string
		objective string
		cta       string
		seriesID  string
	}{
		{0, "FB", "ชวนเข้าร่วมกิจกรรมวันนี้", "ทักไลน์เพื่อจองที่นั่ง", "seed-series-safe-trips"},
		{1, "IG", "ให้ความรู้เช็กลิสต์ก่อนเดินทาง", "บันทึกโพสต์นี้ไว้", "seed-series-safe-trips"},
		{2, "TikTok", "สคริปต์ 30 วิ: 3 ข้อห้ามพลาด", "คอมเมนต์เพื่อรับไฟล์", "seed-series-recovery"},
	}
	for i, p := range planSeeds {
		plan := &domain.Plan{
			ID:                fmt.Sprintf("seed-plan-%d", i+1),
			BrandID:           brand.ID,
			SeriesID:          p.seriesID,
			ScheduledAt:       base.AddDate(0, 0, p.dayOffset),
			Channel:           p.channel,
			Objective:         p.objective,
			CTA:               p.cta,
			AssetRequirements: "text",
			CreatedAt:         now,
		}
		if err := plans.Create(ctx, plan); err != nil {
			logger.Fatal().Err(err).Msg("seed plan failed")
		}
	}

	providers := repo.NewProviderRepository(pool)
	providerSeeds := []domain.CapabilityProvider{
		{
			ID: "mock-text-v1", Kind: domain.ProviderKindText, Name: "Mock Text Generator", Version: "1.0.0",
			Supports: []string{"caption", "platform_variants"}, CostTier: domain.CostTierCheap,
			QualityTier: domain.QualityTierStandard, SpeedTier: domain.SpeedTierFast,
			Regions: []string{"th"}, Languages: []string{"th", "en"}, PolicyTags: []string{"safe"}, IsDefault: true,
		},
		{
			ID: "mock-text-premium", Kind: domain.ProviderKindText, Name: "Mock Text Premium", Version: "1.0.0",
			Supports: []string{"caption", "platform_variants"}, CostTier: domain.CostTierPremium,
			QualityTier: domain.QualityTierHQ, SpeedTier: domain.SpeedTierStandard,
			Regions: []string{"th"}, Languages: []string{"th", "en"}, PolicyTags: []string{"safe"},
		},
		{
			ID: "mock-image-v1", Kind: domain.ProviderKindImage, Name: "Mock Image Prompter", Version: "1.0.0",
			Supports: []string{"image_prompt", "shotlist"}, CostTier: domain.CostTierStandard,
			QualityTier: domain.QualityTierStandard, SpeedTier: domain.SpeedTierStandard,
			Regions: []string{"th"}, Languages: []string{"th", "en"}, PolicyTags: []string{"safe"}, IsDefault: true,
		},
		{
			ID: "mock-video-v1", Kind: domain.ProviderKindVideo, Name: "Mock Video Scripter", Version: "1.0.0",
			Supports: []string{"video_script", "shotlist"}, CostTier: domain.CostTierStandard,
			QualityTier: domain.QualityTierStandard, SpeedTier: domain.SpeedTierSlow,
			Regions: []string{"th"}, Languages: []string{"th", "en"}, PolicyTags: []string{"safe"}, IsDefault: true,
		},
		{
			ID: "mock-music-v1", Kind: domain.ProviderKindMusic, Name: "Mock Music Planner", Version: "1.0.0",
			Supports: []string{"bgm", "jingle", "chord_extract", "style_transform"}, CostTier: domain.CostTierCheap,
			QualityTier: domain.QualityTierFast, SpeedTier: domain.SpeedTierFast,
			Regions: []string{"th"}, Languages: []string{"th", "en"}, PolicyTags: []string{"strict"}, IsDefault: true,
		},
	}
	for i := range providerSeeds {
		if err := providers.Create(ctx, &providerSeeds[i]); err != nil {
			logger.Fatal().Err(err).Str("provider", providerSeeds[i].ID).Msg("seed provider failed")
		}
	}

	profiles := repo.NewPolicyProfileRepository(pool)
	profileSeeds := []domain.PolicyProfile{
		{
			ID: "seed-policy-general", Platform: "general", Name: "General content policy",
			Rules:    map[string]any{"highRiskThreshold": 70, "gateThreshold": 80},
			IsActive: true, CreatedAt: now,
		},
		{
			ID: "seed-policy-youtube", Platform: "youtube", Name: "YouTube monetization policy",
			Rules:    map[string]any{"escalation": 10, "escalateFrom": 50},
			IsActive: true, CreatedAt: now,
		},
		{
			ID: "seed-policy-tiktok", Platform: "tiktok", Name: "TikTok community policy",
			Rules:    map[string]any{"warnFrom": 60},
			IsActive: true, CreatedAt: now,
		},
	}
	for i := range profileSeeds {
		if err := profiles.Create(ctx, &profileSeeds[i]); err != nil {
			logger.Fatal().Err(err).Str("profile", profileSeeds[i].ID).Msg("seed policy profile failed")
		}
	}

	templates := repo.NewTemplateRepository(pool)
	template := &domain.ProductTemplate{
		ID:   "seed-template-social-pack",
		Key:  "social-pack",
		Name: "Social media pack",
		Schema: map[string]any{
			"assets":    []any{"text.json", "prompts.json", "music.json"},
			"marketing": []any{"captions.json"},
			"licensing": []any{"rights.json", "policy.json"},
		},
		IsActive:  true,
		CreatedAt: now,
	}
	if err := templates.Create(ctx, template); err != nil {
		logger.Fatal().Err(err).Msg("seed template failed")
	}

	universes := repo.NewUniverseRepository(pool)
	universe := &domain.Universe{
		ID:          "seed-universe-1",
		Name:        "Forge Town",
		Description: "A small town where every demo story takes place.",
		CanonRules:  map[string]any{"tone": "wholesome", "timeline": "linear"},
		CreatedAt:   now,
	}
	if err := universes.CreateUniverse(ctx, universe); err != nil {
		logger.Fatal().Err(err).Msg("seed universe failed")
	}
	characters := []domain.Character{
		{ID: "seed-char-1", UniverseID: universe.ID, Name: "Anan", Bio: "Retired teacher who organizes trips.", Traits: map[string]any{"role": "guide"}},
		{ID: "seed-char-2", UniverseID: universe.ID, Name: "Busaba", Bio: "Nurse who checks every itinerary.", Traits: map[string]any{"role": "safety"}},
		{ID: "seed-char-3", UniverseID: universe.ID, Name: "Chai", Bio: "Driver who knows every shortcut.", Traits: map[string]any{"role": "logistics"}},
	}
	for i := range characters {
		if err := universes.CreateCharacter(ctx, &characters[i]); err != nil {
			logger.Fatal().Err(err).Msg("seed character failed")
		}
	}
	events := []domain.CanonEvent{
		{ID: "seed-event-1", UniverseID: universe.ID, Title: "First trip", Summary: "The club's first day trip to the river market.", TimeIndex: 1},
		{ID: "seed-event-2", UniverseID: universe.ID, Title: "Safety workshop", Summary: "Busaba runs the packing checklist workshop.", TimeIndex: 2},
	}
	for i := range events {
		if err := universes.CreateEvent(ctx, &events[i]); err != nil {
			logger.Fatal().Err(err).Msg("seed event failed")
		}
	}
	crossover := &domain.CrossoverRule{
		ID:           "seed-crossover-1",
		UniverseID:   universe.ID,
		FromSeriesID: "seed-series-safe-trips",
		ToSeriesID:   "seed-series-recovery",
		Rule:         map[string]any{"sharedCharacters": []any{"seed-char-2"}},
	}
	if err := universes.CreateCrossover(ctx, crossover); err != nil {
		logger.Fatal().Err(err).Msg("seed crossover failed")
	}

	logger.Info().Str("brand_id", brand.ID).Int("providers", len(providerSeeds)).Msg("seed completed")
}
