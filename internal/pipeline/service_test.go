package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"contentforge/internal/canon"
	"contentforge/internal/capability"
	"contentforge/internal/domain"
	"contentforge/internal/storage"
)

type memBrands struct{ byID map[string]*domain.Brand }

func (m *memBrands) Create(ctx context.Context, b *domain.Brand) error { m.byID[b.ID] = b; return nil }
func (m *memBrands) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	if b, ok := m.byID[id]; ok {
		return b, nil
	}
	return nil, domain.ErrNotFound
}
func (m *memBrands) List(ctx context.Context) ([]domain.Brand, error) { return nil, nil }

type memPersonas struct{ byID map[string]*domain.Persona }

func (m *memPersonas) Create(ctx context.Context, p *domain.Persona) error {
	m.byID[p.ID] = p
	return nil
}
func (m *memPersonas) GetByID(ctx context.Context, id string) (*domain.Persona, error) {
	if p, ok := m.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}
func (m *memPersonas) List(ctx context.Context) ([]domain.Persona, error) { return nil, nil }

type memPlans struct{ byID map[string]*domain.Plan }

func (m *memPlans) Create(ctx context.Context, p *domain.Plan) error { m.byID[p.ID] = p; return nil }
func (m *memPlans) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	if p, ok := m.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}
func (m *memPlans) List(ctx context.Context, f domain.PlanFilter) ([]domain.Plan, error) {
	return nil, nil
}

type memJobs struct {
	byID    map[string]*domain.Job
	updates int
}

func (m *memJobs) Create(ctx context.Context, j *domain.Job) error {
	copied := *j
	m.byID[j.ID] = &copied
	return nil
}

func (m *memJobs) Update(ctx context.Context, j *domain.Job) error {
	m.updates++
	copied := *j
	m.byID[j.ID] = &copied
	return nil
}

func (m *memJobs) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	if j, ok := m.byID[id]; ok {
		return j, nil
	}
	return nil, domain.ErrNotFound
}

type memProviders struct{ providers []domain.CapabilityProvider }

func (m *memProviders) List(ctx context.Context) ([]domain.CapabilityProvider, error) {
	return m.providers, nil
}
func (m *memProviders) Create(ctx context.Context, p *domain.CapabilityProvider) error {
	m.providers = append(m.providers, *p)
	return nil
}

type memUniverses struct {
	universe   *domain.Universe
	characters []domain.Character
	events     []domain.CanonEvent
}

func (m *memUniverses) GetUniverse(ctx context.Context, id string) (*domain.Universe, error) {
	if m.universe != nil && m.universe.ID == id {
		return m.universe, nil
	}
	return nil, domain.ErrNotFound
}
func (m *memUniverses) ListCharacters(ctx context.Context, universeID string, limit int) ([]domain.Character, error) {
	return m.characters, nil
}
func (m *memUniverses) ListEvents(ctx context.Context, universeID string) ([]domain.CanonEvent, error) {
	return m.events, nil
}
func (m *memUniverses) ListCrossovers(ctx context.Context, universeID, fromSeriesID string) ([]domain.CrossoverRule, error) {
	return nil, nil
}

type fixture struct {
	service *Service
	jobs    *memJobs
	dir     string
}

func newFixture(t *testing.T, providers []domain.CapabilityProvider) *fixture {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}

	registry := capability.NewRegistry(&memProviders{providers: providers})
	jobs := &memJobs{byID: map[string]*domain.Job{}}
	brands := &memBrands{byID: map[string]*domain.Brand{
		"b1": {ID: "b1", Name: "Demo Brand", VoiceTone: "warm", TargetAudience: "locals"},
	}}
	personas := &memPersonas{byID: map[string]*domain.Persona{
		"pe1": {ID: "pe1", BrandID: "b1", Name: "Aunt May"},
	}}
	plans := &memPlans{byID: map[string]*domain.Plan{
		"pl1": {ID: "pl1", BrandID: "b1", SeriesID: "s1", Objective: "plan objective from the calendar", CTA: "Visit us", ScheduledAt: time.Now()},
	}}
	universes := &memUniverses{
		universe:   &domain.Universe{ID: "u1", Name: "Demo Universe"},
		characters: []domain.Character{{ID: "c1", UniverseID: "u1", Name: "Aree"}},
		events:     []domain.CanonEvent{{ID: "e1", UniverseID: "u1", Title: "Founding"}},
	}

	service := NewService(
		brands, personas, plans, jobs,
		registry, capability.NewSelector(registry),
		canon.NewBuilder(universes),
		store, zerolog.Nop(),
	)
	return &fixture{service: service, jobs: jobs, dir: dir}
}

func defaultProviders() []domain.CapabilityProvider {
	return []domain.CapabilityProvider{
		{ID: "txt-1", Kind: domain.ProviderKindText, Name: "mock-text", Version: "1.0",
			QualityTier: domain.QualityTierHQ, CostTier: domain.CostTierStandard, SpeedTier: domain.SpeedTierStandard,
			Languages: []string{"th", "en"}, PolicyTags: []string{"safe"}, IsDefault: true},
		{ID: "mus-1", Kind: domain.ProviderKindMusic, Name: "mock-music", Version: "1.0",
			QualityTier: domain.QualityTierStandard, CostTier: domain.CostTierCheap, SpeedTier: domain.SpeedTierFast,
			Languages: []string{"th", "en"}, PolicyTags: []string{"strict"}},
	}
}

func baseRequest() domain.GenerateJobRequest {
	return domain.GenerateJobRequest{
		BrandID:   "b1",
		PersonaID: "pe1",
		Topic:     "community cooking class",
		Objective: "invite neighbours to the weekend class",
		Platforms: []domain.Platform{domain.PlatformFacebook},
		Kinds:     []domain.ProviderKind{domain.ProviderKindText},
		Options:   domain.GenerateOptions{Language: "en", Seed: "alpha"},
	}
}

func TestRunHappyPath(t *testing.T) {
	f := newFixture(t, defaultProviders())
	job, err := f.service.Run(context.Background(), baseRequest())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if job.Status != domain.JobStatusSucceeded {
		t.Fatalf("status = %s, want succeeded", job.Status)
	}
	if job.Advisory == nil {
		t.Fatal("advisory missing")
	}
	sel, ok := job.Selections[domain.ProviderKindText]
	if !ok || sel.ProviderID != "txt-1" {
		t.Fatalf("selection = %+v", job.Selections)
	}
	if sel.Score != sel.Breakdown.ObjectiveScore*3+sel.Breakdown.LanguageScore*2+sel.Breakdown.PolicyScore {
		t.Fatalf("score invariant broken: %+v", sel)
	}
	if job.Outputs == nil || job.Outputs.Caption == "" {
		t.Fatal("outputs missing")
	}
	if job.Policy == nil || job.Policy.Overall.Tier != domain.RiskTierLow {
		t.Fatalf("policy = %+v, want low tier", job.Policy)
	}
	if job.Policy.Overall.OnAirGateRequired {
		t.Fatal("clean topic must not require the gate")
	}

	artifact := filepath.Join(f.dir, "jobs", job.ID+".json")
	raw, err := os.ReadFile(artifact)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if !strings.Contains(string(raw), job.ID) {
		t.Fatal("artifact missing job id")
	}

	persisted, err := f.jobs.GetByID(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("job not persisted: %v", err)
	}
	if persisted.Status != domain.JobStatusSucceeded {
		t.Fatalf("persisted status = %s", persisted.Status)
	}
	if len(persisted.Logs) < 3 {
		t.Fatalf("logs = %v, want queued + generated + artifact entries", persisted.Logs)
	}
}

func TestRunPlanFillsRequestDefaults(t *testing.T) {
	f := newFixture(t, defaultProviders())
	req := domain.GenerateJobRequest{
		PlanID:    "pl1",
		Topic:     "community cooking class",
		Platforms: []domain.Platform{domain.PlatformFacebook},
		Options:   domain.GenerateOptions{Language: "en"},
	}
	job, err := f.service.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if job.BrandID != "b1" {
		t.Fatalf("brand id = %q, want from plan", job.BrandID)
	}
	if job.Request.Objective != "plan objective from the calendar" {
		t.Fatalf("objective = %q, want plan default", job.Request.Objective)
	}
	if job.Outputs.VideoScript.EndingCTA != "Visit us" {
		t.Fatalf("cta = %q, want plan default", job.Outputs.VideoScript.EndingCTA)
	}
}

func TestRunUnknownBrand(t *testing.T) {
	f := newFixture(t, defaultProviders())
	req := baseRequest()
	req.BrandID = "nope"
	req.PersonaID = ""
	_, err := f.service.Run(context.Background(), req)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Run() error = %v, want ErrNotFound", err)
	}
	if len(f.jobs.byID) != 0 {
		t.Fatal("no job record should exist when context resolution fails")
	}
}

func TestRunNoProviderMarksJobFailed(t *testing.T) {
	f := newFixture(t, nil)
	req := baseRequest()
	_, err := f.service.Run(context.Background(), req)
	if !errors.Is(err, domain.ErrNoProviderAvailable) {
		t.Fatalf("Run() error = %v, want ErrNoProviderAvailable", err)
	}

	var failed *domain.Job
	for _, j := range f.jobs.byID {
		failed = j
	}
	if failed == nil {
		t.Fatal("job record missing")
	}
	if failed.Status != domain.JobStatusFailed {
		t.Fatalf("status = %s, want failed", failed.Status)
	}
	if failed.ErrorMessage == "" {
		t.Fatal("error message missing on failed job")
	}
}

func TestRunMultiKindUsesMusicForPolicy(t *testing.T) {
	f := newFixture(t, defaultProviders())
	req := baseRequest()
	req.Kinds = []domain.ProviderKind{domain.ProviderKindText, domain.ProviderKindMusic}
	req.Topic = "brand jingle, copy the famous song"

	job, err := f.service.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	// 10 (base) + 50 (copyright) - 10 (strict music provider) = 50
	if job.Policy.Overall.RiskScore != 50 {
		t.Fatalf("risk score = %d, want 50 (copyright rules apply when music is requested)", job.Policy.Overall.RiskScore)
	}
	if job.Outputs.Music == nil || job.Outputs.Caption == "" {
		t.Fatal("merged outputs must include both text and music")
	}
	if len(job.ProviderTraces) != 2 {
		t.Fatalf("traces = %v, want one per kind", job.ProviderTraces)
	}
}

func TestRunHighRiskTopicSetsGate(t *testing.T) {
	f := newFixture(t, defaultProviders())
	req := baseRequest()
	req.Topic = "casino night promotion"
	job, err := f.service.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if job.Policy.Overall.Tier != domain.RiskTierHigh || !job.GateRequired() {
		t.Fatalf("policy = %+v, want high tier with gate", job.Policy.Overall)
	}
	if job.Status != domain.JobStatusSucceeded {
		t.Fatal("a gated job still succeeds; only publish-mode export is blocked")
	}
}

func TestRunAttachesCanonPacket(t *testing.T) {
	f := newFixture(t, defaultProviders())
	req := baseRequest()
	req.UniverseID = "u1"
	job, err := f.service.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if job.Canon == nil || job.Canon.Universe.ID != "u1" {
		t.Fatalf("canon = %+v", job.Canon)
	}
	ref := job.Outputs.Meta.Canon
	if ref == nil || ref.UniverseID != "u1" || ref.CharacterCount != 1 || ref.EventCount != 1 {
		t.Fatalf("canon ref = %+v", ref)
	}
}

func TestRunMissingTopic(t *testing.T) {
	f := newFixture(t, defaultProviders())
	req := baseRequest()
	req.Topic = ""
	_, err := f.service.Run(context.Background(), req)
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("Run() error = %v, want ErrInvalidRequest", err)
	}
}
