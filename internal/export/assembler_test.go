package export

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"contentforge/internal/domain"
	"contentforge/internal/storage"
)

type memJobs struct{ byID map[string]*domain.Job }

func (m *memJobs) Create(ctx context.Context, j *domain.Job) error { m.byID[j.ID] = j; return nil }
func (m *memJobs) Update(ctx context.Context, j *domain.Job) error { m.byID[j.ID] = j; return nil }
func (m *memJobs) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	if j, ok := m.byID[id]; ok {
		return j, nil
	}
	return nil, domain.ErrNotFound
}

type memExports struct {
	byID    map[string]*domain.ProductExport
	creates int
}

func (m *memExports) Create(ctx context.Context, e *domain.ProductExport) error {
	m.creates++
	copied := *e
	m.byID[e.ID] = &copied
	return nil
}

func (m *memExports) Update(ctx context.Context, e *domain.ProductExport) error {
	copied := *e
	m.byID[e.ID] = &copied
	return nil
}

func (m *memExports) GetByID(ctx context.Context, id string) (*domain.ProductExport, error) {
	if e, ok := m.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memExports) FindByJobTemplateMode(ctx context.Context, jobID, templateKey string, mode domain.ExportMode) (*domain.ProductExport, error) {
	for _, e := range m.byID {
		if e.JobID == jobID && e.TemplateKey == templateKey && e.Mode == mode {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memTemplates struct{ templates []domain.ProductTemplate }

func (m *memTemplates) ListActive(ctx context.Context) ([]domain.ProductTemplate, error) {
	return m.templates, nil
}
func (m *memTemplates) Create(ctx context.Context, t *domain.ProductTemplate) error {
	m.templates = append(m.templates, *t)
	return nil
}

func succeededJob(gateRequired bool) *domain.Job {
	tier := domain.RiskTierLow
	if gateRequired {
		tier = domain.RiskTierHigh
	}
	return &domain.Job{
		ID:      "job-1",
		BrandID: "b1",
		Status:  domain.JobStatusSucceeded,
		Outputs: &domain.GeneratedBundle{
			Caption: "caption text",
			Platforms: map[domain.Platform]domain.PlatformContent{
				domain.PlatformFacebook: {Title: "title", Body: "body"},
			},
			VideoScript: &domain.VideoScript{Hook: "hook"},
			Music:       &domain.MusicPlan{Task: "bgm"},
			Meta:        domain.OutputMeta{DeterministicSeed: "8ed3f6ad685b959e"},
		},
		Policy: &domain.PolicyEvaluationResult{
			Platform: map[domain.Platform]domain.PlatformPolicyResult{
				domain.PlatformFacebook: {RiskScore: 10, Warnings: []string{}, RequiredEdits: []string{}},
			},
			Overall: domain.PolicyOverall{RiskScore: 10, Tier: tier, OnAirGateRequired: gateRequired},
			Notes:   []string{},
		},
		ProviderTraces: map[domain.ProviderKind]domain.ProviderTrace{
			domain.ProviderKindText: {ProviderID: "txt-1", ProviderName: "mock-text"},
		},
		Canon: &domain.CanonPacket{
			Universe:   domain.Universe{ID: "u1", Name: "Demo Universe"},
			Characters: []domain.Character{{ID: "c1", Name: "Aree"}},
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

type exportFixture struct {
	assembler *Assembler
	exports   *memExports
	dir       string
}

func newExportFixture(t *testing.T, job *domain.Job) *exportFixture {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}
	jobs := &memJobs{byID: map[string]*domain.Job{}}
	if job != nil {
		jobs.byID[job.ID] = job
	}
	exports := &memExports{byID: map[string]*domain.ProductExport{}}
	templates := NewTemplateRegistry(&memTemplates{templates: []domain.ProductTemplate{
		{ID: "t1", Key: "social-pack", Name: "Social pack", IsActive: true},
	}})
	return &exportFixture{
		assembler: NewAssembler(jobs, exports, templates, store, zerolog.Nop()),
		exports:   exports,
		dir:       dir,
	}
}

func TestExportWritesHashedBundle(t *testing.T) {
	f := newExportFixture(t, succeededJob(false))
	result, err := f.assembler.Export(context.Background(), "job-1", "social-pack", domain.ExportModeDraft)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	if result.Export.Status != domain.ExportStatusCompleted {
		t.Fatalf("status = %s, want completed", result.Export.Status)
	}
	wantPaths := []string{
		"assets/text.json",
		"assets/prompts.json",
		"assets/music.json",
		"marketing/captions.json",
		"licensing/rights.json",
		"licensing/policy.json",
	}
	if len(result.Manifest.Files) != len(wantPaths) {
		t.Fatalf("files = %v", result.Manifest.Files)
	}
	root := filepath.Join(f.dir, "products", result.Export.ID)
	for i, want := range wantPaths {
		entry := result.Manifest.Files[i]
		if entry.Path != want {
			t.Fatalf("files[%d].path = %q, want %q", i, entry.Path, want)
		}
		raw, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(entry.Path)))
		if err != nil {
			t.Fatalf("read %s: %v", entry.Path, err)
		}
		sum := sha256.Sum256(raw)
		if hex.EncodeToString(sum[:]) != entry.Hash {
			t.Fatalf("hash mismatch for %s", entry.Path)
		}
	}

	manifestRaw, err := os.ReadFile(filepath.Join(root, "manifest.json"))
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	if string(manifestRaw) != string(result.Export.ManifestJSON) {
		t.Fatal("persisted manifest differs from the file on disk")
	}
	if result.Manifest.CanonSummary == nil || result.Manifest.CanonSummary.Universe != "Demo Universe" {
		t.Fatalf("canon summary = %+v", result.Manifest.CanonSummary)
	}
}

func TestExportManifestKeysSorted(t *testing.T) {
	f := newExportFixture(t, succeededJob(false))
	result, err := f.assembler.Export(context.Background(), "job-1", "social-pack", domain.ExportModeDraft)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(result.Export.ManifestJSON, &decoded); err != nil {
		t.Fatalf("manifest not valid JSON: %v", err)
	}
	dec := json.NewDecoder(bytes.NewReader(result.Export.ManifestJSON))
	if _, err := dec.Token(); err != nil {
		t.Fatalf("read opening token: %v", err)
	}
	var prev string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			t.Fatalf("read key: %v", err)
		}
		key := tok.(string)
		if prev != "" && key < prev {
			t.Fatalf("top-level keys not sorted: %q after %q", key, prev)
		}
		prev = key
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			t.Fatalf("skip value: %v", err)
		}
	}
}

func TestExportIsIdempotent(t *testing.T) {
	f := newExportFixture(t, succeededJob(false))

	first, err := f.assembler.Export(context.Background(), "job-1", "social-pack", domain.ExportModeDraft)
	if err != nil {
		t.Fatalf("first Export() error: %v", err)
	}
	second, err := f.assembler.Export(context.Background(), "job-1", "social-pack", domain.ExportModeDraft)
	if err != nil {
		t.Fatalf("second Export() error: %v", err)
	}

	if first.Export.ID != second.Export.ID {
		t.Fatalf("product id changed across re-export: %s vs %s", first.Export.ID, second.Export.ID)
	}
	if string(first.Export.ManifestJSON) != string(second.Export.ManifestJSON) {
		t.Fatal("re-export is not byte-identical")
	}
	if f.exports.creates != 1 {
		t.Fatalf("creates = %d, want the record reused", f.exports.creates)
	}

	// A different mode is a distinct product.
	third, err := f.assembler.Export(context.Background(), "job-1", "social-pack", domain.ExportModePublish)
	if err != nil {
		t.Fatalf("publish Export() error: %v", err)
	}
	if third.Export.ID == first.Export.ID {
		t.Fatal("publish export must not reuse the draft record")
	}
}

func TestExportPublishBlockedBeforeWrites(t *testing.T) {
	f := newExportFixture(t, succeededJob(true))
	_, err := f.assembler.Export(context.Background(), "job-1", "social-pack", domain.ExportModePublish)
	if !errors.Is(err, domain.ErrPublishBlocked) {
		t.Fatalf("Export() error = %v, want ErrPublishBlocked", err)
	}

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		t.Fatalf("read export dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("files written despite blocked publish: %v", entries)
	}
	if len(f.exports.byID) != 0 {
		t.Fatal("export record created despite blocked publish")
	}
}

func TestExportDraftAllowedWhileGated(t *testing.T) {
	f := newExportFixture(t, succeededJob(true))
	result, err := f.assembler.Export(context.Background(), "job-1", "social-pack", domain.ExportModeDraft)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	warnings := result.Manifest.PolicySummary.Warnings
	if len(warnings) != 1 || warnings[0] != "Draft mode: Gate required for publish" {
		t.Fatalf("warnings = %v", warnings)
	}
}

func TestExportUnknownJobAndTemplate(t *testing.T) {
	f := newExportFixture(t, succeededJob(false))

	if _, err := f.assembler.Export(context.Background(), "missing", "social-pack", domain.ExportModeDraft); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown job error = %v, want ErrNotFound", err)
	}
	if _, err := f.assembler.Export(context.Background(), "job-1", "missing-template", domain.ExportModeDraft); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown template error = %v, want ErrNotFound", err)
	}
}

func TestTemplateRegistryCaches(t *testing.T) {
	store := &countingTemplates{}
	reg := NewTemplateRegistry(store)

	if _, err := reg.Load(context.Background()); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, err := reg.GetByKey(context.Background(), "social-pack"); err != nil {
		t.Fatalf("GetByKey() error: %v", err)
	}
	if store.calls != 1 {
		t.Fatalf("calls = %d, want 1", store.calls)
	}
	reg.Invalidate()
	if _, err := reg.Load(context.Background()); err != nil {
		t.Fatalf("Load() after invalidate: %v", err)
	}
	if store.calls != 2 {
		t.Fatalf("calls = %d, want 2", store.calls)
	}
}

type countingTemplates struct{ calls int }

func (c *countingTemplates) ListActive(ctx context.Context) ([]domain.ProductTemplate, error) {
	c.calls++
	return []domain.ProductTemplate{{ID: "t1", Key: "social-pack", IsActive: true}}, nil
}
func (c *countingTemplates) Create(ctx context.Context, t *domain.ProductTemplate) error { return nil }
