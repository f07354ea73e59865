// Package export assembles hashed product bundles from finished jobs. The
// assembler only repackages persisted job data; it never regenerates content,
// so re-running an export over unchanged job data is byte-for-byte
// reproducible.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"contentforge/internal/domain"
	"contentforge/internal/storage"
)

// Assembler writes export bundles under products/<productId>/ in its store.
type Assembler struct {
	jobs      domain.JobRepository
	exports   domain.ExportRepository
	templates *TemplateRegistry
	store     *storage.FileStore
	logger    zerolog.Logger
}

func NewAssembler(
	jobs domain.JobRepository,
	exports domain.ExportRepository,
	templates *TemplateRegistry,
	store *storage.FileStore,
	logger zerolog.Logger,
) *Assembler {
	return &Assembler{jobs: jobs, exports: exports, templates: templates, store: store, logger: logger}
}

// Result is what an export run hands back to the API layer.
type Result struct {
	Export   *domain.ProductExport
	Manifest *domain.ExportManifest
}

// Export bundles the job's outputs under the given template. Publish mode is
// rejected before anything touches disk when the job's policy gate is set.
// Re-exporting the same (job, template, mode) reuses the earlier product id
// and recomputes every file, so the manifest comes out byte-identical.
func (a *Assembler) Export(ctx context.Context, jobID, templateKey string, mode domain.ExportMode) (*Result, error) {
	if mode != domain.ExportModeDraft && mode != domain.ExportModePublish {
		return nil, fmt.Errorf("%w: unknown export mode %q", domain.ErrInvalidRequest, mode)
	}

	job, err := a.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("load job %s: %w", jobID, err)
	}
	if mode == domain.ExportModePublish && job.GateRequired() {
		return nil, fmt.Errorf("%w (job %s)", domain.ErrPublishBlocked, jobID)
	}

	template, err := a.templates.GetByKey(ctx, templateKey)
	if err != nil {
		return nil, err
	}

	record, err := a.findOrCreateRecord(ctx, job, template.Key, mode)
	if err != nil {
		return nil, err
	}

	manifest, manifestRaw, err := a.writeBundle(ctx, job, record, mode)
	if err != nil {
		return nil, err
	}

	record.Status = domain.ExportStatusCompleted
	record.ExportPath = "products/" + record.ID
	record.ManifestJSON = manifestRaw
	record.UpdatedAt = time.Now().UTC()
	if err := a.exports.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("persist export %s: %w", record.ID, err)
	}

	a.logger.Info().
		Str("product_id", record.ID).
		Str("job_id", job.ID).
		Str("mode", string(mode)).
		Int("files", len(manifest.Files)).
		Msg("export completed")
	return &Result{Export: record, Manifest: manifest}, nil
}

// findOrCreateRecord reuses an earlier export of the same job/template/mode so
// product ids are stable across re-runs.
func (a *Assembler) findOrCreateRecord(ctx context.Context, job *domain.Job, templateKey string, mode domain.ExportMode) (*domain.ProductExport, error) {
	existing, err := a.exports.FindByJobTemplateMode(ctx, job.ID, templateKey, mode)
	if err == nil && existing != nil {
		return existing, nil
	}
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("look up existing export: %w", err)
	}

	now := time.Now().UTC()
	record := &domain.ProductExport{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		TemplateKey: templateKey,
		Mode:        mode,
		Status:      domain.ExportStatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := a.exports.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create export record: %w", err)
	}
	return record, nil
}

func (a *Assembler) writeBundle(ctx context.Context, job *domain.Job, record *domain.ProductExport, mode domain.ExportMode) (*domain.ExportManifest, []byte, error) {
	outputs := job.Outputs
	if outputs == nil {
		outputs = &domain.GeneratedBundle{}
	}

	var overall domain.PolicyOverall
	var platformTrace map[domain.Platform]domain.PlatformPolicyResult
	var notes []string
	if job.Policy != nil {
		overall = job.Policy.Overall
		platformTrace = job.Policy.Platform
		notes = job.Policy.Notes
	} else {
		overall.Tier = domain.RiskTierUnknown
	}

	prefix := "products/" + record.ID + "/"
	var files []domain.ManifestFile
	writeJSON := func(relPath string, payload any) error {
		raw, err := canonicalJSON(payload)
		if err != nil {
			return fmt.Errorf("encode %s: %w", relPath, err)
		}
		_, hash, err := a.store.Write(ctx, prefix+relPath, raw)
		if err != nil {
			return fmt.Errorf("write %s: %w", relPath, err)
		}
		files = append(files, domain.ManifestFile{Path: relPath, Hash: hash})
		return nil
	}

	if err := writeJSON("assets/text.json", map[string]any{
		"caption": outputs.Caption,
	}); err != nil {
		return nil, nil, err
	}
	if err := writeJSON("assets/prompts.json", map[string]any{
		"image_prompt": outputs.ImagePrompt,
		"shotlist":     outputs.Shotlist,
	}); err != nil {
		return nil, nil, err
	}
	if err := writeJSON("assets/music.json", map[string]any{
		"music": outputs.Music,
	}); err != nil {
		return nil, nil, err
	}
	if err := writeJSON("marketing/captions.json", map[string]any{
		"platforms":    outputs.Platforms,
		"video_script": outputs.VideoScript,
	}); err != nil {
		return nil, nil, err
	}
	if err := writeJSON("licensing/rights.json", map[string]any{
		"jobId":     job.ID,
		"createdAt": job.CreatedAt.UTC().Format(time.RFC3339),
		"template":  record.TemplateKey,
		"mode":      mode,
		"policyGate": map[string]any{
			"tier":         overall.Tier,
			"gateRequired": overall.OnAirGateRequired,
		},
	}); err != nil {
		return nil, nil, err
	}
	if err := writeJSON("licensing/policy.json", map[string]any{
		"summary":  overall,
		"platform": platformTrace,
		"warnings": notes,
	}); err != nil {
		return nil, nil, err
	}

	manifest := &domain.ExportManifest{
		ProductID:      record.ID,
		JobID:          job.ID,
		TemplateKey:    record.TemplateKey,
		Mode:           mode,
		ProviderTraces: job.ProviderTraces,
		PolicySummary: domain.PolicySummary{
			Tier:         overall.Tier,
			GateRequired: overall.OnAirGateRequired,
			Warnings:     draftGateWarnings(mode, overall.OnAirGateRequired),
		},
		CanonSummary: canonSummary(job.Canon),
		Files:        files,
	}

	manifestRaw, err := canonicalJSON(manifest)
	if err != nil {
		return nil, nil, fmt.Errorf("encode manifest: %w", err)
	}
	if _, _, err := a.store.Write(ctx, prefix+"manifest.json", manifestRaw); err != nil {
		return nil, nil, fmt.Errorf("write manifest: %w", err)
	}
	return manifest, manifestRaw, nil
}

// canonicalJSON serializes with recursively sorted object keys: the value is
// marshalled, decoded into generic maps, and re-marshalled. encoding/json
// emits map keys in sorted order, so insertion order never leaks into bytes.
func canonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return json.MarshalIndent(generic, "", "  ")
}

func draftGateWarnings(mode domain.ExportMode, gateRequired bool) []string {
	if mode == domain.ExportModeDraft && gateRequired {
		return []string{"Draft mode: Gate required for publish"}
	}
	return []string{}
}

func canonSummary(packet *domain.CanonPacket) *domain.CanonSummary {
	if packet == nil {
		return nil
	}
	names := make([]string, 0, len(packet.Characters))
	for _, c := range packet.Characters {
		names = append(names, c.Name)
	}
	return &domain.CanonSummary{Universe: packet.Universe.Name, Characters: names}
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
