package generator

import (
	"fmt"

	"contentforge/internal/domain"
)

// Run dispatches to the generator for the given asset kind.
func Run(kind domain.ProviderKind, in domain.GenerateInput) (*domain.GeneratedBundle, error) {
	switch kind {
	case domain.ProviderKindText:
		return Text(in), nil
	case domain.ProviderKindImage:
		return Image(in), nil
	case domain.ProviderKindVideo:
		return Video(in), nil
	case domain.ProviderKindMusic:
		return Music(in), nil
	default:
		return nil, fmt.Errorf("%w: unsupported asset kind %q", domain.ErrInvalidRequest, kind)
	}
}

// Merge folds src into dst. Later kinds win on the shared video_script and
// shotlist slots (the dedicated generators produce richer variants than the
// sketches bundled with text output).
func Merge(dst, src *domain.GeneratedBundle) {
	if src == nil {
		return
	}
	if src.Caption != "" {
		dst.Caption = src.Caption
	}
	if len(src.Platforms) > 0 {
		dst.Platforms = src.Platforms
	}
	if src.VideoScript != nil {
		dst.VideoScript = src.VideoScript
	}
	if src.ImagePrompt != nil {
		dst.ImagePrompt = src.ImagePrompt
	}
	if len(src.Shotlist) > 0 {
		dst.Shotlist = src.Shotlist
	}
	if src.Music != nil {
		dst.Music = src.Music
	}
	if src.Meta.DeterministicSeed != "" {
		dst.Meta.DeterministicSeed = src.Meta.DeterministicSeed
	}
}
