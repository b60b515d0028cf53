package service

import (
	"context"
	"sync"

	"github.com/sadalchemist/alchemist/internal/domain"
	"github.com/sadalchemist/alchemist/internal/infrastructure/logger"
	"github.com/sadalchemist/alchemist/internal/port"
)

// PresetResolver turns a preset and hardware mode into an EncoderPlan.
type PresetResolver struct {
	caps      port.EncoderCapabilities
	probeOnce bool

	mu        sync.Mutex
	gpuCached *bool
}

// NewPresetResolver returns a resolver. With probeOnce set, the GPU encoder
// probe runs at most once until ResetCache is called.
func NewPresetResolver(caps port.EncoderCapabilities, probeOnce bool) *PresetResolver {
	return &PresetResolver{caps: caps, probeOnce: probeOnce}
}

func (r *PresetResolver) Resolve(ctx context.Context, preset domain.Preset, hw domain.HWAccel) domain.EncoderPlan {
	switch preset {
	case domain.PresetProResProxy:
		return domain.EncoderPlan{Extension: "mov", Codec: domain.CodecProRes, CodecArgs: []string{"-profile:v", "0"}}
	case domain.PresetProResStandard:
		return domain.EncoderPlan{Extension: "mov", Codec: domain.CodecProRes, CodecArgs: []string{"-profile:v", "3"}}
	case domain.PresetPreviewH264:
		codec := domain.CodecH264CPU
		if r.useGPU(ctx, hw) {
			codec = domain.CodecH264GPU
		}
		return domain.EncoderPlan{Extension: "mp4", Codec: codec, CodecArgs: []string{"-b:v", "25M"}}
	default:
		logger.Warnf("unknown preset %q, falling back to %s", preset, domain.CodecH264CPU)
		return domain.EncoderPlan{Extension: "mp4", Codec: domain.CodecH264CPU}
	}
}

// ResetCache forgets the probed GPU availability.
func (r *PresetResolver) ResetCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gpuCached = nil
}

func (r *PresetResolver) useGPU(ctx context.Context, hw domain.HWAccel) bool {
	switch hw {
	case domain.HWAccelGPU:
		return true
	case domain.HWAccelCPU:
		return false
	default:
		return r.gpuAvailable(ctx)
	}
}

func (r *PresetResolver) gpuAvailable(ctx context.Context) bool {
	if !r.probeOnce {
		return r.caps.HasEncoder(ctx, domain.CodecH264GPU)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gpuCached == nil {
		ok := r.caps.HasEncoder(ctx, domain.CodecH264GPU)
		logger.Debugf("GPU encoder %s available: %t", domain.CodecH264GPU, ok)
		r.gpuCached = &ok
	}
	return *r.gpuCached
}
