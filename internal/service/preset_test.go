package service

import (
	"context"
	"testing"

	"github.com/sadalchemist/alchemist/internal/domain"
	"github.com/sadalchemist/alchemist/internal/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPresetResolver_Resolve(t *testing.T) {
	tests := []struct {
		name   string
		preset domain.Preset
		hw     domain.HWAccel
		gpu    bool
		probed bool
		want   domain.EncoderPlan
	}{
		{
			name:   "preview on cpu",
			preset: domain.PresetPreviewH264,
			hw:     domain.HWAccelCPU,
			want:   domain.EncoderPlan{Extension: "mp4", Codec: "libx264", CodecArgs: []string{"-b:v", "25M"}},
		},
		{
			name:   "preview on gpu without verification",
			preset: domain.PresetPreviewH264,
			hw:     domain.HWAccelGPU,
			want:   domain.EncoderPlan{Extension: "mp4", Codec: "h264_nvenc", CodecArgs: []string{"-b:v", "25M"}},
		},
		{
			name:   "preview auto with nvenc present",
			preset: domain.PresetPreviewH264,
			hw:     domain.HWAccelAuto,
			gpu:    true,
			probed: true,
			want:   domain.EncoderPlan{Extension: "mp4", Codec: "h264_nvenc", CodecArgs: []string{"-b:v", "25M"}},
		},
		{
			name:   "preview auto without nvenc",
			preset: domain.PresetPreviewH264,
			hw:     domain.HWAccelAuto,
			probed: true,
			want:   domain.EncoderPlan{Extension: "mp4", Codec: "libx264", CodecArgs: []string{"-b:v", "25M"}},
		},
		{
			name:   "prores proxy",
			preset: domain.PresetProResProxy,
			hw:     domain.HWAccelAuto,
			want:   domain.EncoderPlan{Extension: "mov", Codec: "prores_ks", CodecArgs: []string{"-profile:v", "0"}},
		},
		{
			name:   "prores standard",
			preset: domain.PresetProResStandard,
			hw:     domain.HWAccelCPU,
			want:   domain.EncoderPlan{Extension: "mov", Codec: "prores_ks", CodecArgs: []string{"-profile:v", "3"}},
		},
		{
			name:   "unknown preset falls back",
			preset: domain.Preset("webm-vp9"),
			hw:     domain.HWAccelGPU,
			want:   domain.EncoderPlan{Extension: "mp4", Codec: "libx264"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := mocks.NewEncoderCapabilitiesMock(t)
			if tt.probed {
				caps.EXPECT().HasEncoder(mock.Anything, "h264_nvenc").Return(tt.gpu).Once()
			}

			got := NewPresetResolver(caps, true).Resolve(context.Background(), tt.preset, tt.hw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresetResolver_ProResIgnoresHardwareMode(t *testing.T) {
	caps := mocks.NewEncoderCapabilitiesMock(t)
	r := NewPresetResolver(caps, true)

	for _, hw := range []domain.HWAccel{domain.HWAccelAuto, domain.HWAccelGPU, domain.HWAccelCPU} {
		plan := r.Resolve(context.Background(), domain.PresetProResStandard, hw)
		assert.Equal(t, "prores_ks", plan.Codec, hw)
		assert.Equal(t, "mov", plan.Extension, hw)
	}
	caps.AssertNotCalled(t, "HasEncoder", mock.Anything, mock.Anything)
}

func TestPresetResolver_ProbeCache(t *testing.T) {
	t.Run("probe once until reset", func(t *testing.T) {
		caps := mocks.NewEncoderCapabilitiesMock(t)
		caps.EXPECT().HasEncoder(mock.Anything, "h264_nvenc").Return(true).Twice()
		r := NewPresetResolver(caps, true)

		for i := 0; i < 3; i++ {
			assert.Equal(t, "h264_nvenc", r.Resolve(context.Background(), domain.PresetPreviewH264, domain.HWAccelAuto).Codec)
		}
		r.ResetCache()
		assert.Equal(t, "h264_nvenc", r.Resolve(context.Background(), domain.PresetPreviewH264, domain.HWAccelAuto).Codec)
	})

	t.Run("probe every time when caching is off", func(t *testing.T) {
		caps := mocks.NewEncoderCapabilitiesMock(t)
		caps.EXPECT().HasEncoder(mock.Anything, "h264_nvenc").Return(false).Times(3)
		r := NewPresetResolver(caps, false)

		for i := 0; i < 3; i++ {
			assert.Equal(t, "libx264", r.Resolve(context.Background(), domain.PresetPreviewH264, domain.HWAccelAuto).Codec)
		}
	})
}
