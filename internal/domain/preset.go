package domain

import (
	"fmt"
	"strings"
)

type Preset string

const (
	PresetPreviewH264    Preset = "preview-h264"
	PresetProResProxy    Preset = "prores-proxy"
	PresetProResStandard Preset = "prores-standard"
)

// Presets lists the supported presets in display order.
var Presets = []Preset{PresetPreviewH264, PresetProResProxy, PresetProResStandard}

var presetLabels = map[Preset]string{
	PresetPreviewH264:    "Preview MP4 - H.264 25Mbps",
	PresetProResProxy:    "ProRes MOV - 422 Proxy",
	PresetProResStandard: "ProRes MOV - 422 Standard",
}

// ParsePreset accepts the canonical id, its CamelCase form or the display
// label. Anything else is kept verbatim and resolves to the H.264 CPU
// fallback at encode time.
func ParsePreset(s string) Preset {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Presets {
		compact := strings.ReplaceAll(string(p), "-", "")
		if key == string(p) || key == compact || key == strings.ToLower(presetLabels[p]) {
			return p
		}
	}
	return Preset(strings.TrimSpace(s))
}

func (p Preset) Label() string {
	if l, ok := presetLabels[p]; ok {
		return l
	}
	return string(p)
}

// Extension is the container extension for the preset, independent of
// hardware acceleration.
func (p Preset) Extension() string {
	switch p {
	case PresetProResProxy, PresetProResStandard:
		return "mov"
	default:
		return "mp4"
	}
}

type HWAccel string

const (
	HWAccelAuto HWAccel = "auto"
	HWAccelGPU  HWAccel = "gpu"
	HWAccelCPU  HWAccel = "cpu"
)

func ParseHWAccel(s string) (HWAccel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "auto-detect":
		return HWAccelAuto, nil
	case "gpu", "nvenc", "nvidia", "h264_nvenc":
		return HWAccelGPU, nil
	case "cpu", "libx264":
		return HWAccelCPU, nil
	default:
		return "", fmt.Errorf("unknown hardware acceleration mode %q", s)
	}
}

const (
	CodecH264CPU = "libx264"
	CodecH264GPU = "h264_nvenc"
	CodecProRes  = "prores_ks"
)

// EncoderPlan is the encoder selection for one job.
type EncoderPlan struct {
	Extension string
	Codec     string
	CodecArgs []string
}
