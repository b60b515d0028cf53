package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

var audioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".aac":  true,
	".flac": true,
	".m4a":  true,
	".ogg":  true,
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".avi":  true,
	".webm": true,
	".m4v":  true,
}

var reFrameName = regexp.MustCompile(`^(.*?)(\d+)(\.[^.]+)$`)

// Sequence is a numbered image sequence found in a directory.
type Sequence struct {
	Dir     string
	Pattern string
	Frames  []string
}

// InputPattern is the value passed to the encoder's -i flag.
func (s Sequence) InputPattern() string {
	return filepath.Join(s.Dir, s.Pattern)
}

func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

func IsAudioSource(name string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(name))]
}

// FramePattern derives a printf-style pattern from the first frame name:
// shot_0007.png becomes shot_%04d.png. Names without a trailing number are
// kept literal, which addresses that single file only. A literal '%' is
// doubled so the pattern expands back to the original names.
func FramePattern(first string) string {
	m := reFrameName.FindStringSubmatch(first)
	if m == nil {
		return escapePercent(first)
	}
	return fmt.Sprintf("%s%%0%dd%s", escapePercent(m[1]), len(m[2]), escapePercent(m[3]))
}

func escapePercent(s string) string {
	return strings.ReplaceAll(s, "%", "%%")
}
