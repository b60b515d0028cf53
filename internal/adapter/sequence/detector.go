// Package sequence finds numbered image sequences on disk.
package sequence

import (
	"fmt"
	"os"
	"sort"

	"github.com/sadalchemist/alchemist/internal/domain"
	"github.com/sadalchemist/alchemist/internal/port"
)

type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect lists the image files directly inside dir, sorts them by name and
// derives the encoder input pattern from the first one. The sort is plain
// lexicographic, which matches frame order only for equal-width numbering.
func (d *Detector) Detect(dir string) (domain.Sequence, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.Sequence{}, fmt.Errorf("read sequence folder: %w", err)
	}

	var frames []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if domain.IsImageFile(e.Name()) {
			frames = append(frames, e.Name())
		}
	}
	if len(frames) == 0 {
		return domain.Sequence{}, domain.ErrEmptySequence
	}
	sort.Strings(frames)

	return domain.Sequence{
		Dir:     dir,
		Pattern: domain.FramePattern(frames[0]),
		Frames:  frames,
	}, nil
}

var _ port.SequenceDetector = (*Detector)(nil)
