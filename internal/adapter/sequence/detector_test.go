package sequence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sadalchemist/alchemist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0644))
	}
}

func TestDetector_Detect(t *testing.T) {
	t.Run("ten frame sequence", func(t *testing.T) {
		dir := t.TempDir()
		for i := 10; i >= 1; i-- {
			touch(t, dir, fmt.Sprintf("shot_%03d.png", i))
		}

		seq, err := NewDetector().Detect(dir)

		require.NoError(t, err)
		assert.Equal(t, "shot_%03d.png", seq.Pattern)
		assert.Equal(t, dir, seq.Dir)
		require.Len(t, seq.Frames, 10)
		for i, name := range seq.Frames {
			assert.Equal(t, fmt.Sprintf("shot_%03d.png", i+1), name)
			assert.Equal(t, name, fmt.Sprintf(seq.Pattern, i+1))
		}
	})

	t.Run("ignores non images and subdirectories", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "notes.txt", "plate_0002.JPG", "plate_0001.jpg", "thumbs.db")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub_0000.png"), 0755))

		seq, err := NewDetector().Detect(dir)

		require.NoError(t, err)
		assert.Equal(t, []string{"plate_0001.jpg", "plate_0002.JPG"}, seq.Frames)
		assert.Equal(t, "plate_%04d.jpg", seq.Pattern)
	})

	t.Run("no trailing number falls back to literal name", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "poster.tif")

		seq, err := NewDetector().Detect(dir)

		require.NoError(t, err)
		assert.Equal(t, "poster.tif", seq.Pattern)
		assert.Equal(t, filepath.Join(dir, "poster.tif"), seq.InputPattern())
	})

	t.Run("mixed width numbering keeps lexicographic order", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "f9.png", "f10.png")

		seq, err := NewDetector().Detect(dir)

		require.NoError(t, err)
		assert.Equal(t, []string{"f10.png", "f9.png"}, seq.Frames)
		assert.Equal(t, "f%02d.png", seq.Pattern)
	})

	t.Run("empty folder", func(t *testing.T) {
		_, err := NewDetector().Detect(t.TempDir())
		assert.True(t, errors.Is(err, domain.ErrEmptySequence))
	})

	t.Run("folder with only non images", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "a.exr", "b.txt")

		_, err := NewDetector().Detect(dir)
		assert.ErrorIs(t, err, domain.ErrEmptySequence)
	})

	t.Run("missing folder", func(t *testing.T) {
		_, err := NewDetector().Detect(filepath.Join(t.TempDir(), "gone"))
		assert.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrEmptySequence))
	})
}
