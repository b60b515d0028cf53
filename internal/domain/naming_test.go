package domain

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeOutputName(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		take   Take
		task   string
		ext    string
		want   string
	}{
		{name: "default task code", folder: "ShotA", take: 2, task: "", ext: "mp4", want: "ShotA_tk02_TASK.mp4"},
		{name: "blank task code", folder: "ShotA", take: 2, task: "   ", ext: "mp4", want: "ShotA_tk02_TASK.mp4"},
		{name: "explicit task code", folder: "sh010", take: 1, task: "COMP", ext: "mov", want: "sh010_tk01_COMP.mov"},
		{name: "three digit take", folder: "sh010", take: 100, task: "FX", ext: "mov", want: "sh010_tk100_FX.mov"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposeOutputName(tt.folder, tt.take, tt.task, tt.ext))
		})
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("/renders", "/shots/ShotA/", 3, "ACO", "mp4")
	assert.Equal(t, filepath.Join("/renders", "ShotA_tk03_ACO.mp4"), got)
}

func TestComposeOutputName_UnsafeTaskCode(t *testing.T) {
	tests := []struct {
		name string
		task string
		want string
	}{
		{name: "forward slash", task: "COMP/v2", want: "ShotA_tk01_COMP_v2.mp4"},
		{name: "path traversal", task: "../../etc", want: "ShotA_tk01_.._.._etc.mp4"},
		{name: "backslash", task: `LAY\1`, want: "ShotA_tk01_LAY_1.mp4"},
		{name: "other punctuation kept", task: `A:B*C?`, want: "ShotA_tk01_A:B*C?.mp4"},
		{name: "unicode kept", task: "ÉTALONNAGE", want: "ShotA_tk01_ÉTALONNAGE.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposeOutputName("ShotA", 1, tt.task, "mp4"))
		})
	}
}

func TestComposeOutputName_LongNamesKept(t *testing.T) {
	folder := strings.Repeat("s", 300)
	got := ComposeOutputName(folder, 1, "TASK", "mov")
	assert.Equal(t, folder+"_tk01_TASK.mov", got)
}
