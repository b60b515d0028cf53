package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

const DefaultTaskCode = "TASK"

// ComposeOutputName returns {folder}_{take}_{task}.{ext}. A blank task code
// becomes TASK; path separators in it become underscores.
func ComposeOutputName(folderBase string, take Take, taskCode, ext string) string {
	task := strings.TrimSpace(taskCode)
	if task == "" {
		task = DefaultTaskCode
	}
	return fmt.Sprintf("%s_%s_%s.%s", folderBase, take, sanitizeNamePart(task), ext)
}

// FolderBase is the name used for a sequence folder in output filenames.
func FolderBase(folder string) string {
	return filepath.Base(filepath.Clean(folder))
}

func OutputPath(outputDir, folder string, take Take, taskCode, ext string) string {
	return filepath.Join(outputDir, ComposeOutputName(FolderBase(folder), take, taskCode, ext))
}
