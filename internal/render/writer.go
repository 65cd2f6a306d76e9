package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
)

// WriteDocument writes rendered content to outputRoot/relativePath and
// returns the full path. The write is atomic (temp file, then replace), so
// a failed generation never leaves a partial document behind. Parent
// directories are created as needed; the path must stay under outputRoot.
func WriteDocument(outputRoot, relativePath, content string) (string, error) {
	if outputRoot == "" {
		return "", pkgerrors.ConfigError("output root is required")
	}
	if relativePath == "" {
		return "", pkgerrors.ConfigError("output path is required")
	}

	cleanRel := filepath.Clean(relativePath)
	if filepath.IsAbs(cleanRel) || strings.HasPrefix(cleanRel, "..") {
		return "", pkgerrors.ConfigError("output path must be relative to the output root")
	}

	fullPath := filepath.Join(outputRoot, cleanRel)
	rel, err := filepath.Rel(outputRoot, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", pkgerrors.ConfigError("output path escapes the output root")
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", pkgerrors.FileWriteError(err, "create output directory")
	}
	if err := atomic.WriteFile(fullPath, strings.NewReader(content)); err != nil {
		return "", pkgerrors.FileWriteError(err, "write document")
	}
	return fullPath, nil
}
