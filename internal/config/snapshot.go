package config

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Snapshot computes a stable hash of the generation-affecting fields.
// Watch mode compares snapshots to skip rebuilds when a config reload
// changed nothing that influences output.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) {
		h.Write([]byte(strings.Join(parts, "=")))
		h.Write([]byte{0})
	}
	w("dataset", c.Dataset)
	w("templates_dir", c.TemplatesDir)
	w("assets_dir", c.AssetsDir)
	w("output_dir", c.OutputDir)
	w("root_style", c.RootStyle)
	w("history.enabled", strconv.FormatBool(c.History.Enabled))
	w("history.path", c.History.Path)
	return hex.EncodeToString(h.Sum(nil))
}
