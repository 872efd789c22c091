package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// writeArtifacts writes rendered artifacts to disk. With a single format the
// output path is used as-is (or derived from base); with several formats each
// artifact gets its own extension on the base path.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, base string) error {
	if output != "" {
		base = stripFormatExt(output)
	}

	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}

		path := base + "." + formatExt(format)
		if output != "" && len(formats) == 1 && filepath.Ext(output) != "" {
			path = output
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// formatExt returns the file extension for a format. The graph format is
// Graphviz-rendered SVG, so its files keep an svg suffix.
func formatExt(format string) string {
	if format == "graph" {
		return "graph.svg"
	}
	return format
}

// stripFormatExt removes a known format extension from a path, leaving other
// extensions intact so "my.cloud" stays "my.cloud".
func stripFormatExt(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "svg" || ext == "png" || ext == "pdf" || ext == "json" || ext == "dot" {
		return strings.TrimSuffix(path, "."+ext)
	}
	return path
}
