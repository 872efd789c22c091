package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkessel/cumulus/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,png", []string{"svg", "png"}},
		{"svg,png,pdf,json,dot", []string{"svg", "png", "pdf", "json", "dot"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	want := filepath.Join("/tmp/xdg-test", appName)
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirFallback(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if !strings.HasSuffix(dir, filepath.Join(".cache", appName)) {
		t.Errorf("cacheDir() = %q, want ~/.cache/%s", dir, appName)
	}
}

func TestApplyInput(t *testing.T) {
	tests := []struct {
		name     string
		opts     pipeline.Options
		args     []string
		wantErr  bool
		wantPath string
	}{
		{
			name:    "no args no manifest",
			wantErr: true,
		},
		{
			name: "manifest only",
			opts: pipeline.Options{Manifest: "cloud.toml"},
		},
		{
			name:    "arg and manifest conflict",
			opts:    pipeline.Options{Manifest: "cloud.toml"},
			args:    []string{"speech.txt"},
			wantErr: true,
		},
		{
			name:     "file argument",
			args:     []string{"speech.txt"},
			wantPath: "speech.txt",
		},
		{
			name:     "url argument",
			args:     []string{"https://example.com/speech.txt"},
			wantPath: "https://example.com/speech.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := applyInput(&tt.opts, tt.args, strings.NewReader(""))
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.opts.InputPath != tt.wantPath {
				t.Errorf("InputPath = %q, want %q", tt.opts.InputPath, tt.wantPath)
			}
		})
	}
}

func TestApplyInputStdin(t *testing.T) {
	var opts pipeline.Options
	if err := applyInput(&opts, []string{"-"}, strings.NewReader("cloud rain sun")); err != nil {
		t.Fatalf("applyInput() error: %v", err)
	}
	if opts.Text != "cloud rain sun" {
		t.Errorf("Text = %q, want piped input", opts.Text)
	}
	if opts.InputPath != "" {
		t.Errorf("InputPath = %q, want empty", opts.InputPath)
	}
}

func TestInputBase(t *testing.T) {
	tests := []struct {
		name string
		opts pipeline.Options
		want string
	}{
		{name: "from input path", opts: pipeline.Options{InputPath: "speech.txt"}, want: "speech"},
		{name: "from manifest", opts: pipeline.Options{Manifest: "my/cloud.toml"}, want: "my/cloud"},
		{name: "from text", opts: pipeline.Options{Text: "hello"}, want: "cloud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inputBase(tt.opts); got != tt.want {
				t.Errorf("inputBase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatExt(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"svg", "svg"},
		{"png", "png"},
		{"dot", "dot"},
		{"graph", "graph.svg"},
	}

	for _, tt := range tests {
		if got := formatExt(tt.format); got != tt.want {
			t.Errorf("formatExt(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestStripFormatExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"cloud.svg", "cloud"},
		{"cloud.png", "cloud"},
		{"cloud.layout.json", "cloud.layout"},
		{"my.cloud", "my.cloud"},
		{"cloud", "cloud"},
	}

	for _, tt := range tests {
		if got := stripFormatExt(tt.path); got != tt.want {
			t.Errorf("stripFormatExt(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{
		"svg": []byte("<svg/>"),
		"png": []byte{0x89, 0x50},
	}

	base := filepath.Join(dir, "cloud")
	if err := writeArtifacts(artifacts, []string{"svg", "png"}, "", base); err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	for _, name := range []string{"cloud.svg", "cloud.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestWriteArtifactsExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{"svg": []byte("<svg/>")}

	out := filepath.Join(dir, "result.svg")
	if err := writeArtifacts(artifacts, []string{"svg"}, out, "ignored"); err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected output at %s: %v", out, err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("output content = %q", data)
	}
}

func TestRootCommand(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	if root.Use != "cumulus" {
		t.Errorf("Use = %q, want cumulus", root.Use)
	}

	want := []string{"generate", "words", "layout", "visualize", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing %q subcommand", name)
		}
	}
}
