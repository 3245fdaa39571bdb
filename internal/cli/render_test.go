package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/staircast/staircast/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,png,stl", []string{"svg", "png", "stl"}},
		{"obj only", "obj", []string{"obj"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"no output strips input ext", "", "stairs.toml", "stairs"},
		{"no output keeps input dir", "", "specs/loft.json", "specs/loft"},
		{"output with format ext stripped", "out.svg", "stairs.toml", "out"},
		{"output with mesh ext stripped", "mesh.stl", "stairs.toml", "mesh"},
		{"output with foreign ext kept", "drawing.final", "stairs.toml", "drawing.final"},
		{"output without ext kept", "drawing", "stairs.toml", "drawing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifactsSingle(t *testing.T) {
	tmp := t.TempDir()
	input := filepath.Join(tmp, "stairs.toml")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>")},
		formats:   []string{"svg"},
		input:     input,
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "stairs.svg"))
	if err != nil {
		t.Fatalf("expected artifact next to the input: %v", err)
	}
	if !bytes.Equal(data, []byte("<svg/>")) {
		t.Errorf("artifact content = %q", data)
	}
}

func TestWriteArtifactsSingleExplicitOutput(t *testing.T) {
	tmp := t.TempDir()
	out := filepath.Join(tmp, "drawing.svg")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>")},
		formats:   []string{"svg"},
		input:     "stairs.toml",
		output:    out,
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("single format should honor --output exactly: %v", err)
	}
}

func TestWriteArtifactsMultiple(t *testing.T) {
	tmp := t.TempDir()

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{
			"svg": []byte("<svg/>"),
			"stl": []byte("binary"),
		},
		formats: []string{"svg", "stl"},
		input:   "stairs.toml",
		output:  filepath.Join(tmp, "loft.svg"),
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	// The format extension on --output is stripped and one file per
	// format is written off the base.
	for _, name := range []string{"loft.svg", "loft.stl"} {
		if _, err := os.Stat(filepath.Join(tmp, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestWriteArtifactsMissingFormat(t *testing.T) {
	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>")},
		formats:   []string{"png", "svg"},
		input:     filepath.Join(t.TempDir(), "stairs.toml"),
	})
	if err == nil {
		t.Fatal("expected an error for a format with no artifact")
	}
}

func TestRenderCommandRejectsUnknownFormat(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cmd := c.renderCommand()
	cmd.SetArgs([]string{"stairs.toml", "-f", "docx"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an invalid format error")
	}
}

func TestDefaultConstants(t *testing.T) {
	if pipeline.DefaultWidth != 1000 {
		t.Errorf("pipeline.DefaultWidth = %v, want 1000", pipeline.DefaultWidth)
	}
	if pipeline.DefaultHeight != 700 {
		t.Errorf("pipeline.DefaultHeight = %v, want 700", pipeline.DefaultHeight)
	}
	if pipeline.DefaultTheme != "simple" {
		t.Errorf("pipeline.DefaultTheme = %q, want simple", pipeline.DefaultTheme)
	}
}
