package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/staircast/staircast/pkg/errors"
)

const checkSpecTOML = `total_height = 280.0
width = 100.0
num_steps = 14
step_depth = 25.0
slab_thickness = 18.0
`

func TestRunCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stairs.toml")
	if err := os.WriteFile(path, []byte(checkSpecTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	if err := c.runCheck(path); err != nil {
		t.Fatalf("runCheck on a valid spec: %v", err)
	}
}

func TestRunCheckInvalidSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stairs.toml")
	bad := strings.Replace(checkSpecTOML, "num_steps = 14", "num_steps = 0", 1)
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	err := c.runCheck(path)
	if !errors.Is(err, errors.ErrCodeInvalidSpec) {
		t.Fatalf("runCheck on zero steps = %v, want INVALID_SPEC", err)
	}
}

func TestRunCheckMissingFile(t *testing.T) {
	c := New(io.Discard, LogInfo)
	err := c.runCheck(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("runCheck on a missing file = %v, want FILE_NOT_FOUND", err)
	}
}

func TestComfortTable(t *testing.T) {
	rows := []comfortRow{
		{name: "Riser height", value: "20.0 cm", comfort: "15–19 cm", ok: false},
		{name: "Tread depth", value: "25.0 cm", comfort: "23–30 cm", ok: true},
	}
	out := comfortTable(rows)

	for _, want := range []string{"Measure", "Riser height", "Tread depth", "25.0 cm"} {
		if !strings.Contains(out, want) {
			t.Errorf("comfort table is missing %q", want)
		}
	}
	if !strings.Contains(out, iconWarning) {
		t.Error("out-of-range rows should carry the warning icon")
	}
	if !strings.Contains(out, iconSuccess) {
		t.Error("in-range rows should carry the success icon")
	}
}
