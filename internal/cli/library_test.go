package cli

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/staircast/staircast/pkg/errors"
	"github.com/staircast/staircast/pkg/library"
	"github.com/staircast/staircast/pkg/spec"
)

func TestShortID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"2b1c8a3e-0f4d-4c1a-9b1e-6d2f8a3c5e7b", "2b1c8a3e"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shortID(tt.id); got != tt.want {
			t.Errorf("shortID(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestDesignBasePath(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Loft Stairs", "loft-stairs"},
		{"A/B:C", "abc"},
		{"basement_v2", "basement-v2"},
		{"", "design"},
		{"日本語", "design"},
	}
	for _, tt := range tests {
		if got := designBasePath(tt.name); got != tt.want {
			t.Errorf("designBasePath(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-48 * time.Hour), "2d ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelativeTime(tt.t); got != tt.want {
				t.Errorf("formatRelativeTime = %q, want %q", got, tt.want)
			}
		})
	}

	// Anything older than a week falls back to the date
	old := now.Add(-30 * 24 * time.Hour)
	if got := formatRelativeTime(old); got != old.Format("Jan 2, 2006") {
		t.Errorf("formatRelativeTime(old) = %q, want a date", got)
	}
}

func TestFindDesign(t *testing.T) {
	ctx := context.Background()
	store, err := library.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	alpha, err := library.New("Alpha", "", spec.Default())
	if err != nil {
		t.Fatal(err)
	}
	beta, err := library.New("Beta", "", spec.Default())
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range []*library.Design{alpha, beta} {
		if err := store.Put(ctx, d); err != nil {
			t.Fatal(err)
		}
	}

	c := New(io.Discard, LogInfo)

	got, err := c.findDesign(ctx, store, alpha.ID)
	if err != nil || got.ID != alpha.ID {
		t.Errorf("findDesign by full id = %v, %v", got, err)
	}

	got, err = c.findDesign(ctx, store, shortID(beta.ID))
	if err != nil || got.ID != beta.ID {
		t.Errorf("findDesign by prefix = %v, %v", got, err)
	}

	got, err = c.findDesign(ctx, store, "Alpha")
	if err != nil || got.ID != alpha.ID {
		t.Errorf("findDesign by name = %v, %v", got, err)
	}

	if _, err := c.findDesign(ctx, store, "no-such-design"); !errors.Is(err, errors.ErrCodeDesignNotFound) {
		t.Errorf("unknown ref should report DESIGN_NOT_FOUND, got %v", err)
	}

	// The empty ref prefixes every design and must be rejected as ambiguous
	if _, err := c.findDesign(ctx, store, ""); err == nil {
		t.Error("ambiguous ref should error")
	}
}
