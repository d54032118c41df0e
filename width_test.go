package lineprogress

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFixedWidth(t *testing.T) {
	if got := FixedWidth(132).Width(); got != 132 {
		t.Errorf("FixedWidth(132).Width() = %d", got)
	}
}

func TestWidthFunc(t *testing.T) {
	calls := 0
	p := WidthFunc(func() int {
		calls++
		return 100 + calls
	})

	if got := p.Width(); got != 101 {
		t.Errorf("first Width() = %d, want 101", got)
	}
	if got := p.Width(); got != 102 {
		t.Errorf("second Width() = %d, want 102", got)
	}
}

func tempFile(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })

	return f
}

func TestTerminalWidthFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		columns string
		want    int
	}{
		{"unset", "", 0},
		{"from environment", "120", 120},
		{"garbage", "wide", 0},
		{"negative", "-5", 0},
	}

	f := tempFile(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.columns)

			if got := TerminalWidth(f).Width(); got != tt.want {
				t.Errorf("TerminalWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsTerminalRegularFile(t *testing.T) {
	if IsTerminal(tempFile(t)) {
		t.Error("expected a regular file not to be a terminal")
	}
}

func TestSettingsScreenWidth(t *testing.T) {
	var buf bytes.Buffer

	s := newSettings([]Option{WithWriter(&buf)})
	if got := s.screenWidth(); got != DefaultLayout.DefaultScreenWidth {
		t.Errorf("screenWidth() for a buffer = %d, want %d", got, DefaultLayout.DefaultScreenWidth)
	}
	if s.isaTTY {
		t.Error("expected a buffer not to be a TTY")
	}

	s = newSettings([]Option{WithWriter(&buf), WithWidthProvider(FixedWidth(0))})
	if got := s.screenWidth(); got != DefaultLayout.DefaultScreenWidth {
		t.Errorf("screenWidth() for a zero provider = %d, want %d", got, DefaultLayout.DefaultScreenWidth)
	}

	s = newSettings([]Option{WithWriter(&buf), WithWidthProvider(FixedWidth(200))})
	if got := s.screenWidth(); got != 200 {
		t.Errorf("screenWidth() = %d, want 200", got)
	}
}

func TestSettingsScreenWidthUsesLayoutDefault(t *testing.T) {
	t.Setenv("COLUMNS", "")

	layout := DefaultLayout
	layout.DefaultScreenWidth = 100

	tests := []struct {
		name string
		opts []Option
	}{
		{"file that isn't a terminal", []Option{WithWriter(tempFile(t)), WithLayout(layout)}},
		{"buffer", []Option{WithWriter(&bytes.Buffer{}), WithLayout(layout)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSettings(tt.opts)
			if got := s.screenWidth(); got != 100 {
				t.Errorf("screenWidth() = %d, want the layout default 100", got)
			}
		})
	}
}
