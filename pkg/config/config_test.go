package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/thermalmesh/pkg/thermal"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FilePath)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c != Default() {
		t.Errorf("Load() = %+v, want %+v", c, Default())
	}
}

func TestDefaultMatchesThermalDefaults(t *testing.T) {
	got := Default().Model()
	want := thermal.Default()
	if got != want {
		t.Errorf("Default().Model() = %+v, want %+v", got, want)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeFile(t, "output: out/sat.vtp\npanel_bias: 5\n")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Output != "out/sat.vtp" {
		t.Errorf("Output = %q, want %q", c.Output, "out/sat.vtp")
	}
	if c.PanelBias != 5 {
		t.Errorf("PanelBias = %f, want 5", c.PanelBias)
	}
	if c.MinTemp != thermal.DefaultMinTemp || c.FieldName != DefaultFieldName {
		t.Errorf("unset keys lost their defaults: %+v", c)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSub string
	}{
		{"malformed yaml", "sun: [1, 2\n", "parse"},
		{"inverted range", "min_temp: 300\nmax_temp: 100\n", "max_temp"},
		{"zero sun", "sun: [0, 0, 0]\n", "sun"},
		{"empty field name", "field_name: \"\"\n", "field_name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(writeFile(t, tt.body))
			if err == nil {
				t.Fatalf("Load() error = nil, want error containing %q", tt.wantSub)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantSub)
			}
			if c != Default() {
				t.Errorf("Load() on error returned %+v, want Default()", c)
			}
		})
	}
}
