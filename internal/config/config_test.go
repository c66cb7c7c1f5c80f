package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/papapumpkin/reveal/internal/reveal"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Rear.Enabled", cfg.Rear.Enabled, true},
		{"Rear.RevealWidth", cfg.Rear.RevealWidth, 260.0},
		{"Rear.RevealOverdraw", cfg.Rear.RevealOverdraw, 60.0},
		{"Rear.BounceBack", cfg.Rear.BounceBack, true},
		{"Rear.StableDrag", cfg.Rear.StableDrag, false},
		{"Right.Enabled", cfg.Right.Enabled, true},
		{"Right.RevealWidth", cfg.Right.RevealWidth, 260.0},
		{"Symmetry", cfg.Symmetry, "independent"},
		{"Exclusive", cfg.Exclusive, true},
		{"Strict", cfg.Strict, false},
		{"Threshold", cfg.Threshold, 0.5},
		{"PartialFraction", cfg.PartialFraction, 0.25},
		{"FlickVelocity", cfg.FlickVelocity, 250.0},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "rear reveal width",
			envKey: "REVEAL_REAR_REVEAL_WIDTH",
			envVal: "180",
			field:  func(c Config) any { return c.Rear.RevealWidth },
			want:   180.0,
		},
		{
			name:   "right enabled",
			envKey: "REVEAL_RIGHT_ENABLED",
			envVal: "false",
			field:  func(c Config) any { return c.Right.Enabled },
			want:   false,
		},
		{
			name:   "stable drag",
			envKey: "REVEAL_REAR_STABLE_DRAG",
			envVal: "true",
			field:  func(c Config) any { return c.Rear.StableDrag },
			want:   true,
		},
		{
			name:   "symmetry",
			envKey: "REVEAL_SYMMETRY",
			envVal: "mirrored",
			field:  func(c Config) any { return c.Symmetry },
			want:   "mirrored",
		},
		{
			name:   "threshold",
			envKey: "REVEAL_THRESHOLD",
			envVal: "0.7",
			field:  func(c Config) any { return c.Threshold },
			want:   0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Map REVEAL_* env vars onto nested config keys.
			viper.SetEnvPrefix(EnvPrefix)
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			viper.AutomaticEnv()

			t.Setenv(tt.envKey, tt.envVal)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()
	if !cfg.Rear.Enabled || cfg.Rear.RevealWidth != reveal.DefaultRevealWidth {
		t.Errorf("rear = %+v", cfg.Rear)
	}
	if cfg.Geometry().Symmetry != reveal.SymmetryIndependent {
		t.Error("default symmetry should be independent")
	}
}

func TestLoad_InvalidSymmetry(t *testing.T) {
	resetViper()
	viper.Set("symmetry", "diagonal")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown symmetry mode")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".reveal.yaml")
	content := `
rear:
  reveal_width: 200
  reveal_overdraw: 40
  stable_drag: true
right:
  enabled: false
symmetry: mirrored
exclusive: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Rear.RevealWidth != 200 || cfg.Rear.RevealOverdraw != 40 || !cfg.Rear.StableDrag {
		t.Errorf("rear = %+v", cfg.Rear)
	}
	if !cfg.Rear.BounceBack {
		t.Error("unset keys should keep their defaults")
	}
	if cfg.Right.Enabled {
		t.Error("right pane should be disabled")
	}
	if cfg.Exclusive {
		t.Error("exclusive should be false")
	}

	g := cfg.Geometry()
	if g.Symmetry != reveal.SymmetryMirrored {
		t.Errorf("geometry symmetry = %v", g.Symmetry)
	}
	if p := g.Resolve(reveal.SideRight); p.Enabled() {
		t.Errorf("right policy should be disabled, got %+v", p)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Errorf("expected wrapped read error, got %v", err)
	}
}

func TestConfig_GeometryAndOptions(t *testing.T) {
	t.Parallel()
	cfg := Config{
		Rear:            SideConfig{Enabled: true, RevealWidth: 260, RevealOverdraw: 60, BounceBack: true},
		Right:           SideConfig{Enabled: true, RevealWidth: 120},
		Threshold:       0.5,
		DraggableBorder: 3,
		Strict:          true,
	}
	r := reveal.New(cfg.Geometry(), cfg.Options()...)
	if got := r.FrontLocation(reveal.PositionRightRevealed); got != -120 {
		t.Errorf("FrontLocation(right-revealed) = %v, want -120", got)
	}
	if r.Contains(40, 80) {
		t.Error("draggable border of 3 should reject a press in the middle")
	}
	r.SetPosition(reveal.PositionLeftRevealed)
	if err := r.Unload(reveal.SideLeft); err == nil {
		t.Error("strict option not applied")
	}
}
