package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/imagecolors/internal/colour"
)

// clearEnv blanks every IMAGECOLORS_* variable for the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvQuality, EnvNoiseFloor, EnvAccentSaturation, EnvFillMissing, EnvCache, EnvCacheDir} {
		t.Setenv(name, "")
	}
}

func TestConfigApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvQuality, "medium")
	t.Setenv(EnvNoiseFloor, "0.01")
	t.Setenv(EnvAccentSaturation, "0.5")
	t.Setenv(EnvFillMissing, "true")
	t.Setenv(EnvCache, "1")
	t.Setenv(EnvCacheDir, "/tmp/covers")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}

	want := Config{
		Quality:          "medium",
		NoiseFloor:       0.01,
		AccentSaturation: 0.5,
		FillMissing:      true,
		Cache:            true,
		CacheDir:         "/tmp/covers",
		Format:           "text",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ApplyEnv() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigApplyEnvInvalid(t *testing.T) {
	for _, name := range []string{EnvNoiseFloor, EnvAccentSaturation, EnvFillMissing, EnvCache} {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(name, "not-a-value")
			cfg := DefaultConfig()
			if err := cfg.ApplyEnv(); err == nil {
				t.Errorf("expected error for %s=not-a-value", name)
			}
		})
	}
}

func TestConfigMergeFlags(t *testing.T) {
	flags := DefaultConfig()
	fs := pflag.NewFlagSet("extract", pflag.ContinueOnError)
	flags.RegisterFlags(fs)

	if err := fs.Parse([]string{"-Q", "low", "--fill-missing=false", "-f", "json"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	base := DefaultConfig()
	base.FillMissing = true
	base.AccentSaturation = 0.4
	base.CacheDir = "/env/dir"

	got := flags.MergeFlags(fs, base)
	want := base
	want.Quality = "low"
	want.FillMissing = false
	want.Format = "json"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MergeFlags() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigSelectorOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts, err := cfg.SelectorOptions()
	if err != nil {
		t.Fatalf("SelectorOptions() error: %v", err)
	}
	if diff := cmp.Diff(colour.DefaultSelectorOptions(), opts); diff != "" {
		t.Errorf("default options mismatch (-want +got):\n%s", diff)
	}

	cfg.AccentSaturation = 1.5
	if _, err := cfg.SelectorOptions(); err == nil {
		t.Error("expected error for accent saturation above 1")
	}
}
