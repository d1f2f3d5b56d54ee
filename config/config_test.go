package config

import (
	"flag"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			want: Config{TPS: 60, Volume: 0.5},
		},
		{
			name: "overrides",
			env: map[string]string{
				"BULLETBOSS_DEBUG":  "true",
				"BULLETBOSS_WATCH":  "true",
				"BULLETBOSS_TPS":    "120",
				"BULLETBOSS_VOLUME": "0.25",
			},
			want: Config{Debug: true, Watch: true, TPS: 120, Volume: 0.25},
		},
		{
			name: "clamped",
			env: map[string]string{
				"BULLETBOSS_TPS":    "0",
				"BULLETBOSS_VOLUME": "3",
			},
			want: Config{TPS: 60, Volume: 1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			got, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestLoadFromEnvRejectsBadValue(t *testing.T) {
	t.Setenv("BULLETBOSS_TPS", "fast")
	if _, err := LoadFromEnv(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BULLETBOSS_TPS", "30")
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse([]string{"-debug", "-tps", "90"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if !cfg.Debug || cfg.TPS != 90 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}
