package settings

import (
	"testing"
)

func TestDetermineLevel_Precedence(t *testing.T) {
	t.Setenv("ALOG_TEST_UNSET", "")
	t.Setenv("ALOG_TEST_LEVEL", "WARNING")

	envs := []string{"ALOG_TEST_UNSET", "ALOG_TEST_LEVEL"}

	tests := []struct {
		name         string
		cli          string
		envVars      []string
		rootFallback string
		def          string
		want         string
	}{
		{
			name:    "cli wins over everything",
			cli:     "DEBUG",
			envVars: envs,
			def:     "INFO",
			want:    "DEBUG",
		},
		{
			name:    "first non-empty env var",
			envVars: envs,
			def:     "INFO",
			want:    "WARNING",
		},
		{
			name:    "default when all unset",
			envVars: []string{"ALOG_TEST_UNSET"},
			def:     "INFO",
			want:    "INFO",
		},
		{
			name:         "root fallback beats default",
			envVars:      []string{"ALOG_TEST_UNSET"},
			rootFallback: "error",
			def:          "INFO",
			want:         "ERROR",
		},
		{
			name:    "result is uppercased",
			cli:     "trace",
			envVars: envs,
			def:     "INFO",
			want:    "TRACE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineLevel(tt.cli, tt.envVars, tt.rootFallback, tt.def)
			if got != tt.want {
				t.Errorf("DetermineLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetermineLevel_EnvOrder(t *testing.T) {
	t.Setenv("ALOG_TEST_FIRST", "trace")
	t.Setenv("ALOG_TEST_SECOND", "error")

	got := DetermineLevel("", []string{"ALOG_TEST_FIRST", "ALOG_TEST_SECOND"}, "", "INFO")
	if got != "TRACE" {
		t.Errorf("DetermineLevel() = %q, want TRACE (caller-supplied order)", got)
	}
}

func TestRegistry_DetermineLevel(t *testing.T) {
	t.Setenv("ALOG_TEST_REGISTRY_LEVEL", "brief")

	r := NewRegistry()
	r.RegisterEnvVars([]string{"ALOG_TEST_REGISTRY_LEVEL"})
	r.RegisterDefaultLevel("info")

	if got := r.DetermineLevel("", ""); got != "BRIEF" {
		t.Errorf("Registry.DetermineLevel() = %q, want BRIEF", got)
	}

	if got := r.DetermineLevel("critical", ""); got != "CRITICAL" {
		t.Errorf("Registry.DetermineLevel(cli) = %q, want CRITICAL", got)
	}
}
