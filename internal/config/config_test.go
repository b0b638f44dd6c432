package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://dng.example.com/rm")
	t.Setenv(EnvUsername, "melvin")
	t.Setenv(EnvAPIKey, "s3cret")

	cfg := FromEnv()
	assert.Equal(t, "https://dng.example.com/rm", cfg.BaseURL)
	assert.Equal(t, "melvin", cfg.Username)
	assert.Equal(t, "s3cret", cfg.APIKey)
	assert.True(t, cfg.Complete())
}

func TestFromEnv_TrimsTrailingSlash(t *testing.T) {
	t.Setenv(EnvBaseURL, "https://dng.example.com/rm/")
	t.Setenv(EnvUsername, "melvin")
	t.Setenv(EnvAPIKey, "s3cret")

	cfg := FromEnv()
	assert.Equal(t, "https://dng.example.com/rm", cfg.BaseURL)
}

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"https://dng.example.com/rm":    "https://dng.example.com/rm",
		"https://dng.example.com/rm/":   "https://dng.example.com/rm",
		"https://dng.example.com/rm//":  "https://dng.example.com/rm",
		"  https://dng.example.com/rm ": "https://dng.example.com/rm",
		"":                              "",
		"   ":                           "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeBaseURL(in), "input %q", in)
	}
}

func TestMissing(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "complete",
			cfg:  Config{BaseURL: "https://dng.example.com", Username: "u", APIKey: "k"},
			want: nil,
		},
		{
			name: "all absent",
			cfg:  Config{},
			want: []string{EnvBaseURL, EnvUsername, EnvAPIKey},
		},
		{
			name: "no credential",
			cfg:  Config{BaseURL: "https://dng.example.com", Username: "u"},
			want: []string{EnvAPIKey},
		},
		{
			name: "no username",
			cfg:  Config{BaseURL: "https://dng.example.com", APIKey: "k"},
			want: []string{EnvUsername},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.cfg.Missing()
			require.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) == 0, tt.cfg.Complete())
		})
	}
}
