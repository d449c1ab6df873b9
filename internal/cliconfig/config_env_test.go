package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"PAYPROBE_ENDPOINT":       "https://env.example/purchase",
				"PAYPROBE_SECRET_KEY":     "env-key",
				"PAYPROBE_CATALOG":        "amounts",
				"PAYPROBE_TRIALS_FILE":    "/tmp/trials.toml",
				"PAYPROBE_CPF":            "11144477735",
				"PAYPROBE_LOG_LEVEL":      "warn",
				"PAYPROBE_TIMEOUT":        "3s",
				"PAYPROBE_DEBOUNCE":       "50ms",
				"PAYPROBE_MAX_BODY_BYTES": "4096",
				"PAYPROBE_AMOUNT":         "1000",
				"PAYPROBE_WATCH":          "1",
			},
			changed: map[string]bool{},
			expected: Config{
				Endpoint:     "https://env.example/purchase",
				SecretKey:    "env-key",
				Catalog:      "amounts",
				TrialsFile:   "/tmp/trials.toml",
				CPF:          "11144477735",
				LogLevel:     "warn",
				Timeout:      3 * time.Second,
				Debounce:     50 * time.Millisecond,
				MaxBodyBytes: 4096,
				Amount:       1000,
				Watch:        true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"PAYPROBE_SECRET_KEY": "env-key",
				"PAYPROBE_TIMEOUT":    "3s",
			},
			changed:  map[string]bool{"secret-key": true},
			initial:  Config{SecretKey: "flag-key"},
			expected: Config{SecretKey: "flag-key", Timeout: 3 * time.Second},
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"PAYPROBE_TIMEOUT": "soon"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"PAYPROBE_AMOUNT": "ten"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:     "non-positive int keeps current value",
			envVars:  map[string]string{"PAYPROBE_MAX_BODY_BYTES": "0"},
			changed:  map[string]bool{},
			initial:  Config{MaxBodyBytes: 10},
			expected: Config{MaxBodyBytes: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config =\n%+v\nwant\n%+v", cfg, tt.expected)
			}
		})
	}
}
