package config

import (
	"strings"
	"testing"
	"time"
)

var allVars = []string{
	"DISCORD_TOKEN", "GUILD_ID", "COMMAND_NAME", "DEFAULT_LOCALE", "TRANSLATION_PROVIDER",
	"DEEPL_API_KEY", "DEEPL_API_URL", "OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
	"TRANSLATION_TIMEOUT", "DATABASE_URL", "MIGRATIONS_PATH",
}

func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	setEnv(t, map[string]string{
		"DISCORD_TOKEN": "token",
		"DEEPL_API_KEY": "key:fx",
	})

	cfg, err := fromEnv()
	if err != nil {
		t.Fatalf("fromEnv() error = %v", err)
	}
	if cfg.Provider != ProviderDeepL {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.CommandName != "Translate with DeepL" {
		t.Errorf("CommandName = %q", cfg.CommandName)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.DefaultLocale != "en" || cfg.MigrationsPath != "migrations" || cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.PreferencesEnabled() {
		t.Error("preferences should be disabled without DATABASE_URL")
	}
}

func TestFromEnv_OpenAI(t *testing.T) {
	setEnv(t, map[string]string{
		"DISCORD_TOKEN":        "token",
		"TRANSLATION_PROVIDER": " OpenAI ",
		"OPENAI_API_KEY":       "sk-test",
		"OPENAI_MODEL":         "gpt-4o",
		"TRANSLATION_TIMEOUT":  "30s",
		"DATABASE_URL":         "postgres://bot@localhost:5432/deeplbot?sslmode=disable",
	})

	cfg, err := fromEnv()
	if err != nil {
		t.Fatalf("fromEnv() error = %v", err)
	}
	if cfg.Provider != ProviderOpenAI || cfg.OpenAIModel != "gpt-4o" || cfg.Timeout != 30*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.PreferencesEnabled() {
		t.Error("preferences should be enabled with DATABASE_URL")
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr string
	}{
		{
			name:    "missing token",
			vars:    map[string]string{"DEEPL_API_KEY": "key"},
			wantErr: "DISCORD_TOKEN",
		},
		{
			name:    "missing deepl key",
			vars:    map[string]string{"DISCORD_TOKEN": "t"},
			wantErr: "DEEPL_API_KEY",
		},
		{
			name:    "missing openai key",
			vars:    map[string]string{"DISCORD_TOKEN": "t", "TRANSLATION_PROVIDER": "openai"},
			wantErr: "OPENAI_API_KEY",
		},
		{
			name:    "unknown provider",
			vars:    map[string]string{"DISCORD_TOKEN": "t", "TRANSLATION_PROVIDER": "google"},
			wantErr: "TRANSLATION_PROVIDER",
		},
		{
			name:    "bad timeout",
			vars:    map[string]string{"DISCORD_TOKEN": "t", "DEEPL_API_KEY": "k", "TRANSLATION_TIMEOUT": "soon"},
			wantErr: "TRANSLATION_TIMEOUT",
		},
		{
			name:    "negative timeout",
			vars:    map[string]string{"DISCORD_TOKEN": "t", "DEEPL_API_KEY": "k", "TRANSLATION_TIMEOUT": "-1s"},
			wantErr: "TRANSLATION_TIMEOUT",
		},
		{
			name:    "non numeric guild",
			vars:    map[string]string{"DISCORD_TOKEN": "t", "DEEPL_API_KEY": "k", "GUILD_ID": "abc"},
			wantErr: "GUILD_ID",
		},
		{
			name:    "bad deepl url",
			vars:    map[string]string{"DISCORD_TOKEN": "t", "DEEPL_API_KEY": "k", "DEEPL_API_URL": "ftp://x"},
			wantErr: "DEEPL_API_URL",
		},
		{
			name:    "database url without host",
			vars:    map[string]string{"DISCORD_TOKEN": "t", "DEEPL_API_KEY": "k", "DATABASE_URL": "deeplbot"},
			wantErr: "DATABASE_URL",
		},
		{
			name:    "command name too long",
			vars:    map[string]string{"DISCORD_TOKEN": "t", "DEEPL_API_KEY": "k", "COMMAND_NAME": strings.Repeat("x", 33)},
			wantErr: "COMMAND_NAME",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.vars)
			_, err := fromEnv()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("fromEnv() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
