package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Translation providers.
const (
	ProviderDeepL  = "deepl"
	ProviderOpenAI = "openai"
)

const (
	defaultCommandName    = "Translate with DeepL"
	defaultOpenAIModel    = "gpt-4o-mini"
	defaultLocale         = "en"
	defaultMigrationsPath = "migrations"
	defaultTimeout        = 15 * time.Second
)

type Config struct {
	Token          string
	GuildID        string
	CommandName    string
	DefaultLocale  string
	Provider       string
	DeepLAPIKey    string
	DeepLAPIURL    string
	OpenAIAPIKey   string
	OpenAIModel    string
	OpenAIBaseURL  string
	Timeout        time.Duration
	DatabaseURL    string
	MigrationsPath string
}

// PreferencesEnabled indique si les préférences de langue par utilisateur sont actives.
func (c *Config) PreferencesEnabled() bool {
	return c.DatabaseURL != ""
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		Token:          strings.TrimSpace(os.Getenv("DISCORD_TOKEN")),
		GuildID:        strings.TrimSpace(os.Getenv("GUILD_ID")),
		CommandName:    strings.TrimSpace(os.Getenv("COMMAND_NAME")),
		DefaultLocale:  strings.TrimSpace(os.Getenv("DEFAULT_LOCALE")),
		Provider:       strings.ToLower(strings.TrimSpace(os.Getenv("TRANSLATION_PROVIDER"))),
		DeepLAPIKey:    strings.TrimSpace(os.Getenv("DEEPL_API_KEY")),
		DeepLAPIURL:    strings.TrimSpace(os.Getenv("DEEPL_API_URL")),
		OpenAIAPIKey:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:    strings.TrimSpace(os.Getenv("OPENAI_MODEL")),
		OpenAIBaseURL:  strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		MigrationsPath: strings.TrimSpace(os.Getenv("MIGRATIONS_PATH")),
	}

	timeout := strings.TrimSpace(os.Getenv("TRANSLATION_TIMEOUT"))
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("config: TRANSLATION_TIMEOUT invalide (%q): %w", timeout, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applique les valeurs par défaut et toutes les règles sur la configuration chargée.
func (c *Config) validate() error {
	if c.Token == "" {
		return fmt.Errorf("config: DISCORD_TOKEN est requis et ne peut pas être vide")
	}

	if c.GuildID != "" {
		for _, r := range c.GuildID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
			}
		}
	}

	if c.Provider == "" {
		c.Provider = ProviderDeepL
	}
	switch c.Provider {
	case ProviderDeepL:
		if c.DeepLAPIKey == "" {
			return fmt.Errorf("config: DEEPL_API_KEY est requis avec TRANSLATION_PROVIDER=deepl")
		}
		if err := validateURL("DEEPL_API_URL", c.DeepLAPIURL); err != nil {
			return err
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("config: OPENAI_API_KEY est requis avec TRANSLATION_PROVIDER=openai")
		}
		if err := validateURL("OPENAI_BASE_URL", c.OpenAIBaseURL); err != nil {
			return err
		}
	default:
		return fmt.Errorf("config: TRANSLATION_PROVIDER inconnu (%q), valeurs possibles: deepl, openai", c.Provider)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("config: TRANSLATION_TIMEOUT doit être positif")
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.CommandName == "" {
		c.CommandName = defaultCommandName
	}
	if len([]rune(c.CommandName)) > 32 {
		return fmt.Errorf("config: COMMAND_NAME ne peut pas dépasser 32 caractères")
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = defaultLocale
	}
	if c.OpenAIModel == "" {
		c.OpenAIModel = defaultOpenAIModel
	}
	if c.MigrationsPath == "" {
		c.MigrationsPath = defaultMigrationsPath
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
		}
	}

	return nil
}

// validateURL vérifie une URL optionnelle.
func validateURL(name, raw string) error {
	if raw == "" {
		return nil
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s invalide (%q): %w", name, raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("config: %s invalide (%q): http ou https attendu", name, raw)
	}
	return nil
}
