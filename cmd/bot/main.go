package main

import (
	"context"
	"log"
	"os"

	"deeplbot/internal/adapters/discord"
	"deeplbot/internal/config"
	"deeplbot/internal/infrastructure/database"
	"deeplbot/internal/infrastructure/deepl"
	"deeplbot/internal/infrastructure/i18n"
	"deeplbot/internal/infrastructure/openai"
	"deeplbot/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	ctx := context.Background()

	// Left nil (untyped) when DATABASE_URL is unset: preferences are then disabled.
	var preferences output.PreferenceRepository
	if cfg.PreferencesEnabled() {
		repo, pool, err := database.OpenPreferenceStore(ctx, cfg.DatabaseURL, cfg.MigrationsPath)
		if err != nil {
			log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
		}
		defer pool.Close()
		preferences = repo
	} else {
		log.Println("ℹ️ DATABASE_URL absente, préférences de langue désactivées.")
	}

	bot, err := discord.NewBot(cfg, newProvider(cfg), preferences, i18n.NewTranslator(cfg.DefaultLocale))
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}

func newProvider(cfg *config.Config) output.TranslationProvider {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		log.Printf("🌐 Fournisseur de traduction: OpenAI (%s)", cfg.OpenAIModel)
		return openai.NewProvider(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
			Timeout: cfg.Timeout,
		})
	default:
		log.Println("🌐 Fournisseur de traduction: DeepL")
		return deepl.NewClient(deepl.Config{
			APIKey:  cfg.DeepLAPIKey,
			BaseURL: cfg.DeepLAPIURL,
			Timeout: cfg.Timeout,
		})
	}
}
