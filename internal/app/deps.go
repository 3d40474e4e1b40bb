package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"qarks-assistant/internal/config"
	"qarks-assistant/internal/llm"
	"qarks-assistant/internal/logger"
	"qarks-assistant/internal/notice"
	"qarks-assistant/internal/store"
)

// Deps bundles the runtime dependencies of the assistant service.
//
// Bootstrap never fails: Store is nil when the document store could not be
// built, and LLM is an llm.Unavailable when the generative client could not be
// built. Notices describes what happened for display on every page.
type Deps struct {
	Config  config.Config
	Log     *slog.Logger
	Store   store.Store
	LLM     llm.Client
	Notices []notice.Notice
}

// Build loads env, config, and shared components.
func Build(ctx context.Context) (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	return Bootstrap(ctx, cfg, log), nil
}

// Bootstrap constructs the document store and the generative client. A failure
// in either is reported as notices and the service keeps running degraded.
func Bootstrap(ctx context.Context, cfg config.Config, log *slog.Logger) Deps {
	deps := Deps{Config: cfg, Log: log}

	st, err := buildStore(cfg, log)
	switch {
	case err != nil:
		log.Error("failed to initialize document store", "err", err)
		deps.Notices = append(deps.Notices,
			notice.Error(fmt.Sprintf("Error al inicializar la base de documentos: %v. Por favor, verifica tus credenciales.", err)),
			notice.Info("Para un despliegue real, asegúrate de haber configurado DB_URL con las credenciales de la base de documentos."),
		)
	case st != nil:
		deps.Store = st
		deps.Notices = append(deps.Notices, notice.Success("Conexión a la base de documentos inicializada correctamente."))
	}

	client, err := buildLLM(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize LLM", "provider", cfg.LLMProvider, "err", err)
		deps.LLM = llm.Unavailable{Err: err}
		deps.Notices = append(deps.Notices,
			notice.Error(fmt.Sprintf("Error al configurar la API de %s: %v.", providerName(cfg.LLMProvider), err)),
			notice.Info("Asegúrate de haber configurado tu clave de API como variable de entorno o en el archivo .env."),
		)
	} else {
		deps.LLM = client
	}
	return deps
}

// buildStore returns a nil store and nil error when the store is disabled.
func buildStore(cfg config.Config, log *slog.Logger) (store.Store, error) {
	switch cfg.StoreProvider {
	case "postgres":
		if cfg.DBURL == "" {
			return nil, fmt.Errorf("DB_URL is required when STORE_PROVIDER=postgres")
		}
		db, err := store.NewPostgres(cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Postgres: %w", err)
		}
		log.Info("using Postgres document store")
		return db, nil
	case "none":
		log.Info("document store disabled")
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid STORE_PROVIDER: %s (valid options: postgres, none)", cfg.StoreProvider)
	}
}

func buildLLM(ctx context.Context, cfg config.Config, log *slog.Logger) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
		client, err := llm.NewGeminiClient(ctx, cfg.GeminiKey, cfg.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		log.Info("using Gemini LLM client", "model", cfg.LLMModel)
		return client, nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.LLMModel))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI LLM client", "model", cfg.LLMModel)
		return client, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: gemini, openai)", cfg.LLMProvider)
	}
}

func providerName(provider string) string {
	switch provider {
	case "openai":
		return "OpenAI"
	default:
		return "Gemini"
	}
}
