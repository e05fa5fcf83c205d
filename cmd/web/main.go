package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/ParkChanH/project-anchovy/internal/catalog"
	"github.com/ParkChanH/project-anchovy/internal/diary"
	"github.com/ParkChanH/project-anchovy/internal/envstruct"
	"github.com/ParkChanH/project-anchovy/internal/errors"
	"github.com/ParkChanH/project-anchovy/internal/flightrecorder"
	"github.com/ParkChanH/project-anchovy/internal/logging"
	"github.com/ParkChanH/project-anchovy/internal/profile"
	"github.com/ParkChanH/project-anchovy/internal/program"
	"github.com/ParkChanH/project-anchovy/internal/sqlite"
	"github.com/ParkChanH/project-anchovy/internal/trainer"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	catalog        *catalog.Catalog
	profileService *profile.Service
	diaryService   *diary.Service
	matcher        *program.Matcher
	trainerService *trainer.Service
	flightRecorder *flightrecorder.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"ANCHOVY_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"ANCHOVY_SQLITE_URL" envDefault:"./anchovy.sqlite3"`
	// AllowedOrigins is a comma-separated list of origins allowed to call the API from a browser.
	AllowedOrigins string `env:"ANCHOVY_ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	// ChatAPIKey authenticates against the chat-completion endpoint. Chat endpoints
	// return 503 when it's unset.
	ChatAPIKey string `env:"DEEPSEEK_API_KEY" envDefault:""`
	// ChatBaseURL overrides the chat-completion endpoint, e.g. for a self-hosted model.
	ChatBaseURL string `env:"ANCHOVY_CHAT_BASE_URL" envDefault:""`
	// ChatModel overrides the chat-completion model name.
	ChatModel string `env:"ANCHOVY_CHAT_MODEL" envDefault:""`
	// TracesDirectory enables flight recording of request timeouts when set.
	TracesDirectory string `env:"ANCHOVY_TRACES_DIR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	catalogue, err := catalog.Load()
	if err != nil {
		return errors.Wrap(err, "load program catalog")
	}

	var recorder *flightrecorder.Service
	if cfg.TracesDirectory != "" {
		if recorder, err = flightrecorder.New(flightrecorder.Config{
			Logger: logger,
			Dir:    cfg.TracesDirectory,
		}); err != nil {
			return errors.Wrap(err, "new flight recorder")
		}
		if err = recorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer recorder.Stop(ctx)
	}

	profileService := profile.NewService(db, logger)
	diaryService := diary.NewService(db, profileService, logger)

	app := application{
		logger:         logger,
		sessionManager: initializeSessionManager(db),
		catalog:        catalogue,
		profileService: profileService,
		diaryService:   diaryService,
		matcher:        program.NewMatcher(catalogue),
		trainerService: nil,
		flightRecorder: recorder,
	}
	if cfg.ChatAPIKey != "" {
		app.trainerService = trainer.NewService(trainer.Config{
			APIKey:  cfg.ChatAPIKey,
			BaseURL: cfg.ChatBaseURL,
			Model:   cfg.ChatModel,
		}, profileService, diaryService, logger)
	} else {
		logger.LogAttrs(ctx, slog.LevelWarn, "chat API key not configured, trainer endpoints disabled")
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes(cfg.AllowedOrigins)); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 30 * 24 * time.Hour                                           //nolint:mnd // month, the identity cookie is the account
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	// A missing .env file is fine, the environment may be configured directly.
	_ = godotenv.Load()

	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
