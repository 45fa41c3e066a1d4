package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	actionService "github.com/reshetovitsme/groupwatch/internal/modules/action/service"
	adminService "github.com/reshetovitsme/groupwatch/internal/modules/admin/service"
	chatRepo "github.com/reshetovitsme/groupwatch/internal/modules/chat/repository"
	chatService "github.com/reshetovitsme/groupwatch/internal/modules/chat/service"
	journalRepo "github.com/reshetovitsme/groupwatch/internal/modules/journal/repository"
	journalService "github.com/reshetovitsme/groupwatch/internal/modules/journal/service"
	lifecycleService "github.com/reshetovitsme/groupwatch/internal/modules/lifecycle/service"
	memberService "github.com/reshetovitsme/groupwatch/internal/modules/membership/service"
	"github.com/reshetovitsme/groupwatch/internal/modules/membership/statuscache"
	runtimeService "github.com/reshetovitsme/groupwatch/internal/modules/runtime/service"
	watcherService "github.com/reshetovitsme/groupwatch/internal/modules/watcher/service"
	"github.com/reshetovitsme/groupwatch/internal/shared/config"
	httpServer "github.com/reshetovitsme/groupwatch/internal/transport/http"
	"github.com/reshetovitsme/groupwatch/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register Chat Repository
	do.Provide(injector, func(i do.Injector) (chatRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := chatRepo.New(context.Background(), cfg)
		if err != nil {
			return nil, oops.With("storage_backend", cfg.StorageBackend, "context", "failed to initialize chat repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Chat Service
	do.Provide(injector, func(i do.Injector) (*chatService.Service, error) {
		repo := do.MustInvoke[chatRepo.Repository](i)
		return chatService.New(repo, slog.Default()), nil
	})

	// Register Status Cache
	do.Provide(injector, func(i do.Injector) (*statuscache.MemoryStore, error) {
		return statuscache.NewMemoryStore(), nil
	})

	// Register Runtime Registry
	do.Provide(injector, func(i do.Injector) (*runtimeService.Registry, error) {
		return runtimeService.New(slog.Default()), nil
	})

	// Register Journal
	do.Provide(injector, func(i do.Injector) (*journalService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return journalService.New(journalRepo.NewRing(cfg.JournalSize)), nil
	})

	// Register Bot. Updates resolve the handler lazily since the handler
	// depends on the client, which wraps this bot.
	do.Provide(injector, func(i do.Injector) (*bot.Bot, error) {
		cfg := do.MustInvoke[*config.Config](i)

		opts := []bot.Option{
			bot.WithServerURL(cfg.TelegramAPIURL),
			bot.WithHTTPClient(telegram.PollTimeout, telegram.NewUpdatesClient(nil)),
			bot.WithAllowedUpdates(telegram.AllowedUpdates),
			bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
				do.MustInvoke[*telegram.Handler](i).HandleUpdate(ctx, b, update)
			}),
		}

		b, err := bot.New(cfg.TelegramBotToken, opts...)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram bot").Wrap(err)
		}
		return b, nil
	})

	// Register Telegram Client
	do.Provide(injector, func(i do.Injector) (*telegram.Client, error) {
		return telegram.NewClient(do.MustInvoke[*bot.Bot](i)), nil
	})

	// Register Admin Cache
	do.Provide(injector, func(i do.Injector) (*adminService.Cache, error) {
		client := do.MustInvoke[*telegram.Client](i)
		return adminService.New(client, slog.Default()), nil
	})

	// Register Classifier
	do.Provide(injector, func(i do.Injector) (*memberService.Classifier, error) {
		cache := do.MustInvoke[*statuscache.MemoryStore](i)
		client := do.MustInvoke[*telegram.Client](i)
		return memberService.NewClassifier(cache, client, client, slog.Default()), nil
	})

	// Register Executor
	do.Provide(injector, func(i do.Injector) (*actionService.Executor, error) {
		cfg := do.MustInvoke[*config.Config](i)
		deps := actionService.Deps{
			Messenger: do.MustInvoke[*telegram.Client](i),
			Chats:     do.MustInvoke[*chatService.Service](i),
			Admins:    do.MustInvoke[*adminService.Cache](i),
			Runtime:   do.MustInvoke[*runtimeService.Registry](i),
			Statuses:  do.MustInvoke[*statuscache.MemoryStore](i),
			Journal:   do.MustInvoke[*journalService.Service](i),
		}
		opts := actionService.Options{
			LeaveDelay:      cfg.LeaveDelay(),
			SupportURL:      cfg.SupportURL,
			MinGroupMembers: memberService.MinGroupMembers,
		}
		return actionService.New(deps, opts, slog.Default()), nil
	})

	// Register Watcher
	do.Provide(injector, func(i do.Injector) (*watcherService.Watcher, error) {
		return watcherService.New(
			do.MustInvoke[*chatService.Service](i),
			do.MustInvoke[*memberService.Classifier](i),
			lifecycleService.NewRouter(slog.Default()),
			do.MustInvoke[*actionService.Executor](i),
			slog.Default(),
		), nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegram.Handler, error) {
		return telegram.New(do.MustInvoke[*watcherService.Watcher](i), slog.Default()), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		server := httpServer.New(cfg, httpServer.Deps{
			Chats:    do.MustInvoke[*chatService.Service](i),
			Admins:   do.MustInvoke[*adminService.Cache](i),
			Feed:     do.MustInvoke[*journalService.Service](i),
			Stats:    do.MustInvoke[*actionService.Executor](i),
			Sessions: do.MustInvoke[*runtimeService.Registry](i),

			StatusCache: do.MustInvoke[*statuscache.MemoryStore](i),
			Journal:     do.MustInvoke[*journalService.Service](i),
		})
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(injector do.Injector) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server if it exists
	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Failed to stop HTTP server", "error", err)
		}
	}

	// The bot stops polling when the context passed to Start is cancelled

	// Close repository if it exists
	if repo, err := do.Invoke[chatRepo.Repository](injector); err == nil && repo != nil {
		if err := repo.Close(); err != nil {
			return oops.With("context", "failed to close chat repository").Wrap(err)
		}
	}

	return nil
}
