package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizhub-service/internal/app"
	"quizhub-service/internal/config"
	"quizhub-service/internal/infra/memory"
	pgstore "quizhub-service/internal/infra/postgres"
	redisstore "quizhub-service/internal/infra/redis"
	transport "quizhub-service/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewServeCmd builds the CLI subcommand to start the server.
func NewServeCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var users app.UserRepository = memory.NewUserRepository()
	var bank app.QuestionRepository = memory.NewQuestionRepository()
	var ledger app.LeaderboardRepository = memory.NewLeaderboardRepository()

	if cfg.Postgres.URL != "" {
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()

		// Best-effort reachability check; an outage here is logged, not fatal.
		if err := pool.Ping(ctx); err != nil {
			log.Printf("postgres ping failed: %v", err)
		} else {
			log.Printf("connected to postgres")
		}

		users = pgstore.NewUserRepository(pool)
		bank = pgstore.NewQuestionRepository(pool)
		ledger = pgstore.NewLeaderboardRepository(pool)
	} else {
		log.Printf("no postgres configured, using in-memory store")
	}

	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cacheTTL := config.TTLDuration(cfg.QuestionCache.TTL, 10*time.Minute)
		bank = redisstore.NewQuestionCache(redisClient, bank, cacheTTL)
	}

	handler := transport.NewHandler(
		app.NewAuthService(users),
		app.NewQuestionService(bank),
		app.NewLeaderboardService(ledger),
		app.NewDemoQuizList(),
	)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quizhub on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
