package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/hackhub/internal/handlers"
	"github.com/sbilibin2017/hackhub/internal/jwt"
	"github.com/sbilibin2017/hackhub/internal/logger"
	"github.com/sbilibin2017/hackhub/internal/metrics"
	"github.com/sbilibin2017/hackhub/internal/middlewares"
	"github.com/sbilibin2017/hackhub/internal/repositories"
	"github.com/sbilibin2017/hackhub/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost      string
	AppPort      string
	LogLevel     string
	CORSOrigins  []string
	CookieSecure bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	// Empty disables event publishing.
	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int
}

//go:generate swag init -g main.go -o ../docs --parseDependency --parseInternal

// @title hackhub API
// @version 1.0.0
// @description Hackathon social platform: accounts, friends, teams, hackathons and leaderboards
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getList := func(key, defaultValue string) []string {
		var out []string
		for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.CORSOrigins = getList("APP_CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	if cfg.CookieSecure, err = strconv.ParseBool(getEnv("APP_COOKIE_SECURE", "false")); err != nil {
		err = fmt.Errorf("APP_COOKIE_SECURE: %w", err)
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config
	cfg.KafkaBrokers = getList("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "hackhub.account-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "604800"); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}
	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer, optional
	var events *services.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		events = services.NewEventPublisher(writer, middlewares.AfterCommit)
		logger.Log.Infof("Publishing account events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	} else {
		events = services.NewEventPublisher(nil, nil)
		logger.Log.Info("KAFKA_BROKERS not set, account events disabled")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	friendshipRepo := repositories.NewFriendshipRepository(db, txGetter)
	hackathonRepo := repositories.NewHackathonRepository(db, txGetter)
	teamRepo := repositories.NewTeamRepository(db, txGetter)
	lookupRepo := repositories.NewLookupRepository(db, txGetter)
	revocationRepo := repositories.NewTokenRevocationRepository(rdb)

	// Initialize services
	defaults := services.NewDefaults(userWriteRepo)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, revocationRepo, events)
	bootstrapService := services.NewBootstrapService(userReadRepo, friendshipRepo, hackathonRepo, teamRepo, defaults)
	hackathonService := services.NewHackathonService(userReadRepo, friendshipRepo, hackathonRepo, teamRepo)
	friendService := services.NewFriendService(userReadRepo, friendshipRepo, defaults)
	lookupService := services.NewLookupService(userReadRepo, friendshipRepo, hackathonRepo, teamRepo, defaults)
	accountService := services.NewAccountService(userReadRepo, userWriteRepo, lookupRepo, events)

	cookies := handlers.CookieConfig{
		Secure: cfg.CookieSecure,
		MaxAge: tokens.Expiration(),
	}

	metrics.Register()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	tx := middlewares.TxMiddleware(db)

	// Public routes
	r.Get("/health", handlers.NewHealthHandler(db))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))
	r.With(tx).Post("/signup", handlers.NewSignupHandler(authService, bootstrapService, cookies))
	r.Post("/login", handlers.NewLoginHandler(authService, bootstrapService, cookies))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens, revocationRepo))

		r.Post("/logout", handlers.NewLogoutHandler(authService, cookies))
		r.Get("/init", handlers.NewInitHandler(bootstrapService))
		r.Get("/user/hackathons", handlers.NewUpcomingHackathonsHandler(hackathonService))
		r.Get("/user/past-hackathons", handlers.NewPastHackathonsHandler(hackathonService))
		r.Get("/user/friends", handlers.NewFriendsHandler(friendService))
		r.Get("/hackathons", handlers.NewHackathonSearchHandler(hackathonService))
		r.Get("/hackathon/{id}/leaderboard", handlers.NewLeaderboardHandler(hackathonService))
		r.Get("/user/lookup", handlers.NewUserLookupHandler(lookupService))
		r.Get("/user/lookup/{id}/history", handlers.NewUserHistoryHandler(lookupService))
		r.Get("/team/lookup", handlers.NewTeamLookupHandler(lookupService))
		r.Get("/team/{id}/history", handlers.NewTeamHistoryHandler(lookupService))
		r.Get("/accounts/me", handlers.NewGetAccountHandler(accountService))
		r.With(tx).Patch("/accounts/me", handlers.NewUpdateAccountHandler(accountService))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
