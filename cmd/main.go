package main

import (
	"context"
	"errors"
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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-articles/docs"
	"github.com/sbilibin2017/gw-articles/internal/cookies"
	"github.com/sbilibin2017/gw-articles/internal/handlers"
	"github.com/sbilibin2017/gw-articles/internal/jwt"
	"github.com/sbilibin2017/gw-articles/internal/logger"
	"github.com/sbilibin2017/gw-articles/internal/middlewares"
	"github.com/sbilibin2017/gw-articles/internal/migrations"
	"github.com/sbilibin2017/gw-articles/internal/repositories"
	"github.com/sbilibin2017/gw-articles/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-articles API
// @version 1.0.0
// @description Article publishing service with cookie based JWT sessions
// @BasePath /
// @schemes http
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name access_token
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
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	JWTAccessSecret   string
	JWTAccessExp      time.Duration
	JWTRefreshSecret  string
	JWTRefreshExp     time.Duration
	AccessCookieName  string
	RefreshCookieName string
	CookieSecure      bool

	RedisURL string
	RedisTTL time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	SwaggerPath        string
	SwaggerTitle       string
	SwaggerDescription string
	SwaggerVersion     string
}

// parseConfig loads environment variables from a file and builds the
// application configuration. Every missing required key is reported.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	var missing []string
	require := func(key string) string {
		val, ok := os.LookupEnv(key)
		if !ok || strings.TrimSpace(val) == "" {
			missing = append(missing, key)
			return ""
		}
		return val
	}
	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := &config{
		AppHost:  require("APP_HOST"),
		AppPort:  require("APP_PORT"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PGHost:     require("POSTGRES_HOST"),
		PGUser:     require("POSTGRES_USER"),
		PGPassword: require("POSTGRES_PASSWORD"),
		PGDB:       require("POSTGRES_DB"),

		JWTAccessSecret:   require("JWT_ACCESS_SECRET"),
		JWTRefreshSecret:  require("JWT_REFRESH_SECRET"),
		AccessCookieName:  require("JWT_ACCESS_COOKIE_NAME"),
		RefreshCookieName: require("JWT_REFRESH_COOKIE_NAME"),

		RedisURL: require("REDIS_URL"),

		KafkaTopic: getEnv("KAFKA_TOPIC", "article-events"),

		SwaggerPath:        require("SWAGGER_PATH"),
		SwaggerTitle:       require("SWAGGER_TITLE"),
		SwaggerDescription: require("SWAGGER_DESCRIPTION"),
		SwaggerVersion:     require("SWAGGER_VERSION"),
	}
	pgPort := require("POSTGRES_PORT")
	accessExp := require("JWT_ACCESS_EXPIRES_IN")
	refreshExp := require("JWT_REFRESH_EXPIRES_IN")
	redisTTL := require("REDIS_TTL")

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	var err error
	if cfg.PGPort, err = strconv.Atoi(pgPort); err != nil {
		return nil, fmt.Errorf("POSTGRES_PORT: %w", err)
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, fmt.Errorf("POSTGRES_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, fmt.Errorf("POSTGRES_MAX_IDLE_CONNS: %w", err)
	}
	if cfg.JWTAccessExp, err = jwt.ParseExpiration(accessExp); err != nil {
		return nil, fmt.Errorf("JWT_ACCESS_EXPIRES_IN: %w", err)
	}
	if cfg.JWTRefreshExp, err = jwt.ParseExpiration(refreshExp); err != nil {
		return nil, fmt.Errorf("JWT_REFRESH_EXPIRES_IN: %w", err)
	}
	if cfg.RedisTTL, err = jwt.ParseExpiration(redisTTL); err != nil {
		return nil, fmt.Errorf("REDIS_TTL: %w", err)
	}
	if cfg.CookieSecure, err = strconv.ParseBool(getEnv("COOKIE_SECURE", "false")); err != nil {
		return nil, fmt.Errorf("COOKIE_SECURE: %w", err)
	}
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
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
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka is optional; without brokers events are dropped
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := newKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer w.Close()
		kafkaWriter = w
	}

	tokens, err := jwt.New(
		jwt.WithAccess(cfg.JWTAccessSecret, cfg.JWTAccessExp),
		jwt.WithRefresh(cfg.JWTRefreshSecret, cfg.JWTRefreshExp),
	)
	if err != nil {
		return fmt.Errorf("failed to configure tokens: %w", err)
	}
	session := cookies.New(cfg.AccessCookieName, cfg.RefreshCookieName, cfg.CookieSecure)

	docs.SwaggerInfo.Title = cfg.SwaggerTitle
	docs.SwaggerInfo.Description = cfg.SwaggerDescription
	docs.SwaggerInfo.Version = cfg.SwaggerVersion

	r := newRouter(db, rdb, kafkaWriter, tokens, session, cfg.RedisTTL, cfg.SwaggerPath)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
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

// newKafkaWriter builds the event writer. Events are sent one at a time, so the
// batch is flushed almost immediately instead of waiting for it to fill.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           services.PublishTimeout,
		AllowAutoTopicCreation: true,
	}
}

// newRouter wires repositories, services and handlers into the HTTP routes.
func newRouter(
	db *sqlx.DB,
	rdb *redis.Client,
	kafkaWriter services.KafkaWriter,
	tokens *jwt.JWT,
	session *cookies.Transport,
	cacheTTL time.Duration,
	swaggerPath string,
) http.Handler {
	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	articleReadRepo := repositories.NewArticleReadRepository(db, middlewares.GetTxFromContext)
	articleWriteRepo := repositories.NewArticleWriteRepository(db, middlewares.GetTxFromContext)
	cacheRepo := repositories.NewCacheRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	helloService := services.NewHelloService(cacheRepo, cacheTTL)
	articleService := services.NewArticleService(articleReadRepo, cacheRepo, cacheTTL)
	managementService := services.NewArticleManagementService(
		articleReadRepo,
		articleWriteRepo,
		userReadRepo,
		services.NewEventPublisher(kafkaWriter, middlewares.AfterCommit),
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/", handlers.NewHelloHandler(helloService))
	r.Get("/health", handlers.NewHealthHandler())

	r.Route("/authorize", func(r chi.Router) {
		r.Post("/login", handlers.NewLoginHandler(authService, session))
		r.Post("/register", handlers.NewRegisterHandler(authService, session))
		r.Get("/refresh", handlers.NewRefreshHandler(authService, session))
		r.Post("/logout", handlers.NewLogoutHandler(session))
	})

	r.Get("/articles", handlers.NewListArticlesHandler(articleService))
	r.Get("/articles/{id}", handlers.NewGetArticleHandler(articleService))

	r.Route("/articles-management", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(session, tokens))

		r.Get("/", handlers.NewListMyArticlesHandler(managementService))
		r.Get("/{id}", handlers.NewGetMyArticleHandler(managementService))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/", handlers.NewCreateArticleHandler(managementService))
			r.Put("/{id}", handlers.NewUpdateArticleHandler(managementService))
			r.Delete("/{id}", handlers.NewDeleteArticleHandler(managementService))
		})
	})

	swaggerPath = "/" + strings.Trim(swaggerPath, "/")
	r.Get(swaggerPath+"/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerPath+"/doc.json"),
	))

	return r
}
