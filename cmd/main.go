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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/arfoundry/model-gateway/internal/facades"
	"github.com/arfoundry/model-gateway/internal/handlers"
	"github.com/arfoundry/model-gateway/internal/jwt"
	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/mail"
	"github.com/arfoundry/model-gateway/internal/middlewares"
	"github.com/arfoundry/model-gateway/internal/repositories"
	"github.com/arfoundry/model-gateway/internal/services"
	"github.com/arfoundry/model-gateway/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything parseConfig reads from the environment.
type config struct {
	Port          string
	ProductionURL string
	LogLevel      string

	MongoURI string
	MongoDB  string

	SecretKey    string
	JWTExpSecond int

	ConvertToken string
	ConvertURL   string

	AssetsDir string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaAddr  string
	KafkaTopic string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
}

// @title model-gateway API
// @version 1.0.0
// @description Service ingesting GLB models, converting them to USDZ and publishing hosted AR viewer pages
// @host localhost:3000
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var cfg config
	var err error

	// Application config
	cfg.Port = getEnv("PORT", "3000")
	cfg.ProductionURL = getEnv("PRODUCTION_URL", "http://localhost:3000")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// MongoDB config
	cfg.MongoURI = getEnv("MONGODB_URI", "mongodb://localhost:27017")
	cfg.MongoDB = getEnv("MONGODB_DB", "model_gateway")

	// JWT config
	cfg.SecretKey = getEnv("SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return cfg, err
	}

	// Conversion service config
	cfg.ConvertToken = getEnv("CONVERT3D", "")
	cfg.ConvertURL = getEnv("CONVERT3D_URL", "https://api.convert3d.org/convert")

	// Asset store config
	cfg.AssetsDir = getEnv("ASSETS_DIR", "./public")

	// Redis config
	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return cfg, err
	}

	// Kafka config, optional
	cfg.KafkaAddr = getEnv("KAFKA_ADDR", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "model.created")

	// SMTP config, optional
	cfg.MailHost = getEnv("MAIL_HOST", "")
	if cfg.MailPort, err = strconv.Atoi(getEnv("MAIL_PORT", "587")); err != nil {
		return cfg, err
	}
	cfg.MailUser = getEnv("MAIL_USER", "")
	cfg.MailPass = getEnv("MAIL_PASS", "")

	return cfg, nil
}

// run initializes the logger, MongoDB, Redis, the asset store, the converter
// client and the HTTP server. It sets up routes, applies middleware and
// handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to MongoDB. A failed connection is fatal at startup.
	logger.Log.Infof("Connecting to MongoDB: %s", cfg.MongoURI)
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("mongodb connection error: %w", err)
	}
	defer client.Disconnect(context.Background())

	pingCtx, cancelPing := context.WithTimeout(ctx, 10*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx, nil); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}

	db := client.Database(cfg.MongoDB)
	if err := repositories.EnsureUserIndexes(ctx, db); err != nil {
		return fmt.Errorf("mongodb index setup failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Open the asset store
	store, err := storage.New(cfg.AssetsDir)
	if err != nil {
		return fmt.Errorf("asset store setup failed: %w", err)
	}

	// Optional Kafka writer for model.created events
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Optional SMTP sender
	var mailer services.MailSender
	if cfg.MailHost != "" {
		mailer = mail.NewSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)
	}

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(cfg.SecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	contactRepo := repositories.NewContactWriteRepository(db)
	otpRepo := repositories.NewOtpRepository(rdb)

	// Initialize the converter facade
	converter := facades.NewConverterFacade(cfg.ConvertURL, cfg.ConvertToken)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener, mailer)
	otpService := services.NewOtpService(userReadRepo, userWriteRepo, otpRepo, mailer)
	modelService := services.NewModelService(store, converter, cfg.ProductionURL, kafkaWriter)
	templateService := services.NewTemplateService(store)
	contactService := services.NewContactService(contactRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware)

	// Public routes
	r.Get("/", handlers.NewLivenessHandler())
	r.Post("/signup", handlers.NewSignupHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))
	r.Post("/sendotp", handlers.NewSendOtpHandler(otpService))
	r.Post("/signup-otp", handlers.NewSignupOtpHandler(otpService))
	r.Post("/submit-form", handlers.NewSubmitFormHandler(contactService))
	r.Post("/convert-model", handlers.NewConvertModelHandler(modelService))
	r.Get("/template/{fileName}", handlers.NewTemplateHandler(templateService))

	// Static assets, read-only
	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.Dir(store.Root()))))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Post("/create-model", handlers.NewCreateModelHandler(modelService))
		r.Get("/list-templates", handlers.NewListTemplatesHandler(templateService))
		r.Delete("/delete-template/{name}", handlers.NewDeleteTemplateHandler(templateService))
		r.Post("/changepassword", handlers.NewChangePasswordHandler(authService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("%s/swagger/doc.json", cfg.ProductionURL)),
	))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
