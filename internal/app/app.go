package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wellness-service/internal/config"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/repository"
	"wellness-service/internal/infrastructure/companion"
	cronpkg "wellness-service/internal/infrastructure/cron"
	infradb "wellness-service/internal/infrastructure/db"
	"wellness-service/internal/infrastructure/kafka"
	"wellness-service/internal/infrastructure/memory"
	infrapg "wellness-service/internal/infrastructure/postgres"
	infraredis "wellness-service/internal/infrastructure/redis"
	"wellness-service/internal/service"
	"wellness-service/internal/store"
	grpctransport "wellness-service/internal/transport/grpc"
	httptransport "wellness-service/internal/transport/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App represents the application
type App struct {
	config       *config.Config
	httpServer   *httptransport.Server
	grpcServer   *grpctransport.Server
	alertMonitor *cronpkg.AlertMonitor
	producer     *kafka.Producer
	redisClient  *redis.Client
	dbPool       *pgxpool.Pool
}

// New creates a new application
func New() (*App, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Configuration loaded successfully")

	ctx := context.Background()

	// Initialize the snapshot backend
	var snapshots repository.SnapshotRepository
	var redisClient *redis.Client
	var dbPool *pgxpool.Pool

	switch cfg.Storage.Backend {
	case "redis":
		redisClient, err = infraredis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		snapshots = infraredis.NewSnapshotRepository(redisClient, cfg.Storage.JournalKey, cfg.Storage.MoodKey)
		fmt.Println("Connected to Redis")

	case "postgres":
		dbPool, err = infradb.NewPostgresPool(ctx, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		if err := infrapg.Migrate(ctx, dbPool); err != nil {
			return nil, fmt.Errorf("failed to migrate snapshots table: %w", err)
		}
		snapshots = infrapg.NewSnapshotRepository(dbPool, cfg.Storage.JournalKey, cfg.Storage.MoodKey)
		fmt.Println("Connected to PostgreSQL")

	case "memory":
		snapshots = memory.NewSnapshotRepository()
		fmt.Println("Using in-memory snapshot storage")

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}

	// Initialize entry stores and services
	journalStore := store.New[entity.JournalEntry]()
	moodStore := store.New[entity.MoodEntry]()

	entryService := service.NewEntryService(journalStore, moodStore, snapshots)
	if err := entryService.LoadSnapshots(ctx); err != nil {
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}

	analyticsService := service.NewAnalyticsService(journalStore, moodStore)
	fmt.Println("Services initialized")

	// Initialize companion client (if enabled)
	var comp *companion.Client
	if cfg.Companion.Enabled {
		comp = companion.NewClient(&cfg.Companion)
		fmt.Println("Companion client initialized")
	} else {
		fmt.Println("Companion is disabled in configuration")
	}

	// Initialize Kafka producer (if enabled)
	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(&cfg.Kafka)
		fmt.Println("Kafka producer initialized")
	}

	// Initialize alert monitor (if enabled)
	var alertMonitor *cronpkg.AlertMonitor
	if cfg.Scheduler.Enabled {
		var publisher cronpkg.AlertPublisher
		if producer != nil {
			publisher = producer
		}
		alertMonitor = cronpkg.NewAlertMonitor(analyticsService, publisher, cfg.Scheduler.CheckInterval)
		fmt.Println("Alert monitor initialized")
	} else {
		fmt.Println("Alert monitor is disabled in configuration")
	}

	// Initialize HTTP handler and servers
	handler := httptransport.NewHandler(entryService, analyticsService, comp)
	httpServer := httptransport.NewServer(&cfg.HTTP, handler)
	grpcServer := grpctransport.NewServer(cfg.GRPC.Port)

	return &App{
		config:       cfg,
		httpServer:   httpServer,
		grpcServer:   grpcServer,
		alertMonitor: alertMonitor,
		producer:     producer,
		redisClient:  redisClient,
		dbPool:       dbPool,
	}, nil
}

// Run starts the application
func (a *App) Run() error {
	// Setup signal handling for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start alert monitor if enabled
	if a.alertMonitor != nil {
		if err := a.alertMonitor.Start(); err != nil {
			return fmt.Errorf("failed to start alert monitor: %w", err)
		}
	}

	// Start gRPC server in a goroutine
	go func() {
		if err := a.grpcServer.Start(); err != nil {
			fmt.Printf("gRPC server error: %v\n", err)
			quit <- syscall.SIGTERM
		}
	}()

	// Start HTTP server in a goroutine
	go func() {
		if err := a.httpServer.Start(); err != nil {
			fmt.Printf("HTTP server error: %v\n", err)
			quit <- syscall.SIGTERM
		}
	}()

	fmt.Printf("%s started on :%d (HTTP) and :%d (gRPC health)\n",
		a.config.Service.Name, a.config.HTTP.Port, a.config.GRPC.Port)
	fmt.Println("Press Ctrl+C to shutdown...")

	// Wait for interrupt signal
	<-quit
	fmt.Println("\nShutting down server...")

	// Graceful shutdown
	a.httpServer.Stop()
	a.grpcServer.Stop()

	// Stop alert monitor
	if a.alertMonitor != nil {
		a.alertMonitor.Stop()
	}

	// Close Kafka producer
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			fmt.Printf("Failed to close Kafka producer: %v\n", err)
		}
	}

	// Close storage connections
	if a.redisClient != nil {
		a.redisClient.Close()
	}
	if a.dbPool != nil {
		a.dbPool.Close()
	}

	fmt.Println("Server shutdown complete")
	return nil
}
