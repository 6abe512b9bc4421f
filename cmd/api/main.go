package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/depastori/clinica-psi/internal/audit"
	"github.com/depastori/clinica-psi/internal/config"
	dbpkg "github.com/depastori/clinica-psi/internal/db"
	"github.com/depastori/clinica-psi/internal/domain/sequence"
	"github.com/depastori/clinica-psi/internal/infra/database"
	"github.com/depastori/clinica-psi/internal/infra/repository"
	infraSeq "github.com/depastori/clinica-psi/internal/infra/sequence"
	"github.com/depastori/clinica-psi/internal/infra/storage"
	"github.com/depastori/clinica-psi/internal/jobs"
	"github.com/depastori/clinica-psi/internal/middleware"
	"github.com/depastori/clinica-psi/internal/render"
	"github.com/depastori/clinica-psi/internal/routes"
	"github.com/depastori/clinica-psi/internal/timezone"
	ucCharge "github.com/depastori/clinica-psi/internal/usecase/charge"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	alloc := newAllocator(ctx, cfg, db)
	archive := newArchive(ctx, cfg)

	var recorder audit.Recorder = audit.New(db)
	if cfg.AuditSink == config.AuditSinkLog {
		recorder = audit.LogRecorder{}
	}
	auditDispatcher := audit.NewDispatcher(recorder)
	defer auditDispatcher.Close()

	store := repository.NewGormStore(db, alloc)
	clock := timezone.System(cfg.Timezone)

	sweeper, err := jobs.StartOverdueSweep(cfg.OverdueSweepCron, ucCharge.NewSweepOverdue(store, clock))
	if err != nil {
		log.Fatalf("invalid OVERDUE_SWEEP_CRON: %v", err)
	}
	if sweeper != nil {
		defer sweeper.Stop()
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, routes.Deps{
		DB:      db,
		Store:   store,
		Audit:   auditDispatcher,
		Archive: archive,
		Clock:   clock,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

// newAllocator escolhe o contador de numeração. nil = tabela no postgres.
func newAllocator(ctx context.Context, cfg *config.Config, db *gorm.DB) sequence.Allocator {
	switch cfg.SequenceBackend {
	case config.SequenceBackendRedis:
		client := infraSeq.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		log.Printf("[sequence] using redis at %s", cfg.RedisAddr)
		return infraSeq.NewRedisAllocator(client, repository.NewSequenceFloor(db))

	case config.SequenceBackendDynamo:
		awsCfg, err := database.NewAWSConfig(ctx, cfg)
		if err != nil {
			log.Fatalf("failed to load aws config: %v", err)
		}
		log.Printf("[sequence] using dynamodb table %s", cfg.DynamoSequenceTable)
		return infraSeq.NewDynamoAllocator(
			database.NewDynamoDBClient(awsCfg, cfg.AWSEndpoint),
			cfg.DynamoSequenceTable,
		)

	default:
		return nil
	}
}

func newArchive(ctx context.Context, cfg *config.Config) render.Archive {
	if cfg.DocumentsBucket == "" {
		return nil
	}

	awsCfg, err := database.NewAWSConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to load aws config: %v", err)
	}

	log.Printf("[documents] archiving to s3://%s", cfg.DocumentsBucket)
	return storage.NewS3Archive(database.NewS3Client(awsCfg, cfg.AWSEndpoint), cfg.DocumentsBucket)
}

