package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "megaCalc/internal/api/grpc"
	apihttp "megaCalc/internal/api/http"
	"megaCalc/internal/api/http/controllers/keypad"
	"megaCalc/internal/api/http/controllers/system"
	"megaCalc/internal/infrastructure/click"
	"megaCalc/internal/infrastructure/kafka"
	"megaCalc/internal/infrastructure/mongo"
	"megaCalc/internal/infrastructure/pg"
	"megaCalc/internal/infrastructure/redis"
	"megaCalc/internal/pkg/logger"
	keypadUsecase "megaCalc/internal/usecase/keypad"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (все подключения — в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает Postgres, Redis, MongoDB, Kafka и ClickHouse, собирает
// зависимости и запускает HTTP- и gRPC-серверы плюс консьюмера аналитики
// (блокирующий вызов, выход по SIGINT/SIGTERM).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	db, err := pg.New(&a.cfg.DB)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()

	if err := pg.Migrate(context.Background(), db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()

	mdb, err := mongo.New(context.Background(), &a.cfg.Mongo)
	if err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	defer func() { _ = mdb.Disconnect(context.Background()) }()

	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()

	analytics := click.NewKeystrokeWriter(ch)
	if err := analytics.EnsureTable(context.Background()); err != nil {
		return fmt.Errorf("clickhouse ensure table: %w", err)
	}

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	repo := pg.NewOperationRepo(db, log)
	cache := redis.NewDisplayCache(rdb, log)
	store := mongo.NewSessionStore(mdb, log)
	uc := keypadUsecase.New(repo, cache, producer, store, analytics, a.cfg.Engine.Width, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	grpcAddr := a.cfg.Grpc.Host + ":" + a.cfg.Grpc.Port
	grpcSrv := apigrpc.NewServer(grpcAddr, uc, log)
	go func() {
		if err := grpcSrv.Start(); err != nil {
			slog.Error("grpc server failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(repo, log),
		keypad.New(uc, log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	slog.Info("application started", "http", httpAddr, "grpc", grpcAddr)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return grpcSrv.Stop(shutdownCtx)
}
