package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-records/library/config"
	"github.com/Astemirdum/library-records/library/internal/events"
	"github.com/Astemirdum/library-records/library/internal/handler"
	"github.com/Astemirdum/library-records/library/internal/repository"
	"github.com/Astemirdum/library-records/library/internal/server"
	"github.com/Astemirdum/library-records/library/internal/service"
	"github.com/Astemirdum/library-records/library/migrations"
	"github.com/Astemirdum/library-records/pkg/database"
	"github.com/Astemirdum/library-records/pkg/kafka"
	"github.com/Astemirdum/library-records/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// Run serves the HTTP API until SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	log, closeLog, err := logger.NewLogger(cfg.Log, "library")
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	defer closeLog()
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repository")
	}

	pub, closer, err := newPublisher(cfg.Kafka, log)
	if err != nil {
		return err
	}
	defer closer.Close()

	svc := service.NewService(repo, pub, log)
	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server start ON: ", zap.String("addr", srv.Addr()),
			zap.String("db", cfg.Database.Driver))
		return srv.Run()
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("Graceful shutdown")
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	if err = g.Wait(); err != nil {
		return err
	}
	log.Info("Graceful shutdown finished")
	return nil
}

// Migrate applies the embedded migrations and exits.
func Migrate(cfg config.Config) error {
	log, closeLog, err := logger.NewLogger(cfg.Log, "library")
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	defer closeLog()
	defer log.Sync() //nolint:errcheck

	db, err := database.NewDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "migrate")
	}
	log.Info("migrations applied", zap.String("driver", cfg.Database.Driver))
	return db.Close()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newPublisher(cfg kafka.Config, log *zap.Logger) (events.Publisher, io.Closer, error) {
	if !cfg.Enabled() {
		log.Info("event publishing disabled")
		return events.NewNopPublisher(), nopCloser{}, nil
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kafka.NewProducer")
	}
	pub := events.NewPublisher(producer, cfg.Topic, log)
	return pub, pub, nil
}
