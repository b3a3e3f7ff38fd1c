package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/omsops/reorder-batch/internal/batch"
	"github.com/omsops/reorder-batch/internal/config"
	"github.com/omsops/reorder-batch/internal/db"
	"github.com/omsops/reorder-batch/internal/kafka"
	"github.com/omsops/reorder-batch/internal/logger"
	"github.com/omsops/reorder-batch/internal/oms"
	"github.com/omsops/reorder-batch/internal/reorder"
	"github.com/omsops/reorder-batch/internal/repository/postgresql"
	"github.com/omsops/reorder-batch/internal/stock"
	"github.com/omsops/reorder-batch/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zlog := logger.New()
	defer zlog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal("config load failed", zap.Error(err))
	}

	database, err := db.NewDb(ctx, cfg.DSN())
	if err != nil {
		zlog.Fatal("database init failed", zap.Error(err))
	}
	defer database.Close()

	store := storage.NewStore(
		postgresql.NewRefundRepo(database),
		postgresql.NewOrderDetailRepo(database),
		postgresql.NewOrderLogRepo(database),
	)

	results, err := batch.NewResultWriter(cfg.ResultCSV)
	if err != nil {
		zlog.Fatal("result csv init failed", zap.Error(err))
	}
	defer results.Close()

	router, err := batch.NewRouter(cfg.BatchDir)
	if err != nil {
		zlog.Fatal("batch dir init failed", zap.Error(err))
	}

	var producer kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewWriterProducer(cfg.KafkaBrokers)
	} else {
		producer = kafka.NewConsoleProducer()
	}
	defer producer.Close()

	pipeline := reorder.NewPipeline(
		oms.NewClient(cfg.OMSEndpoint, cfg.OMSAPIKey),
		stock.NewClient(cfg.StockEndpoint, cfg.StockAPIKey),
		store,
		store,
		stock.NewAllocator(),
		zlog,
	)

	runner := batch.NewRunner(
		cfg.BatchDir,
		pipeline,
		router,
		results,
		batch.NewAuditPublisher(producer, cfg.KafkaAuditTopic),
		zlog,
	)

	g, ctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddr != "" {
		srv := metricsServer(cfg.MetricsAddr)
		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer cancel()
		return runner.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		zlog.Fatal("batch run failed", zap.Error(err))
	}

	log.Println("Batch run finished")
}

func metricsServer(addr string) *http.Server {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}
