package batch

import (
	"context"

	"go.uber.org/zap"

	"github.com/omsops/reorder-batch/internal/metrics"
	"github.com/omsops/reorder-batch/internal/reorder"
)

// Processor runs one job to a terminal outcome. A returned error means the
// job is fatally aborted and its file must stay in the inbox.
type Processor interface {
	Process(ctx context.Context, job *reorder.Job) (reorder.Outcome, error)
}

// Runner walks the inbox sequentially: read a job file, run the pipeline,
// route the file, record the result. A fatal job never halts the batch; its
// file is left in place for a manual re-run.
type Runner struct {
	dir      string
	pipeline Processor
	router   *Router
	results  *ResultWriter
	audit    *AuditPublisher
	logger   *zap.Logger
}

func NewRunner(
	dir string,
	pipeline Processor,
	router *Router,
	results *ResultWriter,
	audit *AuditPublisher,
	logger *zap.Logger,
) *Runner {
	return &Runner{
		dir:      dir,
		pipeline: pipeline,
		router:   router,
		results:  results,
		audit:    audit,
		logger:   logger,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	files, err := ListJobs(r.dir)
	if err != nil {
		return err
	}

	r.logger.Info("starting batch", zap.String("dir", r.dir), zap.Int("jobs", len(files)))

	for _, file := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		job, err := reorder.ReadJob(file)
		if err != nil {
			metrics.JobsFatalTotal.Inc()
			r.logger.Error("unreadable job file, leaving in inbox", zap.String("file", file), zap.Error(err))
			continue
		}

		r.logger.Info("processing re-order",
			zap.String("file", file), zap.String("order", job.OrderNumber))

		outcome, err := r.pipeline.Process(ctx, job)
		if err != nil {
			metrics.JobsFatalTotal.Inc()
			r.logger.Error("job fatally aborted, leaving file in inbox",
				zap.String("file", file), zap.String("order", job.OrderNumber), zap.Error(err))
			continue
		}

		if outcome.Success() {
			if err := r.results.Append(job.OrderNumber, outcome.NewOrderNumber, outcome.Skus); err != nil {
				r.logger.Error("failed to append result row",
					zap.String("order", job.OrderNumber), zap.Error(err))
			}
		}

		if err := r.router.Route(file, outcome.Folder); err != nil {
			metrics.JobsFatalTotal.Inc()
			r.logger.Error("failed to route job file", zap.String("file", file), zap.Error(err))
			continue
		}
		metrics.JobsProcessedTotal.WithLabelValues(string(outcome.Folder)).Inc()

		if err := r.audit.Publish(ctx, file, job, outcome); err != nil {
			r.logger.Error("failed to publish audit event",
				zap.String("order", job.OrderNumber), zap.Error(err))
		}

		r.logger.Info("job routed",
			zap.String("file", file),
			zap.String("order", job.OrderNumber),
			zap.String("outcome", string(outcome.Folder)),
			zap.String("gate", string(outcome.Gate)))
	}

	return nil
}
