package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reorder_jobs_processed_total",
		Help: "Total number of job files routed to a terminal outcome folder.",
	},
		[]string{"outcome"},
	)

	JobsFatalTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reorder_jobs_fatal_total",
		Help: "Total number of jobs aborted by a fatal error and left in the inbox.",
	})

	ReordersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reorder_orders_created_total",
		Help: "Total number of replacement orders successfully created.",
	})

	CollaboratorErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reorder_collaborator_errors_total",
		Help: "Total number of errors returned by external collaborators.",
	},
		[]string{"operation"},
	)
)
