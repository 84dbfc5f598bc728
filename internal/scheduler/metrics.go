package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "autoorder_runs_total",
		Help: "Completed scheduler runs.",
	})
	runFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "autoorder_run_failures_total",
		Help: "Scheduler runs aborted before scanning any customer.",
	})
	ordersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "autoorder_orders_created_total",
		Help: "Orders created by the scheduler.",
	})
	dateFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "autoorder_date_failures_total",
		Help: "Candidate dates that failed to persist.",
	})
)
