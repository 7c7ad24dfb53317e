// Package metrics defines the Prometheus instruments for the expense ledger.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service-level Prometheus instruments.
type Metrics struct {
	ExpensesRecorded prometheus.Counter
	ExpensesRejected prometheus.Counter
	UsersRegistered  prometheus.Counter
	BalancePairs     prometheus.Gauge
}

// New registers the instruments with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ExpensesRecorded: factory.NewCounter(prometheus.CounterOpts{
			Name: "splitwise_expenses_recorded_total",
			Help: "Number of expenses accepted into the ledger.",
		}),
		ExpensesRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "splitwise_expenses_rejected_total",
			Help: "Number of expenses rejected by validation.",
		}),
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "splitwise_users_registered_total",
			Help: "Number of users added to the ledger.",
		}),
		BalancePairs: factory.NewGauge(prometheus.GaugeOpts{
			Name: "splitwise_balance_pairs",
			Help: "Number of user pairs with an outstanding debt.",
		}),
	}
}
