package ledger

import "github.com/prometheus/client_golang/prometheus"

var transactionsCreated = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_transactions_created_total",
		Help: "How many transactions have been created, partitioned by origin.",
	},
	[]string{"origin"},
)

var transactionsDeclined = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "ledger_transactions_declined_total",
		Help: "How many transactions have been declined because of the balance.",
	},
)

var categoriesCreated = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "ledger_categories_created_total",
		Help: "How many categories have been created during category resolution.",
	},
)

// Collectors returns the Prometheus collectors of the ledger.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		transactionsCreated,
		transactionsDeclined,
		categoriesCreated,
	}
}
