package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "mealgo",
	Subsystem: "store",
	Name:      "operations_total",
	Help:      "Facade operations by table, operation and result.",
}, []string{"table", "op", "result"})

// observe counts one facade call. err may be raw gorm output or already
// translated; both classify the same way.
func observe(table Table, op string, err error) {
	err = translate(err)
	result := "ok"
	switch {
	case err == nil:
	case IsNotFound(err):
		result = "not_found"
	default:
		result = "error"
	}
	operations.WithLabelValues(string(table), op, result).Inc()
}
