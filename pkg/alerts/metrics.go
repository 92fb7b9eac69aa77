package alerts

import "github.com/prometheus/client_golang/prometheus"

const (
	passResultOK         = "ok"
	passResultCheckError = "check_failed"
	passResultReapError  = "reap_failed"
)

var (
	passesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alerts_passes_total",
			Help: "Total number of evaluation passes by result",
		},
		[]string{"result"},
	)
	alertsTriggeredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alerts_triggered_total",
			Help: "Total number of alerts found triggered",
		},
	)
	alertsReapedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alerts_reaped_total",
			Help: "Total number of triggered alerts deleted from the store",
		},
	)
	alertRowsSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "alerts_rows_skipped_total",
			Help: "Total number of incomplete alert rows skipped during evaluation",
		},
	)
	quoteFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alerts_quote_failures_total",
			Help: "Total number of failed quote fetches by kind",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(passesTotal)
	prometheus.MustRegister(alertsTriggeredTotal)
	prometheus.MustRegister(alertsReapedTotal)
	prometheus.MustRegister(alertRowsSkippedTotal)
	prometheus.MustRegister(quoteFailuresTotal)

	for _, result := range []string{passResultOK, passResultCheckError, passResultReapError} {
		passesTotal.WithLabelValues(result)
	}
}
