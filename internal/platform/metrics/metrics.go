package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Commands instrumenta los comandos del dispatcher.
type Commands struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewCommands registra los collectors en reg. Si reg es nil, quedan sin registrar (tests).
func NewCommands(reg prometheus.Registerer) *Commands {
	c := &Commands{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "days_since",
			Name:      "commands_total",
			Help:      "Commands handled, by command and outcome",
		}, []string{"command", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "days_since",
			Name:      "command_duration_seconds",
			Help:      "Time spent handling a command",
			Buckets:   prometheus.DefBuckets,
		}, []string{"command"}),
	}
	if reg != nil {
		reg.MustRegister(c.total, c.duration)
	}
	return c
}

func (c *Commands) Observe(command, outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.total.WithLabelValues(command, outcome).Inc()
	c.duration.WithLabelValues(command).Observe(d.Seconds())
}
