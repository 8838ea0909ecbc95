// Package metrics exposes Prometheus counters for registry outcomes.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Registration methods.
const (
	MethodEmail = "email"
	MethodPhone = "phone"
)

// Outcome labels.
const (
	ResultOK        = "ok"
	ResultDuplicate = "duplicate"
	ResultInvalid   = "invalid"
	ResultError     = "error"
)

type Metrics struct {
	registrations *prometheus.CounterVec
	logins        *prometheus.CounterVec
	accessCodes   prometheus.Counter
	imports       *prometheus.CounterVec
}

// New creates the counters and registers them with reg. A nil reg leaves
// them unregistered, which is convenient in tests.
func New(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "User registrations by method and result.",
		}, []string{"method", "result"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by success.",
		}, []string{"success"}),
		accessCodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_codes_total",
			Help:      "Access codes regenerated on request.",
		}),
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imports_total",
			Help:      "Imported CSV rows by result.",
		}, []string{"result"}),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.registrations, m.logins, m.accessCodes, m.imports} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Noop returns unregistered counters.
func Noop() *Metrics {
	m, _ := New("", nil)
	return m
}

func (m *Metrics) Registration(method, result string) {
	m.registrations.WithLabelValues(method, result).Inc()
}

func (m *Metrics) Login(success bool) {
	m.logins.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func (m *Metrics) AccessCode() {
	m.accessCodes.Inc()
}

func (m *Metrics) Import(result string) {
	m.imports.WithLabelValues(result).Inc()
}
