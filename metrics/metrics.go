// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric names
const (
	MetricVotesAdmitted  = "crowncast_votes_admitted_total"
	MetricVotesRejected  = "crowncast_votes_rejected_total"
	MetricLedgerWipes    = "crowncast_ledger_wipes_total"
	MetricConfigUpdates  = "crowncast_config_updates_total"
	MetricInternalErrors = "crowncast_internal_errors_total"
)

// Service holds the service counters. One instance is shared by all
// handlers; a nil *Service is a no-op so tests can skip wiring it.
type Service struct {
	votesAdmitted  prometheus.Counter
	votesRejected  *prometheus.CounterVec
	ledgerWipes    prometheus.Counter
	configUpdates  prometheus.Counter
	internalErrors prometheus.Counter
}

// NewService registers the counters on a fresh registry and returns the
// service plus the /metrics handler for that registry.
func NewService() (*Service, http.Handler) {
	reg := prometheus.NewRegistry()

	s := &Service{
		votesAdmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricVotesAdmitted,
			Help: "Votes admitted to the ledger",
		}),
		votesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricVotesRejected,
			Help: "Vote attempts rejected, by reason code",
		}, []string{"reason"}),
		ledgerWipes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricLedgerWipes,
			Help: "Administrator ledger wipes",
		}),
		configUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricConfigUpdates,
			Help: "Successful system configuration updates",
		}),
		internalErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricInternalErrors,
			Help: "Requests that failed with an internal error",
		}),
	}

	reg.MustRegister(s.votesAdmitted, s.votesRejected, s.ledgerWipes, s.configUpdates, s.internalErrors)

	return s, promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func (s *Service) VoteAdmitted() {
	if s != nil {
		s.votesAdmitted.Inc()
	}
}

func (s *Service) VoteRejected(reason string) {
	if s != nil {
		s.votesRejected.WithLabelValues(reason).Inc()
	}
}

func (s *Service) LedgerWiped() {
	if s != nil {
		s.ledgerWipes.Inc()
	}
}

func (s *Service) ConfigUpdated() {
	if s != nil {
		s.configUpdates.Inc()
	}
}

func (s *Service) InternalError() {
	if s != nil {
		s.internalErrors.Inc()
	}
}
