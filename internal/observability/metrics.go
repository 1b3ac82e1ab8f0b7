// Package observability provides Prometheus metrics for the content store.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PersistFailures counts storage writes that failed after the
	// in-memory mutation was applied, labeled by collection key.
	PersistFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soulforge_persist_failures_total",
		Help: "Storage writes that failed after the in-memory change was applied",
	}, []string{"collection"})

	// UnauthorizedMutations counts role-gate rejections per operation.
	UnauthorizedMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soulforge_unauthorized_mutations_total",
		Help: "Mutations rejected because the session role was insufficient",
	}, []string{"operation"})

	// MigrationFixups counts load-time migration rules that fired, so the
	// value-sniffing rules can eventually be retired with evidence.
	MigrationFixups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soulforge_migration_fixups_total",
		Help: "Load-time migration rules that modified persisted data",
	}, []string{"rule"})

	// LoginAttempts counts login outcomes.
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "soulforge_login_attempts_total",
		Help: "Login attempts by outcome",
	}, []string{"outcome"})
)
