// Package metrics declares the prometheus collectors for account persistence.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reasons used with DroppedEntries.
const (
	ReasonMalformedBlob = "malformed_blob"
	ReasonInvalidEntry  = "invalid_entry"
)

// Operations used with StorageFailures.
const (
	OpLoad = "load"
	OpSave = "save"
)

var (
	// DroppedEntries counts stored data discarded while loading accounts.
	DroppedEntries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "accountkeeper_dropped_entries_total",
		Help: "Stored account data discarded during sanitizing load",
	}, []string{"reason"})

	// StorageFailures counts swallowed storage faults.
	StorageFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "accountkeeper_storage_failures_total",
		Help: "Key/value store faults ignored by account load and save",
	}, []string{"op"})

	// AccountsStored reports the size of the last saved collection.
	AccountsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "accountkeeper_accounts_stored",
		Help: "Number of accounts in the last successful save",
	})
)
