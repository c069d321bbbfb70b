package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StorageErrors counts blob backend errors by operation type.
	StorageErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sharebite_storage_error_total",
		Help: "Total number of blob storage errors by operation type",
	}, []string{"operation"})

	// StoreMutations counts entity store mutations by entity and operation.
	StoreMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sharebite_store_mutations_total",
		Help: "Total number of entity store mutations by entity and operation",
	}, []string{"entity", "operation"})

	// CollectionSaves counts full-collection writes to the blob store.
	CollectionSaves = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sharebite_collection_saves_total",
		Help: "Total number of full-collection persistence writes by collection key",
	}, []string{"key"})

	// CollectionSize is the gauge of in-memory records per collection.
	CollectionSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sharebite_collection_size",
		Help: "Number of records currently held per collection",
	}, []string{"collection"})
)
