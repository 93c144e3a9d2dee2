package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
	"github.com/sweetshop/inventory-system/internal/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes stock audit events to a fixed set of workers using
// consistent hashing on the sweet id, guaranteeing per-sweet event ordering
// in the audit trail. It satisfies the inventory service's recorder hook.
type Dispatcher struct {
	workers []chan domain.StockEvent
	repo    ports.StockEventRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.StockEventRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.StockEvent, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.StockEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record sends an event to the worker responsible for its sweet id. The send
// never blocks the caller: when a worker channel is full the event is dropped
// and counted, trading audit completeness for inventory latency.
func (d *Dispatcher) Record(event domain.StockEvent) {
	i := d.shardIndex(event.SweetID)
	select {
	case d.workers[i] <- event:
		metrics.StockEventsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		metrics.StockEventsErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().
			Str("sweet_id", event.SweetID).
			Int("worker_id", i).
			Msg("stock event dropped, worker queue full")
	}
}

// shardIndex maps a sweet id deterministically to a worker index.
func (d *Dispatcher) shardIndex(sweetID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sweetID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.StockEvent) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.StockEventsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.repo.InsertEvent(ctx, &event); err != nil {
				metrics.StockEventsErrorsTotal.WithLabelValues("insert_failed").Inc()
				d.log.Error().Err(err).
					Str("sweet_id", event.SweetID).
					Int("worker_id", id).
					Msg("stock event persistence failed")
				continue
			}
			metrics.StockEventsPersistedTotal.WithLabelValues(event.Source).Inc()
		}
	}
}
