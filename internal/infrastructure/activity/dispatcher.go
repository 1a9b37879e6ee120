package activity

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/promobeats/backoffice/internal/api/metrics"
	"github.com/promobeats/backoffice/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Actions recorded in the audit trail.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Record is one audit trail entry.
type Record struct {
	Action     string
	EntityType string
	EntityID   string
	Before     any
	After      any
	At         time.Time
}

// Sink receives records after dispatch.
type Sink interface {
	Write(ctx context.Context, rec Record) error
}

// Dispatcher fans records out to a fixed set of workers using consistent
// hashing on the entity, so records for the same entity keep their order.
// It implements ports.ActivityLogger; when a shard's buffer is full the
// record is dropped instead of stalling the business operation.
type Dispatcher struct {
	workers []chan Record
	sink    Sink
	clock   ports.Clock
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink Sink, clk ports.Clock, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan Record, numWorkers),
		sink:    sink,
		clock:   clk,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan Record, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

func (d *Dispatcher) LogCreate(_ context.Context, entityType, id string, after any) {
	d.enqueue(Record{Action: ActionCreate, EntityType: entityType, EntityID: id, After: after, At: d.clock.Now()})
}

func (d *Dispatcher) LogUpdate(_ context.Context, entityType, id string, before, after any) {
	d.enqueue(Record{Action: ActionUpdate, EntityType: entityType, EntityID: id, Before: before, After: after, At: d.clock.Now()})
}

func (d *Dispatcher) LogDelete(_ context.Context, entityType, id string, before any) {
	d.enqueue(Record{Action: ActionDelete, EntityType: entityType, EntityID: id, Before: before, At: d.clock.Now()})
}

func (d *Dispatcher) enqueue(rec Record) {
	ch := d.workers[d.shardIndex(rec.EntityType+":"+rec.EntityID)]
	select {
	case ch <- rec:
	default:
		metrics.ActivityDroppedTotal.Inc()
		d.log.Warn().
			Str("entity_type", rec.EntityType).
			Str("entity_id", rec.EntityID).
			Msg("activity buffer full, record dropped")
	}
}

// shardIndex maps an entity key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan Record) {
	for {
		select {
		case <-ctx.Done():
			return
		case rec, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Write(ctx, rec); err != nil {
				d.log.Error().Err(err).
					Str("entity_type", rec.EntityType).
					Str("entity_id", rec.EntityID).
					Int("worker_id", id).
					Msg("activity record write failed")
				continue
			}
			metrics.ActivityRecordsTotal.WithLabelValues(rec.Action).Inc()
		}
	}
}

var _ ports.ActivityLogger = (*Dispatcher)(nil)
