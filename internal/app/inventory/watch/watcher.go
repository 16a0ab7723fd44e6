package watch

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	contracts "github.com/JasonRenBang/staff-rental-service/internal/app/inventory/contracts"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/domain"
	"github.com/JasonRenBang/staff-rental-service/internal/app/inventory/dto"
)

// Stream identifies one of the fixed snapshot queries clients can follow.
type Stream string

const (
	StreamProducts      Stream = "products"
	StreamOpenRentals   Stream = "rentals_open"
	StreamClosedRentals Stream = "rentals_closed"
)

// snapshotLimit bounds the result set delivered per snapshot.
const snapshotLimit = 500

// Snapshot carries the full current result set of one stream. Exactly one
// of Products/Rentals is populated, depending on the stream.
type Snapshot struct {
	Stream   Stream            `json:"stream"`
	Products []*dto.ProductDTO `json:"products,omitempty"`
	Rentals  []*dto.RentalDTO  `json:"rentals,omitempty"`
}

// Subscription delivers snapshots on C until Unsubscribe is called.
// The current snapshot is delivered promptly after subscribing, then again
// whenever the underlying result set changes.
type Subscription struct {
	C      <-chan Snapshot
	cancel func()
}

func (s *Subscription) Unsubscribe() {
	s.cancel()
}

type subscriber struct {
	stream Stream
	ch     chan Snapshot
}

// Watcher polls the read model's fixed queries and fans complete result-set
// snapshots out to subscribers whenever they change. It is the only
// in-process cache of store state; repositories stay stateless.
type Watcher struct {
	readModel contracts.ReadModel
	interval  time.Duration
	log       *zap.Logger

	mu     sync.Mutex
	nextID int
	subs   map[int]*subscriber
	last   map[Stream]string
}

func New(readModel contracts.ReadModel, interval time.Duration, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		readModel: readModel,
		interval:  interval,
		log:       log,
		subs:      make(map[int]*subscriber),
		last:      make(map[Stream]string),
	}
}

// Subscribe registers interest in a stream. The next poll delivers the
// current snapshot; a slow consumer only ever misses intermediate
// snapshots, never the latest one.
func (w *Watcher) Subscribe(stream Stream) *Subscription {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++

	sub := &subscriber{
		stream: stream,
		ch:     make(chan Snapshot, 1),
	}
	w.subs[id] = sub

	// Force re-delivery on the next poll, even if the result set is
	// unchanged since the previous one.
	delete(w.last, stream)

	return &Subscription{
		C: sub.ch,
		cancel: func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			delete(w.subs, id)
		},
	}
}

// Run polls until ctx is cancelled. Streams without subscribers are not
// queried.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.poll(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	for _, stream := range w.activeStreams() {
		snap, err := w.fetch(ctx, stream)
		if err != nil {
			w.log.Warn("snapshot query failed",
				zap.String("stream", string(stream)), zap.Error(err))
			continue
		}

		encoded, err := json.Marshal(snap)
		if err != nil {
			w.log.Warn("snapshot encode failed",
				zap.String("stream", string(stream)), zap.Error(err))
			continue
		}

		w.mu.Lock()
		if w.last[stream] == string(encoded) {
			w.mu.Unlock()
			continue
		}
		w.last[stream] = string(encoded)
		for _, sub := range w.subs {
			if sub.stream != stream {
				continue
			}
			// Replace a stale undelivered snapshot instead of blocking.
			select {
			case <-sub.ch:
			default:
			}
			sub.ch <- snap
		}
		w.mu.Unlock()
	}
}

func (w *Watcher) activeStreams() []Stream {
	w.mu.Lock()
	defer w.mu.Unlock()

	seen := make(map[Stream]bool)
	var out []Stream
	for _, sub := range w.subs {
		if !seen[sub.stream] {
			seen[sub.stream] = true
			out = append(out, sub.stream)
		}
	}
	return out
}

func (w *Watcher) fetch(ctx context.Context, stream Stream) (Snapshot, error) {
	switch stream {
	case StreamProducts:
		products, err := w.readModel.ListProducts(ctx, snapshotLimit, 0)
		if err != nil {
			return Snapshot{}, err
		}
		return Snapshot{Stream: stream, Products: products}, nil
	case StreamOpenRentals:
		rentals, err := w.readModel.ListRentals(ctx, string(domain.RentalStatusOpen), snapshotLimit, 0)
		if err != nil {
			return Snapshot{}, err
		}
		return Snapshot{Stream: stream, Rentals: rentals}, nil
	default:
		rentals, err := w.readModel.ListRentals(ctx, string(domain.RentalStatusClosed), snapshotLimit, 0)
		if err != nil {
			return Snapshot{}, err
		}
		return Snapshot{Stream: stream, Rentals: rentals}, nil
	}
}
