// Package bus moves filter workloads onto a background worker goroutine and
// delivers results back through a throttled publish/subscribe channel.
package bus

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"mendel-server/filter"
	"mendel-server/models"
)

const DEFAULT_THROTTLE_WINDOW = 120 * time.Millisecond

// requestQueueSize bounds the worker inbox; a full inbox drops the request
// (the caller degrades to its previous state, matching creation failure).
const requestQueueSize = 64

// FilterBus owns a single lazily-started worker goroutine that runs the
// filter+rank pass, and fans results out to subscribers with latest-wins
// throttling. Responses are not FIFO relative to requests: only the newest
// result inside a throttle window is delivered.
type FilterBus struct {
	engine *filter.Engine
	window time.Duration
	logger *zap.SugaredLogger

	mu         sync.Mutex
	requests   chan models.FilterRequest
	done       chan struct{}
	started    bool
	disposed   bool
	listeners  map[int]func(models.FilterResult)
	listenerID int

	throttle *coalescer
}

// NewFilterBus constructs a bus with the given throttle window; window <= 0
// falls back to the default.
func NewFilterBus(engine *filter.Engine, window time.Duration, logger *zap.SugaredLogger) *FilterBus {
	if window <= 0 {
		window = DEFAULT_THROTTLE_WINDOW
	}
	b := &FilterBus{
		engine:    engine,
		window:    window,
		logger:    logger,
		listeners: make(map[int]func(models.FilterResult)),
	}
	b.throttle = newCoalescer(window, b.publish)
	return b
}

// PostRequest enqueues a filter request, starting the worker on first use.
// A disposed bus or a full inbox makes this a silent no-op: subscribers
// simply receive no update for the dropped request.
func (b *FilterBus) PostRequest(request models.FilterRequest) {
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		return
	}
	if !b.started {
		b.requests = make(chan models.FilterRequest, requestQueueSize)
		b.done = make(chan struct{})
		b.started = true
		go b.workerLoop(b.requests, b.done)
	}
	requests := b.requests
	b.mu.Unlock()

	select {
	case requests <- request:
	default:
		b.logger.Warnf("[FilterBus] Request queue full, dropping request id=%s", request.ID)
	}
}

// Subscribe registers a listener for filter results and returns its
// unsubscribe function. Multiple concurrent subscribers are supported.
func (b *FilterBus) Subscribe(listener func(models.FilterResult)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listenerID++
	id := b.listenerID
	b.listeners[id] = listener

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}

// Dispose stops the worker, cancels any pending throttled delivery and
// drops all listeners. Idempotent; a disposed bus ignores further requests.
func (b *FilterBus) Dispose() {
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		return
	}
	b.disposed = true
	if b.started {
		close(b.done)
	}
	b.listeners = make(map[int]func(models.FilterResult))
	b.mu.Unlock()

	b.throttle.Stop()
}

func (b *FilterBus) workerLoop(requests <-chan models.FilterRequest, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case request := <-requests:
			result := b.run(request)
			b.throttle.Offer(result)
		}
	}
}

// run executes one filter+rank pass. A panic anywhere in the pass is
// recovered and answered with the original, unfiltered input set, so every
// request produces a result message even when degraded.
func (b *FilterBus) run(request models.FilterRequest) (result models.FilterResult) {
	result = models.FilterResult{
		Kind: models.KIND_FILTER_RESTAURANTS_RESULT,
		ID:   request.ID,
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Errorf("[FilterBus] Filter pass failed for request id=%s, returning unfiltered set: %v", request.ID, r)
			result.Restaurants = request.Restaurants
		}
	}()

	filtered := b.engine.Apply(
		request.Restaurants,
		request.SearchQuery,
		request.ActiveFilters,
		request.UserLocation,
	)
	result.Restaurants = filter.RankByDistance(filtered, request.UserLocation)
	return result
}

func (b *FilterBus) publish(result models.FilterResult) {
	b.mu.Lock()
	snapshot := make([]func(models.FilterResult), 0, len(b.listeners))
	for _, listener := range b.listeners {
		snapshot = append(snapshot, listener)
	}
	b.mu.Unlock()

	for _, listener := range snapshot {
		listener(result)
	}
}
