package geocode

import (
	"context"
	"sync"
	"time"

	"movelink/models"
	"movelink/utils"

	"go.uber.org/zap"
)

// FetchState is the lifecycle of one input field's suggestion lookup.
type FetchState string

const (
	StateIdle     FetchState = "idle"
	StatePending  FetchState = "pending"
	StateResolved FetchState = "resolved"
	StateFailed   FetchState = "failed"
)

// Result is what a Submit call eventually yields. Superseded results carry
// no suggestions: newer input arrived before this one resolved.
type Result struct {
	Query       string                 `json:"query"`
	State       FetchState             `json:"state"`
	Superseded  bool                   `json:"superseded,omitempty"`
	Suggestions []models.LocationPoint `json:"suggestions"`
}

type fieldEntry struct {
	timer  *time.Timer
	gen    uint64
	query  string
	state  FetchState
	waiter chan Result
}

// Debouncer coalesces suggestion lookups per input field: each field owns
// exactly one pending timer, cancelled and replaced on every new query, so
// only the query that survives the quiet interval reaches the provider.
// Responses are tagged with the query that triggered them and discarded
// when the field has moved on (last input wins, not last response).
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	searcher Searcher
	fields   map[string]*fieldEntry
	logger   *zap.Logger
	closed   bool
}

func NewDebouncer(searcher Searcher, interval time.Duration, logger *zap.Logger) *Debouncer {
	return &Debouncer{
		interval: interval,
		searcher: searcher,
		fields:   make(map[string]*fieldEntry),
		logger:   logger,
	}
}

// Submit registers new input for the field and returns a channel that
// receives exactly one Result: the suggestions for this query, or a
// superseded marker if newer input arrives first. Queries shorter than
// MinQueryLen resolve immediately to idle with no network call.
func (d *Debouncer) Submit(field, query string) <-chan Result {
	ch := make(chan Result, 1)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		ch <- Result{Query: query, State: StateIdle, Superseded: true}
		return ch
	}

	e, ok := d.fields[field]
	if !ok {
		e = &fieldEntry{state: StateIdle}
		d.fields[field] = e
	}

	// Newer input wins: cancel the pending timer and release the previous
	// waiter before it can deliver stale suggestions.
	d.supersedeLocked(e)

	e.gen++
	e.query = query

	if len(query) < MinQueryLen {
		e.state = StateIdle
		ch <- Result{Query: query, State: StateIdle, Suggestions: []models.LocationPoint{}}
		return ch
	}

	gen := e.gen
	e.state = StatePending
	e.waiter = ch
	e.timer = time.AfterFunc(d.interval, func() {
		d.fire(field, gen, query)
	})
	return ch
}

// fire runs once the quiet interval has elapsed without newer input.
func (d *Debouncer) fire(field string, gen uint64, query string) {
	ctx, cancel := context.WithTimeout(context.Background(), utils.GeocodeTimeout)
	defer cancel()

	suggestions, err := d.searcher.Search(ctx, query)

	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.fields[field]
	if !ok || e.gen != gen || e.query != query {
		// The field moved on while the request was in flight; the result
		// belongs to input that no longer exists.
		d.logger.Debug("discarding stale geocode response",
			zap.String("field", field), zap.String("query", query))
		return
	}

	res := Result{Query: query, State: StateResolved, Suggestions: suggestions}
	if err != nil {
		// Degrade to "no suggestions"; the field stays editable as free text.
		d.logger.Warn("geocode lookup failed", zap.String("query", query), zap.Error(err))
		res.State = StateFailed
		res.Suggestions = []models.LocationPoint{}
	}
	e.state = res.State
	if e.waiter != nil {
		e.waiter <- res
		e.waiter = nil
	}
	e.timer = nil
}

// State reports the field's current fetch state.
func (d *Debouncer) State(field string) FetchState {
	d.mu.Lock()
	defer d.mu.Unlock()
	if e, ok := d.fields[field]; ok {
		return e.state
	}
	return StateIdle
}

// CancelField drops the field's pending timer and waiter, e.g. when its
// session ends. An already-sent network request may still complete; its
// result is discarded by the staleness check in fire.
func (d *Debouncer) CancelField(field string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if e, ok := d.fields[field]; ok {
		d.supersedeLocked(e)
		delete(d.fields, field)
	}
}

// Close cancels every pending timer. No timer may fire a network call
// after teardown.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	for field, e := range d.fields {
		d.supersedeLocked(e)
		delete(d.fields, field)
	}
}

// supersedeLocked must be called with d.mu held.
func (d *Debouncer) supersedeLocked(e *fieldEntry) {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	if e.waiter != nil {
		e.waiter <- Result{Query: e.query, State: e.state, Superseded: true}
		e.waiter = nil
	}
	// Bump the generation so an in-flight response for the old query can
	// never match again.
	e.gen++
}
