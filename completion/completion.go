// Package completion implements the generic "visit each distinct element of
// a work set exactly once" worklist algorithm shared by curveinfo's state
// exploration and state-pair exploration passes.
//
// It generalizes the queue/visited-map/hook shape of a breadth-first walker
// over an explicit graph (vertices + neighbor lookup) to an implicit graph
// defined purely by an expansion function: callers provide seeds and an
// Expand function computing the successors of any element, and Run visits
// the transitive closure exactly once per distinct element, in discovery
// order.
package completion

import "context"

// Option configures a Run invocation.
type Option[K comparable] func(*config[K])

type config[K comparable] struct {
	ctx       context.Context
	onEnqueue func(K)
	onVisit   func(K) error
	onDequeue func(K)
}

func defaultConfig[K comparable]() config[K] {
	return config[K]{
		ctx:       context.Background(),
		onEnqueue: func(K) {},
		onVisit:   func(K) error { return nil },
		onDequeue: func(K) {},
	}
}

// WithContext makes Run cooperatively cancellable; absence means it runs to
// completion unconditionally, consistent with the core's single-threaded,
// synchronous concurrency model.
func WithContext[K comparable](ctx context.Context) Option[K] {
	if ctx == nil {
		panic("completion: WithContext requires a non-nil context.Context")
	}
	return func(c *config[K]) { c.ctx = ctx }
}

// WithOnEnqueue registers a callback invoked the first time an element is
// discovered (added to the work set), before it is visited.
func WithOnEnqueue[K comparable](f func(K)) Option[K] {
	if f == nil {
		panic("completion: WithOnEnqueue requires a non-nil callback")
	}
	return func(c *config[K]) { c.onEnqueue = f }
}

// WithOnVisit registers a callback invoked when an element is popped and
// processed. Returning a non-nil error aborts Run with that error.
func WithOnVisit[K comparable](f func(K) error) Option[K] {
	if f == nil {
		panic("completion: WithOnVisit requires a non-nil callback")
	}
	return func(c *config[K]) { c.onVisit = f }
}

// WithOnDequeue registers a callback invoked when an element is popped,
// before OnVisit runs.
func WithOnDequeue[K comparable](f func(K)) Option[K] {
	if f == nil {
		panic("completion: WithOnDequeue requires a non-nil callback")
	}
	return func(c *config[K]) { c.onDequeue = f }
}

// Result records the outcome of a completed Run.
type Result[K comparable] struct {
	// Order holds every distinct element in first-visit order.
	Order []K
	// Visited is the full set of distinct elements discovered.
	Visited map[K]bool
}

// Run visits every element reachable from seeds via expand, exactly once
// each, in discovery (FIFO) order. expand(k) returns the successors of k;
// successors already visited are silently skipped.
//
// Complexity: O(V + E) where V is the number of distinct elements and E the
// total number of successor edges produced by expand.
func Run[K comparable](seeds []K, expand func(K) []K, opts ...Option[K]) (*Result[K], error) {
	cfg := defaultConfig[K]()
	for _, opt := range opts {
		opt(&cfg)
	}

	visited := make(map[K]bool, len(seeds))
	queue := make([]K, 0, len(seeds))
	res := &Result[K]{Visited: visited}

	enqueue := func(k K) {
		visited[k] = true
		cfg.onEnqueue(k)
		queue = append(queue, k)
	}
	for _, s := range seeds {
		if !visited[s] {
			enqueue(s)
		}
	}

	for len(queue) > 0 {
		select {
		case <-cfg.ctx.Done():
			return res, cfg.ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		cfg.onDequeue(item)

		if err := cfg.onVisit(item); err != nil {
			return res, err
		}
		res.Order = append(res.Order, item)

		for _, next := range expand(item) {
			if !visited[next] {
				enqueue(next)
			}
		}
	}
	return res, nil
}
