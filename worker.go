package gridastar

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Request asks a Pool for one path.
type Request struct {
	From Position
	To   Position
}

// Route is the outcome of one Request. Nodes is a copy owned by the caller.
type Route[NodeType Node] struct {
	Request Request
	Result  Result
	Nodes   []NodeType
}

// PoolOptions defines parameters for a Pool.
type PoolOptions struct {
	NumberOfWorkers int
	FinderOptions   []Option
}

// PoolOption is a function that modifies PoolOptions.
type PoolOption func(*PoolOptions)

// WithWorkers specifies how many goroutines, each with its own Finder,
// serve requests.
func WithWorkers(numberOfWorkers int) PoolOption {
	return func(options *PoolOptions) { options.NumberOfWorkers = numberOfWorkers }
}

// WithFinderOptions passes options to every Finder the pool creates.
func WithFinderOptions(options ...Option) PoolOption {
	return func(poolOptions *PoolOptions) {
		poolOptions.FinderOptions = append(poolOptions.FinderOptions, options...)
	}
}

// worker pairs a Finder with the Path it writes into.
type worker[NodeType Node] struct {
	finder *Finder[NodeType]
	path   *Path[NodeType]
}

// Pool runs batches of searches in parallel over one shared, read-only grid.
// Each worker owns a Finder and a Path, so no search state is shared.
// Run calls must not overlap.
type Pool[NodeType Node] struct {
	workers []worker[NodeType]
	logger  *slog.Logger
}

// NewPool creates a pool whose paths hold at most pathCapacity nodes.
func NewPool[NodeType Node](
	rows, columns uint8,
	nodes []NodeType,
	pathCapacity int,
	options ...PoolOption,
) (*Pool[NodeType], error) {
	poolOptions := PoolOptions{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&poolOptions)
	}
	if poolOptions.NumberOfWorkers <= 0 {
		return nil, fmt.Errorf("new pool with %d workers: %w", poolOptions.NumberOfWorkers, ErrInvalidCapacity)
	}
	if pathCapacity <= 0 {
		return nil, fmt.Errorf("new pool with path capacity %d: %w", pathCapacity, ErrInvalidCapacity)
	}

	pool := &Pool[NodeType]{
		workers: make([]worker[NodeType], poolOptions.NumberOfWorkers),
	}
	for i := range pool.workers {
		finder, err := NewFinder(rows, columns, nodes, poolOptions.FinderOptions...)
		if err != nil {
			return nil, fmt.Errorf("new pool worker %d: %w", i, err)
		}
		pool.workers[i] = worker[NodeType]{finder: finder, path: NewPath[NodeType](pathCapacity)}
	}
	pool.logger = pool.workers[0].finder.logger
	return pool, nil
}

// Workers returns the number of workers.
func (p *Pool[NodeType]) Workers() int { return len(p.workers) }

// Run answers every request and returns routes in request order. If ctx is
// cancelled before all requests are served, Run returns ctx.Err(). Requests
// are checked against the grid first; none run if any is out of bounds.
func (p *Pool[NodeType]) Run(ctx context.Context, requests []Request) ([]Route[NodeType], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	finder := p.workers[0].finder
	for i, request := range requests {
		if !finder.contains(request.From) || !finder.contains(request.To) {
			return nil, fmt.Errorf("request %d from %s to %s on %dx%d grid: %w",
				i, request.From, request.To, finder.rows, finder.columns, ErrOutOfBounds)
		}
	}
	routes := make([]Route[NodeType], len(requests))
	if len(requests) == 0 {
		return routes, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	taskChannel := make(chan int)

	group.Go(func() error {
		defer close(taskChannel)
		for i := range requests {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case taskChannel <- i:
			}
		}
		return nil
	})

	for i := range p.workers {
		w := p.workers[i]
		group.Go(func() error {
			for {
				select {
				case <-groupCtx.Done():
					return groupCtx.Err()
				case index, ok := <-taskChannel:
					if !ok {
						return nil
					}
					request := requests[index]
					result := w.finder.Find(request.From, request.To, w.path)
					nodes := make([]NodeType, 0, w.path.Len())
					for _, node := range w.path.All() {
						nodes = append(nodes, node)
					}
					routes[index] = Route[NodeType]{Request: request, Result: result, Nodes: nodes}
				}
			}
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	p.logger.Debug("batch complete",
		slog.Int("requests", len(requests)),
		slog.Int("workers", len(p.workers)))
	return routes, nil
}
