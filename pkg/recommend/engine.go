// Package recommend filters a food list down to items suitable for every
// condition a user has and returns a bounded random sample of the survivors.
package recommend

import (
	"context"
	"math/rand"
	"sync"
)

// DefaultTopN bounds how many recommendations are returned when the caller
// does not ask for a specific count.
const DefaultTopN = 5

// SuitabilityChecker answers the per-pair suitability question; the concrete
// implementation is the pre-trained classifier predictor.
type SuitabilityChecker interface {
	Suitable(food, condition string) (bool, error)
}

// VerdictCache memoizes classifier verdicts. The classifier is a pure
// function of its (food, condition) pair, so cached verdicts never go stale.
// Cache failures are silent: a miss just means computing the verdict again.
type VerdictCache interface {
	Get(ctx context.Context, food, condition string) (verdict bool, ok bool)
	Set(ctx context.Context, food, condition string, verdict bool)
}

// Engine selects universally suitable foods. The random source is injected so
// tests can seed it and assert on membership deterministically.
type Engine struct {
	checker SuitabilityChecker
	cache   VerdictCache

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand overrides the random source used for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithVerdictCache attaches a verdict memo cache.
func WithVerdictCache(cache VerdictCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// NewEngine builds an engine around a suitability checker.
func NewEngine(checker SuitabilityChecker, opts ...Option) *Engine {
	e := &Engine{
		checker: checker,
		rng:     rand.New(rand.NewSource(rand.Int63())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend returns up to topN foods that are suitable for every condition in
// the set, in uniformly random order. Fewer than topN survivors are returned
// as-is; none yields an empty slice.
//
// Precondition: conditions must be non-empty. With no conditions the
// universal-AND would be vacuously true and everything would be recommended;
// the "no conditions means no recommendations" policy is enforced by the
// caller before invoking the engine, mirroring the upstream form guard.
func (e *Engine) Recommend(ctx context.Context, foods []string, conditions []string, topN int) ([]string, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	var suitable []string
	for _, food := range foods {
		ok, err := e.universallySuitable(ctx, food, conditions)
		if err != nil {
			return nil, err
		}
		if ok {
			suitable = append(suitable, food)
		}
	}

	e.mu.Lock()
	e.rng.Shuffle(len(suitable), func(i, j int) {
		suitable[i], suitable[j] = suitable[j], suitable[i]
	})
	e.mu.Unlock()

	if len(suitable) > topN {
		suitable = suitable[:topN]
	}
	return suitable, nil
}

// universallySuitable ANDs the verdicts across conditions, short-circuiting
// on the first unsuitable pair.
func (e *Engine) universallySuitable(ctx context.Context, food string, conditions []string) (bool, error) {
	for _, condition := range conditions {
		verdict, err := e.verdict(ctx, food, condition)
		if err != nil {
			return false, err
		}
		if !verdict {
			return false, nil
		}
	}
	return true, nil
}

func (e *Engine) verdict(ctx context.Context, food, condition string) (bool, error) {
	if e.cache != nil {
		if verdict, ok := e.cache.Get(ctx, food, condition); ok {
			return verdict, nil
		}
	}

	verdict, err := e.checker.Suitable(food, condition)
	if err != nil {
		return false, err
	}

	if e.cache != nil {
		e.cache.Set(ctx, food, condition, verdict)
	}
	return verdict, nil
}
