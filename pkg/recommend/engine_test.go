package recommend

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	// suitable holds "food|condition" pairs the checker approves.
	suitable map[string]bool
	err      error
	calls    int
}

func (s *stubChecker) Suitable(food, condition string) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return s.suitable[food+"|"+condition], nil
}

type mapCache struct {
	mu sync.Mutex
	m  map[string]bool
}

func newMapCache() *mapCache { return &mapCache{m: map[string]bool{}} }

func (c *mapCache) Get(_ context.Context, food, condition string) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[food+"|"+condition]
	return v, ok
}

func (c *mapCache) Set(_ context.Context, food, condition string, verdict bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[food+"|"+condition] = verdict
}

func TestRecommendFiltersUniversally(t *testing.T) {
	checker := &stubChecker{suitable: map[string]bool{
		"Rice|Diabetes":      true,
		"Rice|Hypertension":  true,
		"Dal|Diabetes":       true,
		"Salad|Diabetes":     true,
		"Salad|Hypertension": true,
	}}
	engine := NewEngine(checker, WithRand(rand.New(rand.NewSource(1))))

	got, err := engine.Recommend(context.Background(), []string{"Rice", "Dal", "Salad"}, []string{"Diabetes", "Hypertension"}, DefaultTopN)

	assert.NoError(t, err)
	// Dal fails Hypertension so only the universally suitable pair survives.
	assert.ElementsMatch(t, []string{"Rice", "Salad"}, got)
}

func TestRecommendTruncatesToTopN(t *testing.T) {
	foods := []string{"A", "B", "C", "D", "E", "F", "G"}
	suitable := map[string]bool{}
	for _, f := range foods {
		suitable[f+"|Gout"] = true
	}
	engine := NewEngine(&stubChecker{suitable: suitable}, WithRand(rand.New(rand.NewSource(7))))

	got, err := engine.Recommend(context.Background(), foods, []string{"Gout"}, 3)

	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Subset(t, foods, got)
}

func TestRecommendDefaultTopN(t *testing.T) {
	foods := []string{"A", "B", "C", "D", "E", "F", "G"}
	suitable := map[string]bool{}
	for _, f := range foods {
		suitable[f+"|Gout"] = true
	}
	engine := NewEngine(&stubChecker{suitable: suitable}, WithRand(rand.New(rand.NewSource(7))))

	got, err := engine.Recommend(context.Background(), foods, []string{"Gout"}, 0)

	assert.NoError(t, err)
	assert.Len(t, got, DefaultTopN)
}

func TestRecommendNoSurvivors(t *testing.T) {
	engine := NewEngine(&stubChecker{suitable: map[string]bool{}})

	got, err := engine.Recommend(context.Background(), []string{"Cake", "Soda"}, []string{"Diabetes"}, DefaultTopN)

	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommendPropagatesCheckerError(t *testing.T) {
	wantErr := errors.New("model unavailable")
	engine := NewEngine(&stubChecker{err: wantErr})

	_, err := engine.Recommend(context.Background(), []string{"Rice"}, []string{"Diabetes"}, DefaultTopN)

	assert.ErrorIs(t, err, wantErr)
}

func TestRecommendUsesVerdictCache(t *testing.T) {
	checker := &stubChecker{suitable: map[string]bool{"Rice|Diabetes": true}}
	cache := newMapCache()
	engine := NewEngine(checker, WithVerdictCache(cache))

	_, err := engine.Recommend(context.Background(), []string{"Rice"}, []string{"Diabetes"}, DefaultTopN)
	assert.NoError(t, err)
	firstCalls := checker.calls

	// Second run hits the cache instead of the checker.
	_, err = engine.Recommend(context.Background(), []string{"Rice"}, []string{"Diabetes"}, DefaultTopN)
	assert.NoError(t, err)
	assert.Equal(t, firstCalls, checker.calls)
}

func TestRecommendSeededShuffleIsDeterministic(t *testing.T) {
	foods := []string{"A", "B", "C", "D", "E"}
	suitable := map[string]bool{}
	for _, f := range foods {
		suitable[f+"|Gout"] = true
	}

	run := func() []string {
		engine := NewEngine(&stubChecker{suitable: suitable}, WithRand(rand.New(rand.NewSource(42))))
		got, err := engine.Recommend(context.Background(), foods, []string{"Gout"}, 3)
		assert.NoError(t, err)
		return got
	}

	assert.Equal(t, run(), run())
}
