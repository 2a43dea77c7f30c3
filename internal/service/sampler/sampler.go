package sampler

import (
	"math/rand"
	"sync"
	"time"

	"github.com/indicai/core/internal/model"
)

// Sampler draws uniform random selections from a static catalog when
// live content sources are down. mu serializes draws from the shared
// rand.Rand, which is not goroutine-safe.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New() *Sampler {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed pins the draw order for tests.
func NewWithSeed(seed int64) *Sampler {
	return &Sampler{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Sample picks min(target, remaining, available) items without
// replacement from the catalog entries the user has not chosen today
// and has never rated. Partial Fisher-Yates keeps every eligible item
// equally likely. An empty catalog yields an empty result.
func (s *Sampler) Sample(catalog []model.MediaItem, chosenIDs []string, target int, remaining int) []model.MediaItem {
	chosen := make(map[string]struct{}, len(chosenIDs))
	for _, id := range chosenIDs {
		chosen[id] = struct{}{}
	}

	eligible := make([]model.MediaItem, 0, len(catalog))
	for _, item := range catalog {
		if _, ok := chosen[item.ID]; ok {
			continue
		}
		if item.Rated() {
			continue
		}
		eligible = append(eligible, item)
	}

	n := min(target, remaining, len(eligible))
	if n <= 0 {
		return []model.MediaItem{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(eligible)-i)
		eligible[i], eligible[j] = eligible[j], eligible[i]
	}
	return eligible[:n:n]
}
