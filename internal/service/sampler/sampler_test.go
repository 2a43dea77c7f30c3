//go:build !integration
// +build !integration

package sampler

import (
	"fmt"
	"sync"
	"testing"

	"github.com/indicai/core/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type SamplerUnitSuite struct {
	suite.Suite
}

func buildCatalog(n int) []model.MediaItem {
	catalog := make([]model.MediaItem, 0, n)
	for i := 0; i < n; i++ {
		catalog = append(catalog, model.MediaItem{
			ID:     fmt.Sprintf("item-%d", i),
			Kind:   model.KindMovie,
			Title:  fmt.Sprintf("Title %d", i),
			Rating: 5.0,
			Genres: []string{"Drama"},
		})
	}
	return catalog
}

func (s *SamplerUnitSuite) TestSampleCoversQuota(t provider.T) {
	t.Parallel()

	catalog := buildCatalog(30)
	got := NewWithSeed(42).Sample(catalog, nil, 50, 20)

	assert.Len(t, got, 20)

	seen := make(map[string]struct{}, len(got))
	valid := make(map[string]struct{}, len(catalog))
	for _, item := range catalog {
		valid[item.ID] = struct{}{}
	}
	for _, item := range got {
		_, dup := seen[item.ID]
		assert.False(t, dup, "sample must not repeat items")
		seen[item.ID] = struct{}{}

		_, fromCatalog := valid[item.ID]
		assert.True(t, fromCatalog, "sample must come from the catalog")
	}
}

func (s *SamplerUnitSuite) TestSampleSizeBounds(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		catalog   []model.MediaItem
		target    int
		remaining int
		expected  int
	}{
		{name: "Should honor target below remaining", catalog: buildCatalog(30), target: 5, remaining: 20, expected: 5},
		{name: "Should honor remaining below target", catalog: buildCatalog(30), target: 50, remaining: 3, expected: 3},
		{name: "Should cap at catalog size", catalog: buildCatalog(2), target: 50, remaining: 20, expected: 2},
		{name: "Should return empty for empty catalog", catalog: nil, target: 10, remaining: 10, expected: 0},
		{name: "Should return empty with no quota left", catalog: buildCatalog(10), target: 10, remaining: 0, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()

			got := NewWithSeed(7).Sample(tc.catalog, nil, tc.target, tc.remaining)

			assert.Len(t, got, tc.expected)
		})
	}
}

func (s *SamplerUnitSuite) TestSampleFiltersChosenAndRated(t provider.T) {
	t.Parallel()

	catalog := buildCatalog(10)
	catalog[3].UserRating = model.ActionDislike
	chosen := []string{"item-0", "item-1"}

	got := NewWithSeed(1).Sample(catalog, chosen, 50, 20)

	assert.Len(t, got, 7)
	for _, item := range got {
		assert.NotContains(t, chosen, item.ID)
		assert.NotEqual(t, "item-3", item.ID)
	}
}

func (s *SamplerUnitSuite) TestSeededDrawIsDeterministic(t provider.T) {
	t.Parallel()

	catalog := buildCatalog(30)

	first := NewWithSeed(1234).Sample(catalog, nil, 10, 20)
	second := NewWithSeed(1234).Sample(buildCatalog(30), nil, 10, 20)

	assert.Equal(t, first, second)
}

func (s *SamplerUnitSuite) TestConcurrentDrawsStayWithinBounds(t provider.T) {
	t.Parallel()

	sampler := NewWithSeed(99)

	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := sampler.Sample(buildCatalog(30), nil, 10, 20)

			assert.Len(t, got, 10)
			seen := make(map[string]struct{}, len(got))
			for _, item := range got {
				_, dup := seen[item.ID]
				assert.False(t, dup)
				seen[item.ID] = struct{}{}
			}
		}()
	}
	wg.Wait()
}

func (s *SamplerUnitSuite) TestSampleDoesNotMutateCatalogContents(t provider.T) {
	t.Parallel()

	catalog := buildCatalog(10)
	idsBefore := make(map[string]struct{}, len(catalog))
	for _, item := range catalog {
		idsBefore[item.ID] = struct{}{}
	}

	_ = NewWithSeed(9).Sample(catalog, nil, 5, 5)

	assert.Len(t, catalog, 10)
	for _, item := range catalog {
		_, ok := idsBefore[item.ID]
		assert.True(t, ok)
	}
}

func TestSamplerUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(SamplerUnitSuite))
}
