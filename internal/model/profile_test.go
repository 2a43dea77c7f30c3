//go:build !integration
// +build !integration

package model

import (
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type ProfileModelSuite struct {
	suite.Suite
}

func (s *ProfileModelSuite) TestGenreLabelsStrongestFirst(t provider.T) {
	t.Parallel()

	profile := TasteProfile{
		{Genre: "Drama", Weight: 1},
		{Genre: "Crime", Weight: 5},
		{Genre: "Romance", Weight: 3},
		{Genre: "Terror", Weight: 3},
	}

	assert.Equal(t, []string{"Crime", "Romance", "Terror", "Drama"}, profile.GenreLabels())
	assert.Equal(t, TasteProfile{
		{Genre: "Drama", Weight: 1},
		{Genre: "Crime", Weight: 5},
		{Genre: "Romance", Weight: 3},
		{Genre: "Terror", Weight: 3},
	}, profile, "ordering labels must not reorder the profile itself")
}

func TestProfileModelSuite(t *testing.T) {
	suite.RunSuite(t, new(ProfileModelSuite))
}
