package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEmptyQueryShortCircuits(t *testing.T) {
	for _, raw := range []string{"", "   ", "!!! ??? ***"} {
		g := articleFixture()
		deps := testDeps(g)
		svc := NewSearchService(deps, NewLayoutService(deps))

		res := svc.Search(context.Background(), raw)
		assert.Empty(t, res.Results)
		assert.NotNil(t, res.Results)
		assert.Equal(t, "", res.Sanitized)
		assert.Equal(t, "কোনো ফলাফল পাওয়া যায়নি", res.CountText)
		assert.Equal(t, 0, g.total(), "no gateway call for %q", raw)
	}
}

func TestSearch(t *testing.T) {
	g := articleFixture()
	deps := testDeps(g)
	svc := NewSearchService(deps, NewLayoutService(deps))

	res := svc.Search(context.Background(), "  ফাইনাল!!  ")
	assert.Equal(t, "ফাইনাল", res.Sanitized)
	assert.Equal(t, "  ফাইনাল!!  ", res.Query)
	require.Len(t, res.Results, 3)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, "৩টি ফলাফল পাওয়া গেছে", res.CountText)
}

func TestSearchFailureIsEmpty(t *testing.T) {
	g := articleFixture()
	g.fail["SearchArticles"] = true
	deps := testDeps(g)
	svc := NewSearchService(deps, NewLayoutService(deps))

	page := svc.Page(context.Background(), "ফাইনাল")
	assert.Empty(t, page.Results)
	assert.Len(t, page.Layout.Categories, 1)
}
