package discovery

import (
	"sync"
	"testing"
	"time"

	"github.com/matst80/slask-storefront/pkg/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shopCategories = []types.Category{
	{Id: "1", Name: "Electronics", Slug: "electronics"},
	{Id: "2", Name: "Phones", Slug: "phones", ParentId: "1"},
	{Id: "3", Name: "Clothing", Slug: "clothing"},
}

func shopProducts(n int) []types.Product {
	ret := make([]types.Product, n)
	for i := range ret {
		cat := "2"
		if i%2 == 1 {
			cat = "3"
		}
		ret[i] = types.Product{
			Id:         string(rune('A' + i)),
			Name:       "Item",
			Price:      float64(100 - i),
			CategoryId: cat,
		}
	}
	return ret
}

type results struct {
	mu  sync.Mutex
	all []Result
}

func (r *results) add(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, res)
}

func (r *results) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.all)
}

func (r *results) last() Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.all[len(r.all)-1]
}

func TestSessionStartsWithFirstPage(t *testing.T) {
	s := NewSession(testEngine(4), shopProducts(10), shopCategories)
	defer s.Close()

	res := s.Result()
	assert.Len(t, res.Items, 4)
	assert.Equal(t, 10, res.Total)
	assert.True(t, res.HasMore)
	assert.False(t, s.IsComputing())
	assert.False(t, s.HasActiveFilters())
}

func TestSessionDebouncesFacetChanges(t *testing.T) {
	opts := DefaultEngineOptions()
	opts.SettleDelay = 50 * time.Millisecond
	var got results
	s := NewSession(NewEngine(opts), shopProducts(10), shopCategories, OnResult(got.add))
	defer s.Close()

	for _, q := range []string{"i", "it", "ite", "item"} {
		s.SetQuery(q)
	}
	s.SetPriceRange(types.PriceRange{Min: 95, Max: 100})
	assert.True(t, s.IsComputing())
	assert.Equal(t, 10, s.Result().Total, "result must not change before the delay settles")

	require.Eventually(t, func() bool {
		return !s.IsComputing()
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, got.len())
	assert.Equal(t, 6, got.last().Total)
	assert.True(t, s.HasActiveFilters())
}

func TestSessionCountsReplacedRecomputes(t *testing.T) {
	before := testutil.ToFloat64(noCancelledRecomputes)
	s := NewSession(testEngine(4), shopProducts(4), shopCategories)
	defer s.Close()

	s.SetInStockOnly(true)
	s.SetInStockOnly(false)
	s.SetInStockOnly(true)
	assert.Equal(t, before+2, testutil.ToFloat64(noCancelledRecomputes))
}

func TestSessionSelectCategory(t *testing.T) {
	s := NewSession(testEngine(12), shopProducts(6), shopCategories)
	defer s.Close()

	s.SelectCategory("electronics")
	require.True(t, s.Flush())
	assert.Equal(t, 3, s.Result().Total)
	assert.Equal(t, []string{"1", "2"}, s.State().CategoryIds.Sorted())

	s.SelectCategory("missing")
	s.Flush()
	assert.Equal(t, 6, s.Result().Total)
	assert.False(t, s.HasActiveFilters())
}

func TestSessionLoadMoreRecomputesImmediately(t *testing.T) {
	s := NewSession(testEngine(4), shopProducts(10), shopCategories)
	defer s.Close()

	s.LoadMore()
	assert.False(t, s.IsComputing())
	assert.Len(t, s.Result().Items, 8)

	s.LoadMore()
	res := s.Result()
	assert.Len(t, res.Items, 10)
	assert.False(t, res.HasMore)
}

func TestSessionKeepsWindowWhenFiltersChange(t *testing.T) {
	s := NewSession(testEngine(2), shopProducts(10), shopCategories)
	defer s.Close()

	s.LoadMore()
	s.SetSort(types.SortPriceAsc)
	s.SelectCategory("3")
	s.Flush()
	assert.Equal(t, 4, s.State().VisibleCount)
	assert.Len(t, s.Result().Items, 4)

	s.ClearAllFilters()
	s.Flush()
	state := s.State()
	assert.Equal(t, 4, state.VisibleCount)
	assert.Equal(t, types.SortFeatured, state.Sort)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(s.Result().Items))
}

func TestSessionToggleBrand(t *testing.T) {
	products := []types.Product{
		{Id: "1", Name: "Sony Bravia", Price: 900},
		{Id: "2", Name: "LG OLED", Price: 1200},
		{Id: "3", Name: "No name TV", Price: 200},
	}
	s := NewSession(testEngine(12), products, nil)
	defer s.Close()

	s.ToggleBrand("sony")
	s.Flush()
	assert.Equal(t, []string{"1"}, ids(s.Result().Items))

	s.ToggleBrand("LG")
	s.SetMinRating(ptr(0.0))
	s.Flush()
	assert.Equal(t, []string{"1", "2"}, ids(s.Result().Items))

	s.ToggleBrand("Sony")
	s.ToggleBrand("lg")
	s.SetMinRating(nil)
	s.Flush()
	assert.Len(t, s.Result().Items, 3)
}

func TestSessionSetCatalog(t *testing.T) {
	s := NewSession(testEngine(12), shopProducts(2), shopCategories)
	defer s.Close()

	s.SetCatalog(shopProducts(5), shopCategories)
	assert.True(t, s.IsComputing())
	s.Flush()
	assert.Equal(t, 5, s.Result().Total)
}

func TestSessionWithState(t *testing.T) {
	state := types.NewFacetState(12).WithQuery("nothing matches")
	s := NewSession(testEngine(12), shopProducts(3), shopCategories, WithState(state))
	defer s.Close()
	assert.Equal(t, 0, s.Result().Total)
	assert.True(t, s.HasActiveFilters())
}

func TestSessionCloseStopsPendingRecompute(t *testing.T) {
	opts := DefaultEngineOptions()
	opts.SettleDelay = 10 * time.Millisecond
	var got results
	gauge := testutil.ToFloat64(activeSessions)
	s := NewSession(NewEngine(opts), shopProducts(4), shopCategories, OnResult(got.add))
	assert.Equal(t, gauge+1, testutil.ToFloat64(activeSessions))

	s.SetQuery("nothing")
	s.Close()
	assert.False(t, s.IsComputing())
	assert.Equal(t, gauge, testutil.ToFloat64(activeSessions))

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, got.len())

	s.SetQuery("ignored")
	s.LoadMore()
	assert.False(t, s.Flush())
	s.Close()
	assert.Equal(t, gauge, testutil.ToFloat64(activeSessions))
}

func TestSessionLoadMoreFromResultCallback(t *testing.T) {
	var got results
	var s *Session
	loaded := false
	s = NewSession(testEngine(4), shopProducts(10), shopCategories, OnResult(func(res Result) {
		got.add(res)
		if !loaded && res.HasMore {
			loaded = true
			s.LoadMore()
		}
	}))
	defer s.Close()

	s.SetQuery("item")
	s.Flush()

	require.Eventually(t, func() bool {
		return got.len() == 2 && !s.IsComputing()
	}, time.Second, 5*time.Millisecond)
	assert.Len(t, got.last().Items, 8)
	assert.Equal(t, 8, s.State().VisibleCount)
}

func TestSessionStateIsACopy(t *testing.T) {
	state := types.NewFacetState(12)
	s := NewSession(testEngine(12), shopProducts(3), shopCategories, WithState(state))
	defer s.Close()

	state.Brands.Add("sony")
	st := s.State()
	st.Brands.Add("sony")
	st.CategoryIds.Add("3")

	assert.False(t, s.HasActiveFilters())
	assert.Equal(t, 0, s.State().Brands.Len())
	assert.Equal(t, 0, s.State().CategoryIds.Len())
}
