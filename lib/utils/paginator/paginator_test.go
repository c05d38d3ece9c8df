package paginator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate(t *testing.T) {
	t.Run(`page count is ceil of total by size`, func(t *testing.T) {
		for _, n := range []int{0, 1, 9, 10, 11, 20, 21, 95} {
			page := Paginate(makeItems(n), 1, 10)
			require.Equal(t, (n+9)/10, page.TotalPages, "n=%d", n)
			require.Equal(t, n, page.TotalCount)
		}
	})

	t.Run(`middle page`, func(t *testing.T) {
		page := Paginate(makeItems(25), 2, 10)
		require.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, page.Items)
		require.True(t, page.HasPrevious)
		require.True(t, page.HasNext)
	})

	t.Run(`last partial page`, func(t *testing.T) {
		page := Paginate(makeItems(25), 3, 10)
		require.Equal(t, []int{20, 21, 22, 23, 24}, page.Items)
		require.True(t, page.HasPrevious)
		require.False(t, page.HasNext)
	})

	t.Run(`page after the last is empty`, func(t *testing.T) {
		for _, n := range []int{0, 5, 10, 31} {
			last := (n + 9) / 10
			page := Paginate(makeItems(n), last+1, 10)
			require.Empty(t, page.Items)
			require.NotNil(t, page.Items)
			require.False(t, page.HasNext)
		}
	})

	t.Run(`huge page number is empty`, func(t *testing.T) {
		page := Paginate(makeItems(25), math.MaxInt, 10)
		require.Empty(t, page.Items)
		require.Equal(t, math.MaxInt, page.Number)
		require.Equal(t, 3, page.TotalPages)
		require.True(t, page.HasPrevious)
		require.False(t, page.HasNext)

		page = Paginate(makeItems(25), math.MaxInt/10+1, 10)
		require.Empty(t, page.Items)
	})

	t.Run(`invalid page number means first page`, func(t *testing.T) {
		for _, number := range []int{0, -3} {
			page := Paginate(makeItems(12), number, 10)
			require.Equal(t, 1, page.Number)
			require.Len(t, page.Items, 10)
			require.False(t, page.HasPrevious)
			require.True(t, page.HasNext)
		}
	})
}
