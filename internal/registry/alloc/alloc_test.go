package alloc_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keymint/internal/registry/alloc"
	"keymint/pkg/domain"
)

func TestNextStartsAtOneAndIncrements(t *testing.T) {
	a := alloc.New()
	assert.Equal(t, domain.Identity(0), a.Last())

	require.Equal(t, domain.Identity(1), a.Next())
	require.Equal(t, domain.Identity(2), a.Next())
	require.Equal(t, domain.Identity(3), a.Next())
	assert.Equal(t, domain.Identity(3), a.Last())
}

func TestAllocatorsAreIndependent(t *testing.T) {
	a := alloc.New()
	b := alloc.New()
	require.Equal(t, domain.Identity(1), a.Next())
	require.Equal(t, domain.Identity(1), b.Next())
}

// TestNextConcurrentUniqueness hammers one allocator from many goroutines
// and verifies every minted identity is distinct and the full range 1..N is
// covered with no gaps.
func TestNextConcurrentUniqueness(t *testing.T) {
	const goroutines = 32
	const perGoroutine = 500

	a := alloc.New()
	results := make([][]domain.Identity, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]domain.Identity, 0, perGoroutine)
			for j := 0; j < perGoroutine; j++ {
				ids = append(ids, a.Next())
			}
			results[i] = ids
		}()
	}
	wg.Wait()

	var all []uint64
	for _, ids := range results {
		for _, id := range ids {
			all = append(all, uint64(id))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	require.Len(t, all, goroutines*perGoroutine)
	for i, id := range all {
		require.Equal(t, uint64(i+1), id, "identities must cover 1..N with no duplicates")
	}
}
