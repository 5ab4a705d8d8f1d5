package Trees

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocked_Concurrent(t *testing.T) {
	l := Lock(New[int]())
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				v := g*1000 + i
				l.Insert(v)
				l.Contains(v - 1)
				if i%2 == 1 {
					l.Remove(v)
				}
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint(8*250), l.Size())
	s := slices.Collect(l.InOrder())
	require.Len(t, s, 8*250)
	require.True(t, slices.IsSorted(s))
	require.NoError(t, l.Clone().Check())
}
