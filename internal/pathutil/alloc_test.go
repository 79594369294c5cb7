package pathutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapAllocator(t *testing.T) {
	b, err := HeapAllocator{}.Allocate(8)
	require.NoError(t, err)
	assert.Len(t, b, 8)

	_, err = HeapAllocator{}.Allocate(-1)
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestBudgetAllocator(t *testing.T) {
	a := NewBudgetAllocator(10)

	b1, err := a.Allocate(6)
	require.NoError(t, err)
	assert.Equal(t, 6, a.InUse())

	_, err = a.Allocate(5)
	require.ErrorIs(t, err, ErrAllocation)
	assert.ErrorIs(t, err, errBudgetExhausted)

	a.Release(b1)
	assert.Equal(t, 0, a.InUse())

	_, err = a.Allocate(10)
	require.NoError(t, err)

	a.Release(nil)
	assert.Equal(t, 10, a.InUse())
}

func TestBudgetAllocatorConcurrent(t *testing.T) {
	a := NewBudgetAllocator(1 << 20)
	c := NewCombiner(Unix, a)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p, err := c.Combine("/srv/data", AutoLen, "file")
				if err != nil {
					t.Error(err)
					return
				}
				p.Release()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, a.InUse())
}
