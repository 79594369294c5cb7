package pathutil

import (
	"errors"
	"sync"
)

// errBudgetExhausted is the cause reported by BudgetAllocator.
var errBudgetExhausted = errors.New("budget exhausted")

// Allocator hands out byte buffers for newly built paths.
// Buffers returned by Allocate have len == n; their contents are unspecified.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Release(b []byte)
}

// HeapAllocator allocates from the Go heap. Release is a no-op.
type HeapAllocator struct{}

// Allocate returns a new buffer of n bytes.
func (HeapAllocator) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, &AllocationError{Size: n}
	}
	return make([]byte, n), nil
}

// Release does nothing; the garbage collector reclaims the buffer.
func (HeapAllocator) Release([]byte) {}

// DefaultAllocator is used by the package-level helpers.
var DefaultAllocator Allocator = HeapAllocator{}

// BudgetAllocator allocates from the heap but refuses to keep more than
// Limit bytes outstanding. It is safe for concurrent use.
type BudgetAllocator struct {
	Limit int

	mu    sync.Mutex
	inUse int
}

// NewBudgetAllocator creates an allocator bounded by limit bytes.
func NewBudgetAllocator(limit int) *BudgetAllocator {
	return &BudgetAllocator{Limit: limit}
}

// Allocate reserves n bytes of the budget.
func (a *BudgetAllocator) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, &AllocationError{Size: n}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.inUse+n > a.Limit {
		return nil, &AllocationError{Size: n, Err: errBudgetExhausted}
	}
	a.inUse += n
	return make([]byte, n), nil
}

// Release returns cap(b) bytes to the budget.
func (a *BudgetAllocator) Release(b []byte) {
	if b == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inUse -= cap(b)
	if a.inUse < 0 {
		a.inUse = 0
	}
}

// InUse reports the number of bytes currently outstanding.
func (a *BudgetAllocator) InUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inUse
}
