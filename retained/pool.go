package retained

import "sync"

// ============================================================================
// Handle Slice Pooling
// ============================================================================
//
// Tree walks (menu closing, accelerator lookup, subtree removal) run on
// every click or typed character. They use an explicit stack of handles
// instead of recursion; the stacks are pooled to keep those paths
// allocation-free in steady state.
//
// Usage:
//   stack := acquireIDSlice()
//   stack = append(stack, root)
//   ... pop/push ...
//   releaseIDSlice(stack)

var idSlicePool = sync.Pool{
	New: func() any {
		s := make([]WidgetID, 0, 32)
		return &s
	},
}

// acquireIDSlice gets an empty handle slice from the pool.
// Caller must call releaseIDSlice when done.
func acquireIDSlice() []WidgetID {
	return (*idSlicePool.Get().(*[]WidgetID))[:0]
}

// releaseIDSlice returns a handle slice to the pool.
// The slice should not be used after calling this.
func releaseIDSlice(s []WidgetID) {
	if s == nil {
		return
	}
	// Only pool slices up to a reasonable size to avoid memory bloat
	if cap(s) > 1024 {
		return
	}
	s = s[:0]
	idSlicePool.Put(&s)
}
