// Package resource implements the Controller that bounds memory and worker
// usage of chunked matrix evaluation.
//
//	┌──────────────────────────────────────────┐
//	│               Controller                 │
//	├────────────────────┬─────────────────────┤
//	│  Memory budget     │  Worker slots       │
//	│  (semaphore)       │  (semaphore)        │
//	├────────────────────┼─────────────────────┤
//	│  AcquireMemory     │  AcquireWorker      │
//	│  ReleaseMemory     │  TryAcquireWorker   │
//	│  MemoryUsage       │  ReleaseWorker      │
//	└────────────────────┴─────────────────────┘
//
// # Memory Management
//
// AcquireMemory is fail-fast by default and returns ErrMemoryLimitExceeded
// when the reservation would exceed the budget. With Config.Blocking it waits
// until enough memory is released or ctx is done:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//	if err := rc.AcquireMemory(ctx, 1<<20); err != nil {
//	    return err
//	}
//	defer rc.ReleaseMemory(1 << 20)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
