// Package store provides a SQLite-backed journal of conversions.
//
// The journal is append-only. Each row records the input, the three
// renderings, and the converter settings that produced them, so a later
// Replay can re-run every conversion and prove the output has not drifted.
//
// # Ordering
//
// Rows carry a logical sequence number assigned at insert time. All reads
// use ORDER BY seq ASC, id ASC COLLATE BINARY; wall-clock time is never
// stored or used for ordering.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
