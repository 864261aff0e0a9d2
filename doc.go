// Package circumflex provides a process-wide configuration container and a
// race-free, lazily-populated cache.
//
// Features:
//
//   - CacheMap computes a missing value at most once under concurrent access.
//   - Lock-free reads of present keys, single critical section for fills.
//   - Failed computations are not stored, a later read retries.
//   - Typed getters with zero-value defaults over an untyped store.
//   - Implementation selection by configuration string via a factory registry.
//   - Non-fatal bootstrap from a "cx" resource, failure is logged only.
//   - Allows logging, stats collection.
package circumflex
