// Package blobstore provides storage for archived evaluation reports.
//
// BlobStore is the interface for reading and writing named blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and short-lived runs
//   - LocalStore: a directory on the local file system, atomic writes
//
// Names are slash-separated relative paths such as "sweeps/2026-10-17.bin".
package blobstore
