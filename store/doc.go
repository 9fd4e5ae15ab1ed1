// Package store provides in-memory implementations of the external
// collaborators used by the history and ask packages: a conversation
// turn store with embedding-based retrieval, and a result repository
// keyed by generated identifiers.
//
// These implementations are safe for concurrent use and suit tests,
// prototypes, and single-process deployments. Production systems
// typically substitute database-backed implementations of the same
// interfaces.
package store
