// Package sync implements the two phases of a catalog sync.
//
// # Phases
//
//   - Directory sync compares the object id inventory of a region with the
//     directory entries already stored and asks the GIS portal only for the
//     missing ones, in sequential batches.
//   - Detail sync walks a worklist of identifiers, resolves each one to the
//     statistics service key, fetches every facet for the academic year,
//     validates the payload and upserts one detail row per identifier and year.
//
// # Core Types
//
//   - Manager: the interface the coordinator, API and CLI depend on
//   - DirectoryEngine and DetailEngine: the two phase implementations
//   - Outcome: the per identifier result aggregated into a DetailResult
//
// # Failure Model
//
// Only an inventory failure aborts a directory sync. Every other failure is
// contained: a failed GIS batch is logged and the next batch runs, and a
// failed identifier is written to the skip ledger with its reason while the
// rest of the chunk carries on. Re-running a sync is safe because completed
// identifiers are short-circuited by the existence check and every write is
// an upsert.
//
// # Concurrency
//
// Directory batches run one after another. Detail identifiers run in chunks of
// ChunkSize goroutines joined by an errgroup barrier, so at most ChunkSize
// identifiers are in flight at once.
//
// # Coordinator Package
//
// The sync/coordinator subpackage runs both phases periodically for the
// regions listed in the configuration.
package sync
