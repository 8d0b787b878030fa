// Package detail holds the fetch cycle state machine behind the job detail
// screen.
//
// Every transition produces a new immutable Snapshot, so status and data are
// always replaced together:
//   - Begin moves to StatusInProgress synchronously and issues a new sequence number
//   - Fetch performs exactly one request and tags its Result with that number
//   - Apply accepts only the Result of the latest cycle; older ones are dropped
//
// Retrying is a Begin with the snapshot's own job ID.
package detail
