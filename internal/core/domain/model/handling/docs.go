// Package handling contains the handling event aggregate: immutable records of
// real-world handling actions (receive, load, unload, customs, claim) reported
// against a cargo, the ordered history of those records, and the factory that
// validates registration attempts against reference data before an event is
// accepted into the system.
//
// Handling events are owned by an external event log keyed by tracking id.
// The cargo aggregate references them through a History snapshot but never
// owns them.
package handling
