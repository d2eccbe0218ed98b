// Package cargo contains the Cargo aggregate and the delivery derivation
// logic built around it.
//
// A cargo binds an immutable tracking id to a route specification (where it
// goes and by when), an optional itinerary (the planned legs), and a Delivery
// snapshot. The snapshot is never edited by callers: it is re-derived from
// the itinerary and the cargo's handling history every time either changes,
// so the tracking state the system reports is always a pure function of what
// was planned and what actually happened.
//
// Misdirection - a handling event the itinerary did not predict - is a
// normal business outcome the derivation folds into the snapshot, never an
// error. The package only fails on malformed inputs.
package cargo
