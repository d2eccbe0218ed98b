// Package kernel provides core domain primitives for the cargo tracking system.
// It implements fundamental identity value objects following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UnLocode: A validated United Nations location code identifying a port or place
//   - TrackingID: The globally unique identifier a cargo is tracked by
//   - UUID: A value object for unique identifiers of handling events
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
