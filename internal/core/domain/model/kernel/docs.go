// Package kernel contains the shared value objects of the domain model:
// the UUID identity type used by every aggregate and the GeoPoint
// coordinate pair carried by requests, trips, and position samples.
//
// Value objects in this package are immutable and validated at
// construction. The zero value of each type is invalid and is rejected
// by its Validate method, which lets aggregates detect identifiers and
// coordinates that bypassed the constructors.
package kernel
