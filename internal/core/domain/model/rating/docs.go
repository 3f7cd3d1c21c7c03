// Package rating contains the Rating aggregate: a client's one-time score
// for the driver who executed a request. Ratings are immutable once recorded.
package rating
