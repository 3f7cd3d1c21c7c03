// Package offer contains the Offer aggregate: a driver's priced bid on a
// transport request. An offer starts Pending and settles exactly once, to
// Accepted, Rejected, or Expired; the settlement of one request's offers is
// all-or-nothing and happens inside the acceptance transaction.
package offer
