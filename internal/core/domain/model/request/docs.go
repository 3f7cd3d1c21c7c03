// Package request contains the Request aggregate: a client's transport job
// posting and the order lifecycle state machine that governs it
// (Pending -> OffersReceived -> Accepted -> InProgress -> Completed, with
// Cancelled reachable until the trip starts moving).
//
// All invariant enforcement for request status lives here, in one
// inspectable component: the automatic Pending -> OffersReceived move on
// first offer is an explicit reaction invoked by the offer-submission
// handler, not a database trigger.
package request
