// Package trip contains the Trip aggregate: the physical execution of an
// accepted request by its winning driver. A trip walks a strict chain of
// milestones from Assigned to Completed, carries a monotonic progress
// percentage, and tracks the vehicle's last reported position.
//
// Out-of-order reports from the driver's device are dropped whole as stale
// updates, never merged field by field.
package trip
