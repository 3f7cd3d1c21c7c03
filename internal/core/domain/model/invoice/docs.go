// Package invoice contains the Invoice aggregate: the bill raised inside the
// acceptance transaction for the winning offer's price. The amount is frozen
// at creation; only the payment status moves.
package invoice
