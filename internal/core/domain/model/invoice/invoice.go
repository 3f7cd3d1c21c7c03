package invoice

import (
	"errors"
	"time"

	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through NewInvoice or RestoreInvoice.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice")
)

// Status represents the payment state of an invoice.
//
// State transitions:
//
//	Pending ──> Paid
//
// Paid is final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the invoice awaits payment.
	Pending

	// Paid indicates the client settled the invoice. Final state.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Pending: "Pending",
		Paid:    "Paid",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s != Pending && s != Paid {
		return errs.NewValueIsInvalidError("invoice status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Invoice is the bill for an accepted request. The amount equals the winning
// offer's price and never changes afterwards.
//
// Invoice follows these invariants:
//   - Must reference a valid request and client
//   - Amount must be positive and is immutable after construction
//   - Payment status only moves Pending -> Paid, exactly once
//   - Can only be created through NewInvoice or RestoreInvoice
type Invoice struct {
	id        kernel.UUID
	requestID kernel.UUID
	clientID  kernel.UUID

	amount int64

	status   Status
	issuedAt time.Time
	paidAt   *time.Time

	isConstructed bool
}

// NewInvoice creates a Pending invoice for the winning offer's price. This is
// the only way for application code to create a valid Invoice.
func NewInvoice(
	id kernel.UUID,
	requestID kernel.UUID,
	clientID kernel.UUID,
	amount int64,
	issuedAt time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		status:        Pending,
		issuedAt:      issuedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setRequestID(requestID),
		inv.setClientID(clientID),
		inv.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInvoice reconstructs an invoice from persistence without rerunning
// the creation workflow.
func RestoreInvoice(
	id kernel.UUID,
	requestID kernel.UUID,
	clientID kernel.UUID,
	amount int64,
	status Status,
	issuedAt time.Time,
	paidAt *time.Time,
) (*Invoice, error) {
	inv, err := NewInvoice(id, requestID, clientID, amount, issuedAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	inv.status = status
	inv.paidAt = paidAt
	return inv, nil
}

// Validate ensures the Invoice instance was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two invoices by their unique identifiers.
func (i *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// RequestID returns the identifier of the billed request.
func (i *Invoice) RequestID() kernel.UUID {
	return i.requestID
}

// ClientID returns the paying client's identifier.
func (i *Invoice) ClientID() kernel.UUID {
	return i.clientID
}

// Amount returns the billed amount in the smallest currency unit.
func (i *Invoice) Amount() int64 {
	return i.amount
}

// Status returns the current payment status.
func (i *Invoice) Status() Status {
	return i.status
}

// IssuedAt returns when the invoice was raised.
func (i *Invoice) IssuedAt() time.Time {
	return i.issuedAt
}

// PaidAt returns when the invoice was paid, or nil while pending.
func (i *Invoice) PaidAt() *time.Time {
	return i.paidAt
}

// MarkPaid settles the invoice at the given time. Paying twice is illegal.
func (i *Invoice) MarkPaid(at time.Time) error {
	if i.status != Pending {
		return errs.NewIllegalTransitionError("invoice", i.status.String(), Paid.String())
	}

	i.status = Paid
	i.paidAt = &at
	return nil
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	i.requestID = requestID
	return nil
}

func (i *Invoice) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	i.clientID = clientID
	return nil
}

func (i *Invoice) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount must be greater than 0")
	}
	i.amount = amount
	return nil
}
