// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence.
package invoicerepo

import (
	"time"

	"freightops/internal/core/domain/model/invoice"
	"freightops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates.
type InvoiceDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ClientID  uuid.UUID `gorm:"type:uuid;index"`

	Amount int64

	Status   int `gorm:"index"`
	IssuedAt time.Time
	PaidAt   *time.Time
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice domain aggregate to its database representation.
func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:        aggregate.ID().Bytes(),
		RequestID: aggregate.RequestID().Bytes(),
		ClientID:  aggregate.ClientID().Bytes(),
		Amount:    aggregate.Amount(),
		Status:    int(aggregate.Status()),
		IssuedAt:  aggregate.IssuedAt(),
		PaidAt:    aggregate.PaidAt(),
	}
}

// toDomain converts a database DTO to an invoice domain aggregate using
// RestoreInvoice.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(
		id,
		requestID,
		clientID,
		dto.Amount,
		invoice.Status(dto.Status),
		dto.IssuedAt,
		dto.PaidAt,
	)
}
