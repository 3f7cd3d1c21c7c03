package invoice_test

import (
	"testing"
	"time"

	"freightops/internal/core/domain/model/invoice"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoice(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		requestID := kernel.NewUUID()
		clientID := kernel.NewUUID()
		issuedAt := time.Now().UTC()

		inv, err := invoice.NewInvoice(id, requestID, clientID, 3000, issuedAt)
		require.NoError(t, err)
		require.NoError(t, inv.Validate())

		assert.True(t, inv.ID().IsEqual(id))
		assert.True(t, inv.RequestID().IsEqual(requestID))
		assert.True(t, inv.ClientID().IsEqual(clientID))
		assert.Equal(t, int64(3000), inv.Amount())
		assert.Equal(t, invoice.Pending, inv.Status())
		assert.Equal(t, issuedAt, inv.IssuedAt())
		assert.Nil(t, inv.PaidAt())
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		_, err := invoice.NewInvoice(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = invoice.NewInvoice(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), -100, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_request_id", func(t *testing.T) {
		_, err := invoice.NewInvoice(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), 3000, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreInvoice(t *testing.T) {
	paidAt := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	inv, err := invoice.RestoreInvoice(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		3000, invoice.Paid, paidAt.Add(-time.Hour), &paidAt,
	)
	require.NoError(t, err)

	assert.Equal(t, invoice.Paid, inv.Status())
	require.NotNil(t, inv.PaidAt())
	assert.Equal(t, paidAt, *inv.PaidAt())
}

func TestInvoice_MarkPaid(t *testing.T) {
	t.Run("pending_to_paid", func(t *testing.T) {
		inv, err := invoice.NewInvoice(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3000, time.Now())
		require.NoError(t, err)

		at := time.Now().UTC()
		require.NoError(t, inv.MarkPaid(at))

		assert.Equal(t, invoice.Paid, inv.Status())
		require.NotNil(t, inv.PaidAt())
		assert.Equal(t, at, *inv.PaidAt())
	})

	t.Run("paying_twice_is_illegal", func(t *testing.T) {
		inv, err := invoice.NewInvoice(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3000, time.Now())
		require.NoError(t, err)
		require.NoError(t, inv.MarkPaid(time.Now()))

		require.ErrorIs(t, inv.MarkPaid(time.Now()), errs.ErrIllegalTransition)
	})
}

func TestInvoice_Validate(t *testing.T) {
	var inv invoice.Invoice
	require.ErrorIs(t, inv.Validate(), invoice.ErrInvoiceIsNotConstructed)
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, invoice.Pending.Validate())
	require.NoError(t, invoice.Paid.Validate())
	require.ErrorIs(t, invoice.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, invoice.Status(9).Validate(), errs.ErrValueIsInvalid)
}
