package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/studiofin/studiofin/internal/domain"
	"github.com/studiofin/studiofin/internal/usecase"
)

// InvoiceRepository implements usecase.InvoiceRepository. Job links
// live in invoice_jobs and are loaded with every invoice read; the
// settlement participant set is recorded in invoice_participants.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

const invoiceColumns = `id, number, client_id, total_amount, status, paid_at, created_by, created_at, updated_at`

const createInvoiceQuery = `
INSERT INTO invoices (` + invoiceColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Create creates a new invoice.
func (r *InvoiceRepository) Create(ctx context.Context, tx usecase.Tx, invoice *domain.Invoice) error {
	_, err := txConn(tx).Exec(ctx, createInvoiceQuery,
		invoice.ID,
		invoice.Number,
		invoice.ClientID,
		decimalToNumeric(invoice.TotalAmount),
		string(invoice.Status),
		invoice.PaidAt,
		invoice.CreatedBy,
		timeToPgTimestamptz(invoice.CreatedAt),
		timeToPgTimestamptz(invoice.UpdatedAt),
	)

	return err
}

const getInvoiceQuery = `
SELECT ` + invoiceColumns + `
FROM invoices
WHERE id = $1`

// GetByID retrieves an invoice with its job links.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	invoice, err := scanInvoice(r.pool.QueryRow(ctx, getInvoiceQuery, id))
	if err != nil {
		return nil, err
	}

	invoice.JobIDs, err = r.jobIDs(ctx, r.pool, id)
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

const getInvoiceForUpdateQuery = getInvoiceQuery + `
FOR UPDATE`

// GetByIDForUpdate retrieves an invoice with a FOR UPDATE lock so two
// settlements of the same invoice serialize on the row.
func (r *InvoiceRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Tx, id string) (*domain.Invoice, error) {
	conn := txConn(tx)

	invoice, err := scanInvoice(conn.QueryRow(ctx, getInvoiceForUpdateQuery, id))
	if err != nil {
		return nil, err
	}

	invoice.JobIDs, err = r.jobIDs(ctx, conn, id)
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

const listInvoicesQuery = `
SELECT ` + invoiceColumns + `
FROM invoices
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2`

// List lists invoices newest first, without job links.
func (r *InvoiceRepository) List(ctx context.Context, limit, offset int) ([]*domain.Invoice, error) {
	rows, err := r.pool.Query(ctx, listInvoicesQuery, int32(limit), int32(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*domain.Invoice
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	return invoices, rows.Err()
}

const setInvoiceStatusQuery = `
UPDATE invoices
SET status = $2, paid_at = $3, updated_at = $4
WHERE id = $1`

// SetStatus moves an invoice to the given status.
func (r *InvoiceRepository) SetStatus(ctx context.Context, tx usecase.Tx, id string, status domain.InvoiceStatus, paidAt *time.Time, updatedAt time.Time) error {
	tag, err := txConn(tx).Exec(ctx, setInvoiceStatusQuery,
		id,
		string(status),
		paidAt,
		timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}

	return nil
}

const linkJobQuery = `
INSERT INTO invoice_jobs (invoice_id, job_id)
VALUES ($1, $2)`

// LinkJobs attaches jobs to an invoice.
func (r *InvoiceRepository) LinkJobs(ctx context.Context, tx usecase.Tx, invoiceID string, jobIDs []string) error {
	conn := txConn(tx)
	for _, jobID := range jobIDs {
		if _, err := conn.Exec(ctx, linkJobQuery, invoiceID, jobID); err != nil {
			return err
		}
	}

	return nil
}

const unlinkJobsQuery = `
DELETE FROM invoice_jobs
WHERE invoice_id = $1`

// UnlinkJobs removes all job links of an invoice.
func (r *InvoiceRepository) UnlinkJobs(ctx context.Context, tx usecase.Tx, invoiceID string) error {
	_, err := txConn(tx).Exec(ctx, unlinkJobsQuery, invoiceID)

	return err
}

const recordParticipantQuery = `
INSERT INTO invoice_participants (invoice_id, participant_id)
VALUES ($1, $2)`

// RecordParticipants stores which participants shared in a settlement.
func (r *InvoiceRepository) RecordParticipants(ctx context.Context, tx usecase.Tx, invoiceID string, participantIDs []string) error {
	conn := txConn(tx)
	for _, participantID := range participantIDs {
		if _, err := conn.Exec(ctx, recordParticipantQuery, invoiceID, participantID); err != nil {
			return err
		}
	}

	return nil
}

const deleteInvoiceQuery = `
DELETE FROM invoices
WHERE id = $1`

// Delete removes an invoice.
func (r *InvoiceRepository) Delete(ctx context.Context, tx usecase.Tx, id string) error {
	tag, err := txConn(tx).Exec(ctx, deleteInvoiceQuery, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}

	return nil
}

const nextInvoiceNumberQuery = `
SELECT nextval('invoice_number_seq')`

// NextNumber allocates the next invoice number. Sequence gaps from
// rolled-back creations are acceptable.
func (r *InvoiceRepository) NextNumber(ctx context.Context) (string, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, nextInvoiceNumberQuery).Scan(&n); err != nil {
		return "", err
	}

	return fmt.Sprintf("INV-%04d", n), nil
}

const sumInvoicesByStatusQuery = `
SELECT COALESCE(SUM(total_amount), 0)
FROM invoices
WHERE status = $1`

// SumByStatus sums invoice totals in the given status.
func (r *InvoiceRepository) SumByStatus(ctx context.Context, status domain.InvoiceStatus) (decimal.Decimal, error) {
	var total pgtype.Numeric
	if err := r.pool.QueryRow(ctx, sumInvoicesByStatusQuery, string(status)).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

const invoiceJobIDsQuery = `
SELECT job_id
FROM invoice_jobs
WHERE invoice_id = $1
ORDER BY job_id`

func (r *InvoiceRepository) jobIDs(ctx context.Context, conn dbtx, invoiceID string) ([]string, error) {
	rows, err := conn.Query(ctx, invoiceJobIDsQuery, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var (
		invoice   domain.Invoice
		status    string
		total     pgtype.Numeric
		paidAt    pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&invoice.ID,
		&invoice.Number,
		&invoice.ClientID,
		&total,
		&status,
		&paidAt,
		&invoice.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	invoice.TotalAmount = numericToDecimal(total)
	invoice.Status = domain.InvoiceStatus(status)
	if paidAt.Valid {
		invoice.PaidAt = &paidAt.Time
	}
	invoice.CreatedAt = createdAt.Time
	invoice.UpdatedAt = updatedAt.Time

	return &invoice, nil
}
