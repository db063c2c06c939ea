package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studiofin/studiofin/internal/domain"
)

// ClientRepository implements usecase.ClientRepository.
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository creates a new ClientRepository.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

const clientColumns = `id, name, tax_rate, archived, created_at`

const createClientQuery = `
INSERT INTO clients (` + clientColumns + `)
VALUES ($1, $2, $3, $4, $5)`

// Create creates a new client.
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	var taxRate *pgtype.Numeric
	if client.TaxRate != nil {
		n := decimalToNumeric(*client.TaxRate)
		taxRate = &n
	}

	_, err := r.pool.Exec(ctx, createClientQuery,
		client.ID,
		client.Name,
		taxRate,
		client.Archived,
		timeToPgTimestamptz(client.CreatedAt),
	)

	return err
}

const getClientQuery = `
SELECT ` + clientColumns + `
FROM clients
WHERE id = $1`

// GetByID retrieves a client by ID.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	client, err := scanClient(r.pool.QueryRow(ctx, getClientQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}

		return nil, err
	}

	return client, nil
}

const listClientsQuery = `
SELECT ` + clientColumns + `
FROM clients
ORDER BY name, id`

// List lists all clients.
func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	rows, err := r.pool.Query(ctx, listClientsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

const updateClientQuery = `
UPDATE clients
SET name = $2, tax_rate = $3, archived = $4
WHERE id = $1`

// Update updates a client.
func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) error {
	var taxRate *pgtype.Numeric
	if client.TaxRate != nil {
		n := decimalToNumeric(*client.TaxRate)
		taxRate = &n
	}

	tag, err := r.pool.Exec(ctx, updateClientQuery,
		client.ID,
		client.Name,
		taxRate,
		client.Archived,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var (
		client    domain.Client
		taxRate   pgtype.Numeric
		createdAt pgtype.Timestamptz
	)

	if err := row.Scan(&client.ID, &client.Name, &taxRate, &client.Archived, &createdAt); err != nil {
		return nil, err
	}

	if taxRate.Valid {
		d := numericToDecimal(taxRate)
		client.TaxRate = &d
	}
	client.CreatedAt = createdAt.Time

	return &client, nil
}
