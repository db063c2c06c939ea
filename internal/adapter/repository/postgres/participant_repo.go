package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studiofin/studiofin/internal/domain"
)

// ParticipantRepository implements usecase.ParticipantRepository.
type ParticipantRepository struct {
	pool *pgxpool.Pool
}

// NewParticipantRepository creates a new ParticipantRepository.
func NewParticipantRepository(pool *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

const participantColumns = `id, name, type, rate, active, created_at, updated_at`

const getParticipantQuery = `
SELECT ` + participantColumns + `
FROM participants
WHERE id = $1`

// GetByID retrieves a participant by ID.
func (r *ParticipantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	p, err := scanParticipant(r.pool.QueryRow(ctx, getParticipantQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrParticipantNotFound
		}

		return nil, err
	}

	return p, nil
}

// Roster order decides which partner absorbs the rounding remainder,
// so both listings are ordered by creation time.
const getEligibleQuery = `
SELECT ` + participantColumns + `
FROM participants
WHERE active = TRUE
ORDER BY created_at, id`

// GetEligible lists active participants in roster order.
func (r *ParticipantRepository) GetEligible(ctx context.Context) ([]domain.Participant, error) {
	return r.queryParticipants(ctx, getEligibleQuery)
}

const listParticipantsQuery = `
SELECT ` + participantColumns + `
FROM participants
ORDER BY created_at, id`

// List lists all participants, active or not.
func (r *ParticipantRepository) List(ctx context.Context) ([]domain.Participant, error) {
	return r.queryParticipants(ctx, listParticipantsQuery)
}

func (r *ParticipantRepository) queryParticipants(ctx context.Context, query string) ([]domain.Participant, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, *p)
	}

	return participants, rows.Err()
}

func scanParticipant(row pgx.Row) (*domain.Participant, error) {
	var (
		p         domain.Participant
		pType     string
		rate      pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	if err := row.Scan(&p.ID, &p.Name, &pType, &rate, &p.Active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	p.Type = domain.ParticipantType(pType)
	p.Rate = numericToDecimal(rate)
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
