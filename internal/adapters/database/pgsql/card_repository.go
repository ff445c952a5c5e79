package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type PgxCardRepository struct {
	BaseRepository
}

func newPgxCardRepository(pool *pgxpool.Pool) portsrepo.CardRepositoryWithTx {
	return &PgxCardRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CardRepositoryWithTx = (*PgxCardRepository)(nil)

const cardQuery = `SELECT card_id, name, closing_day, due_day, created_at, last_updated_at FROM cards WHERE card_id = $1;`

func scanCard(row pgx.Row) (*domain.Card, error) {
	var m models.Card
	err := row.Scan(&m.CardID, &m.Name, &m.ClosingDay, &m.DueDay, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainCard(m)
	return &d, nil
}

// SaveCard inserts a new card.
func (r *PgxCardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	m := mapping.ToModelCard(card)
	query := `
		INSERT INTO cards (card_id, name, closing_day, due_day, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.CardID, m.Name, m.ClosingDay, m.DueDay, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert card "+m.CardID, err)
	}
	return nil
}

// FindCardByID retrieves a card by its ID.
func (r *PgxCardRepository) FindCardByID(ctx context.Context, cardID string) (*domain.Card, error) {
	card, err := scanCard(r.Pool.QueryRow(ctx, cardQuery, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find card by ID "+cardID, err)
	}
	return card, nil
}

// FindCardByIDInTx reads a card through tx.
func (r *PgxCardRepository) FindCardByIDInTx(ctx context.Context, tx pgx.Tx, cardID string) (*domain.Card, error) {
	card, err := scanCard(tx.QueryRow(ctx, cardQuery, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find card by ID "+cardID, err)
	}
	return card, nil
}

// SaveCardChargeInTx inserts a charge. A second charge for the same source transaction
// violates the unique constraint and is reported as ErrDuplicate.
func (r *PgxCardRepository) SaveCardChargeInTx(ctx context.Context, tx pgx.Tx, charge domain.CardChargeRecord) error {
	m := mapping.ToModelCardCharge(charge)
	query := `
		INSERT INTO card_charges (charge_id, card_id, amount, transaction_date, due_date, source_transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query, m.ChargeID, m.CardID, m.Amount, m.TransactionDate, m.DueDate, m.SourceTransactionID, m.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.NewAppError(500, "card charge already exists for transaction "+m.SourceTransactionID, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert card charge for transaction "+m.SourceTransactionID, err)
	}
	return nil
}

// DeleteCardChargeBySourceInTx deletes the charge mirroring sourceTransactionID.
func (r *PgxCardRepository) DeleteCardChargeBySourceInTx(ctx context.Context, tx pgx.Tx, sourceTransactionID string) (bool, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM card_charges WHERE source_transaction_id = $1;`, sourceTransactionID)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to delete card charge for transaction "+sourceTransactionID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListChargesByDueDate returns the charges of one statement.
func (r *PgxCardRepository) ListChargesByDueDate(ctx context.Context, cardID string, dueDate domain.CalendarDate) ([]domain.CardChargeRecord, error) {
	query := `
		SELECT charge_id, card_id, amount, transaction_date, due_date, source_transaction_id, created_at
		FROM card_charges
		WHERE card_id = $1 AND due_date = $2
		ORDER BY transaction_date, created_at, charge_id;
	`
	rows, err := r.Pool.Query(ctx, query, cardID, dueDate.Time())
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query charges for card "+cardID, err)
	}
	defer rows.Close()

	charges := []domain.CardChargeRecord{}
	for rows.Next() {
		var m models.CardCharge
		if err := rows.Scan(&m.ChargeID, &m.CardID, &m.Amount, &m.TransactionDate, &m.DueDate, &m.SourceTransactionID, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan charge row for card "+cardID, err)
		}
		charges = append(charges, mapping.ToDomainCardCharge(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating charge rows for card "+cardID, err)
	}
	return charges, nil
}
