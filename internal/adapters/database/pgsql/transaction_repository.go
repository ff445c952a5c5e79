package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/SscSPs/finance_tracker/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `
	transaction_id, description, amount, transaction_date, is_paid, payment_status,
	payment_date, paid_amount, payment_type, card_id, card_charge_id, payment_observations,
	recurrence_group_id, recurrence_index, recurrence_total, created_at, last_updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.TransactionID,
		&t.Description,
		&t.Amount,
		&t.TransactionDate,
		&t.IsPaid,
		&t.PaymentStatus,
		&t.PaymentDate,
		&t.PaidAmount,
		&t.PaymentType,
		&t.CardID,
		&t.CardChargeID,
		&t.PaymentObservations,
		&t.RecurrenceGroupID,
		&t.RecurrenceIndex,
		&t.RecurrenceTotal,
		&t.CreatedAt,
		&t.LastUpdatedAt,
	)
	return t, err
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()
	transactions := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// SaveTransactions inserts a batch of transactions atomically.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);`

	batch := &pgx.Batch{}
	for _, txn := range transactions {
		m := mapping.ToModelTransaction(txn)
		batch.Queue(query,
			m.TransactionID,
			m.Description,
			m.Amount,
			m.TransactionDate,
			m.IsPaid,
			m.PaymentStatus,
			m.PaymentDate,
			m.PaidAmount,
			m.PaymentType,
			m.CardID,
			m.CardChargeID,
			m.PaymentObservations,
			m.RecurrenceGroupID,
			m.RecurrenceIndex,
			m.RecurrenceTotal,
			m.CreatedAt,
			m.LastUpdatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert transactions", err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by ID "+transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// FindTransactionByIDForUpdate locks the transaction row for the rest of tx.
func (r *PgxTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`
	m, err := scanTransaction(tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock transaction "+transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// UpdateTransactionPaymentInTx writes the payment columns of a transaction.
func (r *PgxTransactionRepository) UpdateTransactionPaymentInTx(ctx context.Context, tx pgx.Tx, transaction domain.Transaction) error {
	m := mapping.ToModelTransaction(transaction)
	query := `
		UPDATE transactions
		SET is_paid = $2, payment_status = $3, payment_date = $4, paid_amount = $5, payment_type = $6,
		    card_id = $7, card_charge_id = $8, payment_observations = $9, last_updated_at = $10
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.IsPaid,
		m.PaymentStatus,
		m.PaymentDate,
		m.PaidAmount,
		m.PaymentType,
		m.CardID,
		m.CardChargeID,
		m.PaymentObservations,
		m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update payment of transaction "+m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListTransactions pages through transactions in (transaction_date, created_at, transaction_id) order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// one extra row tells whether a next page exists
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + transactionColumns + ` FROM transactions`
	orderByClause := `ORDER BY transaction_date, created_at, transaction_id`
	args := []any{}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
		}
		query += ` WHERE (transaction_date, created_at, transaction_id) > ($1, $2, $3)`
		args = append(args, cursor.TransactionDate.Time(), cursor.CreatedAt, cursor.TransactionID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	results, err := collectTransactions(rows)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to read transaction rows", err)
	}

	var nextTokenVal *string
	if len(results) > limit {
		results = results[:limit]
		last := results[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{
			TransactionDate: domain.CalendarDateOf(last.TransactionDate),
			CreatedAt:       last.CreatedAt,
			TransactionID:   last.TransactionID,
		})
		nextTokenVal = &token
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}

// ListTransactionsByRecurrenceGroup returns a whole series in index order.
func (r *PgxTransactionRepository) ListTransactionsByRecurrenceGroup(ctx context.Context, groupID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE recurrence_group_id = $1
		ORDER BY recurrence_index;`
	rows, err := r.Pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recurrence group "+groupID, err)
	}
	results, err := collectTransactions(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read recurrence group "+groupID, err)
	}
	return mapping.ToDomainTransactionSlice(results), nil
}
