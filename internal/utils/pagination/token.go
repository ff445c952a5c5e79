package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

const timeFormat = time.RFC3339Nano

// Cursor is the position of the last row of a page in
// (transaction_date, created_at, transaction_id) order.
type Cursor struct {
	TransactionDate domain.CalendarDate
	CreatedAt       time.Time
	TransactionID   string
}

// After reports whether a row with the given key sorts strictly after the cursor.
func (c Cursor) After(date domain.CalendarDate, createdAt time.Time, id string) bool {
	if cmp := date.Compare(c.TransactionDate); cmp != 0 {
		return cmp > 0
	}
	if !createdAt.Equal(c.CreatedAt) {
		return createdAt.After(c.CreatedAt)
	}
	return id > c.TransactionID
}

// EncodeToken creates a base64 encoded token from a cursor.
func EncodeToken(c Cursor) string {
	tokenStr := strings.Join([]string{
		c.TransactionDate.String(),
		c.CreatedAt.UTC().Format(timeFormat),
		c.TransactionID,
	}, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into a cursor.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := domain.ParseCalendarDate(parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (transaction date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return Cursor{TransactionDate: date, CreatedAt: createdAt, TransactionID: parts[2]}, nil
}
