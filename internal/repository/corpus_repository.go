package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/Elactrac/dotnation-sub004/internal/models"
)

// CorpusRepository reads the confirmed-fraud corpus used for similarity
// matching. The engine itself never touches storage; the handler loads the
// corpus here when the caller does not supply one.
type CorpusRepository struct {
	db *sql.DB
}

func NewCorpusRepository(db *sql.DB) *CorpusRepository {
	return &CorpusRepository{db: db}
}

// ListKnownFraud returns all confirmed fraudulent campaigns.
func (r *CorpusRepository) ListKnownFraud(ctx context.Context) ([]models.KnownFraudEntry, error) {
	query := `
		SELECT id, title, description, reason
		FROM known_fraud_campaigns
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query known fraud corpus: %w", err)
	}
	defer rows.Close()

	var entries []models.KnownFraudEntry
	for rows.Next() {
		var entry models.KnownFraudEntry
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Description, &entry.Reason); err != nil {
			return nil, fmt.Errorf("scan known fraud entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// SaveConfirmedFraud records a campaign confirmed as fraudulent by the
// moderation workflow, together with the report flags that led there.
func (r *CorpusRepository) SaveConfirmedFraud(ctx context.Context, entry *models.KnownFraudEntry, flags []string) error {
	query := `
		INSERT INTO known_fraud_campaigns (id, title, description, reason, flags, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Title,
		entry.Description,
		entry.Reason,
		pq.Array(flags),
	)
	if err != nil {
		return fmt.Errorf("save confirmed fraud: %w", err)
	}
	return nil
}
