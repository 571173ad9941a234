package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobintake/internal/common"
	"github.com/dmitrijs2005/jobintake/internal/dbx"
	"github.com/dmitrijs2005/jobintake/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, document *models.Document) (*models.Document, error) {
	query :=
		`INSERT INTO documents (id, owner_record_id, title, storage_key)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		document.ID, document.OwnerRecordID, document.Title, document.StorageKey).Scan(&document.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return document, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Document, error) {
	query :=
		`SELECT id, owner_record_id, title, storage_key, created_at FROM documents
		 WHERE id = $1
		 `

	d := &models.Document{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.OwnerRecordID, &d.Title, &d.StorageKey, &d.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return d, nil
}

func (r *PostgresRepository) SetOwner(ctx context.Context, id, ownerRecordID string) error {
	query :=
		`UPDATE documents SET owner_record_id = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, ownerRecordID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerRecordID string) ([]*models.Document, error) {
	query :=
		`SELECT id, owner_record_id, title, storage_key, created_at FROM documents
		 WHERE owner_record_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerRecordID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var docs []*models.Document
	for rows.Next() {
		d := &models.Document{}
		if err := rows.Scan(&d.ID, &d.OwnerRecordID, &d.Title, &d.StorageKey, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return docs, nil
}

// Delete removes one document scoped to its owner, so a stale or forged id
// cannot remove another record's file.
func (r *PostgresRepository) Delete(ctx context.Context, id, ownerRecordID string) error {
	query :=
		`DELETE FROM documents
		 WHERE id = $1 AND owner_record_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, ownerRecordID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
