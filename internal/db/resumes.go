package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/applytrack/internal/schemas"
	"github.com/jonathan/applytrack/internal/types"
)

// StoredResume is a master resume record with its storage metadata.
type StoredResume struct {
	ID     uuid.UUID          `json:"id"`
	Resume types.MasterResume `json:"resume"`
}

// GetResume retrieves a master resume by ID. Returns nil if not found.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*StoredResume, error) {
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT data FROM resumes WHERE id = $1`,
		id,
	).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	stored := &StoredResume{ID: id}
	if err := json.Unmarshal(data, &stored.Resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	return stored, nil
}

// ListResumes retrieves all stored resumes, most recently updated first.
func (db *DB) ListResumes(ctx context.Context) ([]StoredResume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, data FROM resumes ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []StoredResume
	for rows.Next() {
		var stored StoredResume
		var data []byte
		if err := rows.Scan(&stored.ID, &data); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		if err := json.Unmarshal(data, &stored.Resume); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
		}
		resumes = append(resumes, stored)
	}
	return resumes, nil
}

// SaveResume upserts a full master resume. The payload is validated
// against its schema before any write; a failed save leaves the stored
// row untouched.
func (db *DB) SaveResume(ctx context.Context, id uuid.UUID, resume types.MasterResume) error {
	data, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	if err := schemas.ValidateEntity(schemas.MasterResumeSchema, data); err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (id, data)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET data = $2, updated_at = NOW()`,
		id, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// UpdateResumeFields merges a partial field map into the stored resume
// document. Only top-level fields present in the map are replaced; the
// merged result must still satisfy the schema.
func (db *DB) UpdateResumeFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*StoredResume, error) {
	stored, err := db.GetResume(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("resume not found: %s", id)
	}

	current, err := json.Marshal(stored.Resume)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(current, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	for k, v := range fields {
		doc[k] = v
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal merged resume: %w", err)
	}
	if err := schemas.ValidateEntity(schemas.MasterResumeSchema, merged); err != nil {
		return nil, err
	}

	var resume types.MasterResume
	if err := json.Unmarshal(merged, &resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal merged resume: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE resumes SET data = $1, updated_at = NOW() WHERE id = $2`,
		merged, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}

	return &StoredResume{ID: id, Resume: resume}, nil
}

// DeleteResume deletes a stored resume.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}
