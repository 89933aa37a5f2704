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

// CreateJob stores a job description. Job type is coerced into the
// enum set at the storage boundary.
func (db *DB) CreateJob(ctx context.Context, job *types.JobDescription) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	job.JobType = types.NormalizeJobType(job.JobType)

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job description: %w", err)
	}
	if err := schemas.ValidateEntity(schemas.JobDescriptionSchema, payload); err != nil {
		return err
	}

	skills, err := json.Marshal(job.RequiredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal required skills: %w", err)
	}
	keywords, err := json.Marshal(job.Keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO job_descriptions
		   (id, company, role, location, salary, job_type, industry, required_skills, keywords, raw_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at`,
		job.ID, job.Company, job.Role, job.Location, job.Salary,
		job.JobType, job.Industry, skills, keywords, job.RawText,
	).Scan(&job.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job description: %w", err)
	}
	return nil
}

// GetJob retrieves a job description by ID. Returns nil if not found.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.JobDescription, error) {
	var job types.JobDescription
	var skills, keywords []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, company, role, location, salary, job_type, industry,
		        required_skills, keywords, raw_text, created_at
		 FROM job_descriptions WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Company, &job.Role, &job.Location, &job.Salary,
		&job.JobType, &job.Industry, &skills, &keywords, &job.RawText, &job.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job description: %w", err)
	}

	if err := json.Unmarshal(skills, &job.RequiredSkills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal required skills: %w", err)
	}
	if err := json.Unmarshal(keywords, &job.Keywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
	}
	return &job, nil
}

// ListJobs retrieves job descriptions, newest first.
func (db *DB) ListJobs(ctx context.Context, limit int) ([]types.JobDescription, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, company, role, location, salary, job_type, industry,
		        required_skills, keywords, raw_text, created_at
		 FROM job_descriptions ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobDescription
	for rows.Next() {
		var job types.JobDescription
		var skills, keywords []byte
		if err := rows.Scan(&job.ID, &job.Company, &job.Role, &job.Location, &job.Salary,
			&job.JobType, &job.Industry, &skills, &keywords, &job.RawText, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job description: %w", err)
		}
		if err := json.Unmarshal(skills, &job.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal required skills: %w", err)
		}
		if err := json.Unmarshal(keywords, &job.Keywords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// UpdateJob replaces a stored job description. Explicit edits only;
// the record is otherwise immutable once referenced by an application.
func (db *DB) UpdateJob(ctx context.Context, job *types.JobDescription) error {
	job.JobType = types.NormalizeJobType(job.JobType)

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job description: %w", err)
	}
	if err := schemas.ValidateEntity(schemas.JobDescriptionSchema, payload); err != nil {
		return err
	}

	skills, err := json.Marshal(job.RequiredSkills)
	if err != nil {
		return fmt.Errorf("failed to marshal required skills: %w", err)
	}
	keywords, err := json.Marshal(job.Keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE job_descriptions
		 SET company = $1, role = $2, location = $3, salary = $4, job_type = $5,
		     industry = $6, required_skills = $7, keywords = $8, raw_text = $9
		 WHERE id = $10`,
		job.Company, job.Role, job.Location, job.Salary, job.JobType,
		job.Industry, skills, keywords, job.RawText, job.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job description: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job description not found: %s", job.ID)
	}
	return nil
}

// DeleteJob deletes a job description. Applications keep their
// snapshot fields, so history survives the delete.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM job_descriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job description: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job description not found: %s", id)
	}
	return nil
}
