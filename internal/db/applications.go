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

// applicationColumns is the select list shared by all application reads.
const applicationColumns = `id, job_description_id, company, role, location, status,
	application_date, notes, connection_info, application_link,
	saved_resume, saved_cover_letter, interviews, reminders, created_at, updated_at`

// updatableApplicationColumns maps JSON field names accepted in partial
// updates to their columns. Interviews and reminders are replaced
// wholesale as JSONB.
var updatableApplicationColumns = map[string]string{
	"company":          "company",
	"role":             "role",
	"location":         "location",
	"status":           "status",
	"applicationDate":  "application_date",
	"notes":            "notes",
	"connectionInfo":   "connection_info",
	"applicationLink":  "application_link",
	"savedResume":      "saved_resume",
	"savedCoverLetter": "saved_cover_letter",
	"interviews":       "interviews",
	"reminders":        "reminders",
}

// CreateApplication stores a new application. Status defaults to draft
// and is constrained to the enum set at the storage boundary.
func (db *DB) CreateApplication(ctx context.Context, app *types.Application) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	if app.Status == "" {
		app.Status = types.StatusDraft
	}
	if !types.ValidStatus(app.Status) {
		return fmt.Errorf("invalid application status: %q", app.Status)
	}

	payload, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("failed to marshal application: %w", err)
	}
	if err := schemas.ValidateEntity(schemas.ApplicationSchema, payload); err != nil {
		return err
	}

	interviews, err := json.Marshal(orEmpty(app.Interviews))
	if err != nil {
		return fmt.Errorf("failed to marshal interviews: %w", err)
	}
	reminders, err := json.Marshal(orEmpty(app.Reminders))
	if err != nil {
		return fmt.Errorf("failed to marshal reminders: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO applications
		   (id, job_description_id, company, role, location, status, application_date,
		    notes, connection_info, application_link, saved_resume, saved_cover_letter,
		    interviews, reminders)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING created_at, updated_at`,
		app.ID, app.JobDescriptionID, app.Company, app.Role, app.Location, app.Status,
		app.ApplicationDate, app.Notes, app.ConnectionInfo, app.ApplicationLink,
		app.SavedResume, app.SavedCoverLetter, interviews, reminders,
	).Scan(&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// GetApplication retrieves an application by ID. Returns nil if not found.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*types.Application, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)

	app, err := scanApplication(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ApplicationFilters holds optional filters for listing applications.
type ApplicationFilters struct {
	Status  string
	Company string
	Limit   int
}

// ListApplications retrieves applications with optional filters,
// newest first.
func (db *DB) ListApplications(ctx context.Context, filters ApplicationFilters) ([]types.Application, error) {
	if filters.Limit <= 0 {
		filters.Limit = 200
	}

	query := `SELECT ` + applicationColumns + ` FROM applications WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}
	if filters.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// UpdateApplication applies a partial field update. Unknown fields are
// rejected; status values are constrained to the enum set.
func (db *DB) UpdateApplication(ctx context.Context, id uuid.UUID, fields map[string]any) (*types.Application, error) {
	if len(fields) == 0 {
		return db.GetApplication(ctx, id)
	}

	setClauses, args, err := buildApplicationUpdate(fields)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE applications SET %s, updated_at = NOW() WHERE id = $%d RETURNING `+applicationColumns,
		setClauses, len(args),
	)

	row := db.pool.QueryRow(ctx, query, args...)
	app, err := scanApplication(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("application not found: %s", id)
		}
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return app, nil
}

// DeleteApplication deletes an application.
func (db *DB) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}

// buildApplicationUpdate turns a partial field map into SET clauses and
// ordered args. Field names follow the JSON shape of Application.
func buildApplicationUpdate(fields map[string]any) (string, []any, error) {
	for field := range fields {
		if _, ok := updatableApplicationColumns[field]; !ok {
			return "", nil, fmt.Errorf("unknown application field: %q", field)
		}
	}

	setClauses := ""
	args := []any{}

	// Deterministic clause order keeps queries reproducible
	for _, field := range []string{
		"company", "role", "location", "status", "applicationDate", "notes",
		"connectionInfo", "applicationLink", "savedResume", "savedCoverLetter",
		"interviews", "reminders",
	} {
		value, ok := fields[field]
		if !ok {
			continue
		}
		column := updatableApplicationColumns[field]

		if field == "status" {
			status, ok := value.(string)
			if !ok || !types.ValidStatus(status) {
				return "", nil, fmt.Errorf("invalid application status: %v", value)
			}
		}
		if field == "interviews" || field == "reminders" {
			encoded, err := json.Marshal(value)
			if err != nil {
				return "", nil, fmt.Errorf("failed to marshal %s: %w", field, err)
			}
			value = encoded
		}

		if setClauses != "" {
			setClauses += ", "
		}
		args = append(args, value)
		setClauses += fmt.Sprintf("%s = $%d", column, len(args))
	}

	if setClauses == "" {
		return "", nil, fmt.Errorf("no updatable fields provided")
	}

	return setClauses, args, nil
}

// scanApplication reads one application row.
func scanApplication(row pgx.Row) (*types.Application, error) {
	var app types.Application
	var interviews, reminders []byte

	err := row.Scan(&app.ID, &app.JobDescriptionID, &app.Company, &app.Role, &app.Location,
		&app.Status, &app.ApplicationDate, &app.Notes, &app.ConnectionInfo,
		&app.ApplicationLink, &app.SavedResume, &app.SavedCoverLetter,
		&interviews, &reminders, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(interviews, &app.Interviews); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interviews: %w", err)
	}
	if err := json.Unmarshal(reminders, &app.Reminders); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reminders: %w", err)
	}
	return &app, nil
}

// orEmpty substitutes an empty slice for nil so JSONB columns always
// hold arrays.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
