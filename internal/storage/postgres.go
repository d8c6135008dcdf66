package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/mjal-at/file-service/internal/models"
)

// PostgresStore implements MetadataStore on PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// ConnectPostgres opens a connection pool, verifies it, and ensures the
// schema exists.
func ConnectPostgres(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	s := &PostgresStore{db: db}
	if err := s.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS files (
		id UUID PRIMARY KEY,
		user_id VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		original_name VARCHAR(255) NOT NULL,
		size BIGINT NOT NULL,
		type VARCHAR(100) NOT NULL,
		path VARCHAR(500) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'completed',
		upload_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_files_user_id ON files(user_id);
	CREATE INDEX IF NOT EXISTS idx_files_upload_date ON files(upload_date DESC);
	`

	_, err := s.db.Exec(query)
	return err
}

func (s *PostgresStore) Insert(ctx context.Context, rec models.FileRecord) (models.FileRecord, error) {
	rec.ID = uuid.New().String()
	rec.UploadDate = time.Now().UTC()

	query := `
	INSERT INTO files (id, user_id, name, original_name, size, type, path, status, upload_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		rec.StoredName,
		rec.OriginalName,
		rec.Size,
		rec.MimeType,
		rec.StoragePath,
		rec.Status,
		rec.UploadDate,
	)
	if err != nil {
		return models.FileRecord{}, fmt.Errorf("failed to insert file record: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]models.FileRecord, error) {
	query := `
	SELECT id, user_id, name, original_name, size, type, path, status, upload_date
	FROM files WHERE user_id = $1 ORDER BY upload_date DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	records := []models.FileRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file records: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) Get(ctx context.Context, id, userID string) (models.FileRecord, error) {
	query := `
	SELECT id, user_id, name, original_name, size, type, path, status, upload_date
	FROM files WHERE id = $1 AND user_id = $2
	`
	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return models.FileRecord{}, ErrNotFound
		}
		return models.FileRecord{}, fmt.Errorf("failed to get file record: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id, userID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM files WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.FileRecord, error) {
	var rec models.FileRecord
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.StoredName,
		&rec.OriginalName,
		&rec.Size,
		&rec.MimeType,
		&rec.StoragePath,
		&rec.Status,
		&rec.UploadDate,
	)
	return rec, err
}
