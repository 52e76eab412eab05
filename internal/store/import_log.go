package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

// Estados posibles de una importación
const (
	ImportStatusRunning   = "running"
	ImportStatusCompleted = "completed"
	ImportStatusFailed    = "failed"
)

// StartImportLog registra el inicio de una importación y devuelve su ID
func (s *Store) StartImportLog(filename string, fileSize int64) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (filename, file_size, status, started_at)
		VALUES (?, ?, ?, ?)
	`, filename, fileSize, ImportStatusRunning, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to insert import log: %w", err)
	}
	return res.LastInsertId()
}

// FinishImportLog cierra una importación con su resultado
func (s *Store) FinishImportLog(id int64, totalRows, importedRows, skippedRows int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs
		SET total_rows = ?, imported_rows = ?, skipped_rows = ?,
		    status = ?, error_message = ?, completed_at = ?
		WHERE id = ?
	`, totalRows, importedRows, skippedRows, status, errorMessage, time.Now(), id)
	return err
}

// LastImport devuelve la importación más reciente, si existe
func (s *Store) LastImport() (*model.ImportLog, error) {
	row := s.db.QueryRow(`
		SELECT id, filename, file_size, total_rows, imported_rows, skipped_rows,
		       status, error_message, started_at, completed_at
		FROM import_logs
		ORDER BY id DESC
		LIMIT 1
	`)

	log := &model.ImportLog{}
	err := row.Scan(
		&log.ID, &log.Filename, &log.FileSize, &log.TotalRows, &log.ImportedRows,
		&log.SkippedRows, &log.Status, &log.ErrorMessage, &log.StartedAt, &log.CompletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan import log: %w", err)
	}
	return log, nil
}
