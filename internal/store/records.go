package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/innova67/cartas-vencimiento/internal/model"
)

// BatchInsertRecords inserta registros de cartera en una sola transacción
func (s *Store) BatchInsertRecords(records []*model.InsuranceRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO insurance_records (
			id, asegurado, no_poliza, compania, ramo, fin_de_vigencia,
			valor_asegurado, prima, materia_asegurada, beneficiario,
			telefono, correo, ejecutivo, source_file, row_no
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.ID, r.Asegurado, r.NoPoliza, r.Compania, r.Ramo, r.FinDeVigencia,
			r.ValorAsegurado, r.Prima, r.MateriaAsegurada, r.Beneficiario,
			r.Telefono, r.Correo, r.Ejecutivo, r.SourceFile, r.RowNo,
		)
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RecordQueryOptions filtros de consulta de registros
type RecordQueryOptions struct {
	Keyword string // busca en asegurado, póliza y compañía
	Limit   int
	Offset  int
}

const recordColumns = `id, asegurado, no_poliza, compania, ramo, fin_de_vigencia,
	valor_asegurado, prima, materia_asegurada, beneficiario,
	telefono, correo, ejecutivo, source_file, row_no, created_at`

// ListRecords consulta registros en orden de ingesta
func (s *Store) ListRecords(opts RecordQueryOptions) ([]*model.InsuranceRecord, error) {
	query := "SELECT " + recordColumns + " FROM insurance_records WHERE 1=1"
	args := []interface{}{}

	if kw := strings.TrimSpace(opts.Keyword); kw != "" {
		query += " AND (asegurado LIKE ? OR no_poliza LIKE ? OR compania LIKE ?)"
		like := "%" + kw + "%"
		args = append(args, like, like, like)
	}

	query += " ORDER BY rowid"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetRecordsByIDs consulta registros puntuales conservando el orden de ingesta
func (s *Store) GetRecordsByIDs(ids []string) ([]*model.InsuranceRecord, error) {
	if len(ids) == 0 {
		return []*model.InsuranceRecord{}, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := "SELECT " + recordColumns + " FROM insurance_records WHERE id IN (" +
		placeholders + ") ORDER BY rowid"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// CountRecords cantidad de registros importados
func (s *Store) CountRecords() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM insurance_records").Scan(&count)
	return count, err
}

// ClearRecords elimina todos los registros importados
func (s *Store) ClearRecords() error {
	_, err := s.db.Exec("DELETE FROM insurance_records")
	return err
}

func scanRecords(rows *sql.Rows) ([]*model.InsuranceRecord, error) {
	records := []*model.InsuranceRecord{}
	for rows.Next() {
		r := &model.InsuranceRecord{}
		err := rows.Scan(
			&r.ID, &r.Asegurado, &r.NoPoliza, &r.Compania, &r.Ramo, &r.FinDeVigencia,
			&r.ValorAsegurado, &r.Prima, &r.MateriaAsegurada, &r.Beneficiario,
			&r.Telefono, &r.Correo, &r.Ejecutivo, &r.SourceFile, &r.RowNo, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
