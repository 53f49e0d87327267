package postgres

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"github.com/mmrzaf/fuzzdb/internal/domain"
)

type PostgresTarget struct {
	dsn string
	db  *sql.DB
}

func NewPostgresTarget(dsn string) *PostgresTarget {
	return &PostgresTarget{dsn: dsn}
}

func (t *PostgresTarget) Connect() error {
	db, err := sql.Open("postgres", t.dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	t.db = db
	return nil
}

func (t *PostgresTarget) Close() error {
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}

func (t *PostgresTarget) CreateTable(def *domain.TableDefinition) error {
	if _, err := t.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", def.Name)); err != nil {
		return err
	}

	columnDefs := make([]string, 0, len(def.Columns)+1)
	columnDefs = append(columnDefs, fmt.Sprintf("%s BIGSERIAL PRIMARY KEY", def.IDColumn))
	for _, col := range def.Columns {
		columnDefs = append(columnDefs, fmt.Sprintf("%s %s", col.Name, mapCategory(col.Category)))
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", def.Name, strings.Join(columnDefs, ", "))
	_, err := t.db.Exec(createSQL)
	return err
}

func mapCategory(cat domain.Category) string {
	switch cat {
	case domain.CategoryInteger:
		return "BIGINT"
	case domain.CategoryReal:
		return "DOUBLE PRECISION"
	default:
		return "TEXT"
	}
}

func (t *PostgresTarget) InsertBatch(tableName string, columns []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := t.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row...); err != nil {
			return err
		}
	}

	return tx.Commit()
}
