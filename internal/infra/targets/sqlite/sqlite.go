package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mmrzaf/fuzzdb/internal/domain"
)

type SQLiteTarget struct {
	path string
	db   *sql.DB
}

func NewSQLiteTarget(path string) *SQLiteTarget {
	return &SQLiteTarget{path: path}
}

func (t *SQLiteTarget) Connect() error {
	db, err := sql.Open("sqlite3", t.path)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}
	t.db = db
	return nil
}

func (t *SQLiteTarget) Close() error {
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}

// CreateTable drops any previous table of the same name and emits DDL from
// the assembled definition. Categories map 1:1 onto SQLite storage classes.
func (t *SQLiteTarget) CreateTable(def *domain.TableDefinition) error {
	if _, err := t.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", def.Name)); err != nil {
		return err
	}

	columnDefs := make([]string, 0, len(def.Columns)+1)
	columnDefs = append(columnDefs, fmt.Sprintf("%s INTEGER PRIMARY KEY AUTOINCREMENT", def.IDColumn))
	for _, col := range def.Columns {
		columnDefs = append(columnDefs, fmt.Sprintf("%s %s", col.Name, string(col.Category)))
	}

	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", def.Name, strings.Join(columnDefs, ", "))
	_, err := t.db.Exec(createSQL)
	return err
}

func (t *SQLiteTarget) InsertBatch(tableName string, columns []string, rows [][]interface{}) error {
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
		placeholders[i] = "?"
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

type TableInfo struct {
	Name    string
	Rows    int64
	Columns []ColumnInfo
}

type ColumnInfo struct {
	Name string
	Type string
}

// Describe reads back the generated database for the info command.
func (t *SQLiteTarget) Describe() ([]TableInfo, error) {
	rows, err := t.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	infos := make([]TableInfo, 0, len(names))
	for _, name := range names {
		info := TableInfo{Name: name}

		colRows, err := t.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", name))
		if err != nil {
			return nil, err
		}
		for colRows.Next() {
			var (
				cid, notNull, pk int
				colName, colType string
				defaultValue     sql.NullString
			)
			if err := colRows.Scan(&cid, &colName, &colType, &notNull, &defaultValue, &pk); err != nil {
				colRows.Close()
				return nil, err
			}
			info.Columns = append(info.Columns, ColumnInfo{Name: colName, Type: colType})
		}
		colRows.Close()

		if err := t.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", name)).Scan(&info.Rows); err != nil {
			return nil, err
		}

		infos = append(infos, info)
	}

	return infos, nil
}
