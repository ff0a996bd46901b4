// internal/storage/postgres.go
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"club-portal/internal/common/errors"
	"club-portal/internal/common/logger"

	"github.com/google/uuid"
)

var identRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// PostgresStore implements Store on top of database/sql. Table and column
// names are interpolated into SQL, so both are checked against identRegex
// before use.
type PostgresStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgresStore(db *sql.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "storage"}),
	}
}

func (s *PostgresStore) Insert(ctx context.Context, table string, records []Record) error {
	if err := checkIdent(table); err != nil {
		return errors.NewDatabaseInsertFailedError(table, err)
	}

	for _, record := range records {
		id := uuid.New().String()
		createdAt := time.Now().UTC().Format(time.RFC3339)

		cols := []string{"id", "created_at"}
		args := []interface{}{id, createdAt}

		for _, col := range sortedKeys(record) {
			if err := checkIdent(col); err != nil {
				return errors.NewDatabaseInsertFailedError(table, err)
			}
			cols = append(cols, col)
			args = append(args, record[col])
		}

		placeholders := make([]string, len(cols))
		for i := range cols {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}

		query := fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s)",
			table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
		)

		if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
			return errors.NewDatabaseInsertFailedError(table, err)
		}

		s.logger.Info("record inserted", map[string]interface{}{
			"table": table,
			"id":    id,
		})
	}

	return nil
}

func (s *PostgresStore) Select(ctx context.Context, table, orderBy string) ([]Record, error) {
	if err := checkIdent(table); err != nil {
		return nil, errors.NewQueryExecutionFailedError(table, err)
	}

	query := fmt.Sprintf("SELECT * FROM %s", table)
	if orderBy != "" {
		col := strings.TrimSuffix(orderBy, " DESC")
		col = strings.TrimSuffix(col, " ASC")
		if err := checkIdent(strings.TrimSpace(col)); err != nil {
			return nil, errors.NewQueryExecutionFailedError(table, err)
		}
		query += " ORDER BY " + orderBy
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError(table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError(table, err)
	}

	var out []Record
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.NewQueryExecutionFailedError(table, err)
		}

		record := make(Record, len(cols))
		for i, col := range cols {
			switch v := values[i].(type) {
			case []byte:
				record[col] = string(v)
			default:
				record[col] = v
			}
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError(table, err)
	}

	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, table, id string, fields Record) error {
	if err := checkIdent(table); err != nil {
		return errors.NewQueryExecutionFailedError(table, err)
	}
	if len(fields) == 0 {
		return nil
	}

	sets := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	for i, col := range sortedKeys(fields) {
		if err := checkIdent(col); err != nil {
			return errors.NewQueryExecutionFailedError(table, err)
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(sets, ", "), len(args),
	)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.NewQueryExecutionFailedError(table, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.NewRecordNotFoundError(table, id)
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, table, id string) error {
	if err := checkIdent(table); err != nil {
		return errors.NewQueryExecutionFailedError(table, err)
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return errors.NewQueryExecutionFailedError(table, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.NewRecordNotFoundError(table, id)
	}

	return nil
}

func (s *PostgresStore) Count(ctx context.Context, table string) (int, error) {
	if err := checkIdent(table); err != nil {
		return 0, errors.NewQueryExecutionFailedError(table, err)
	}

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, errors.NewQueryExecutionFailedError(table, err)
	}

	return count, nil
}

func checkIdent(name string) error {
	if !identRegex.MatchString(name) {
		return fmt.Errorf("invalid identifier: %q", name)
	}
	return nil
}

// sortedKeys keeps generated SQL deterministic for a given record.
func sortedKeys(r Record) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
