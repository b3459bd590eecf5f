// Public domain.

// Package registry persists parsed header rows in the SQLite ingest
// registry.  The table shape is not fixed here; it is built from the column
// schema and uniqueness set the instrument's ingest configuration declares.
package registry

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // SQLite driver (pure Go, no CGO)
)

// Config declares the registry shape.
type Config struct {
	// Table name; "raw" when empty.
	Table string

	// Columns maps column name to storage type, "text" or "double".
	Columns map[string]string

	// Unique lists columns no two rows may share.
	Unique []string

	// Visit lists the columns grouping rows into visits.
	Visit []string
}

// Registry is an open ingest registry database.
type Registry struct {
	db  *sql.DB
	cfg Config
}

var sqlTypes = map[string]string{
	"text":   "TEXT",
	"double": "REAL",
}

// Open creates or opens the registry at path and ensures its schema.
func Open(path string, cfg Config) (*Registry, error) {
	if cfg.Table == "" {
		cfg.Table = "raw"
	}
	ddl, err := schemaDDL(cfg)
	if err != nil {
		return nil, err
	}

	// _pragma DSN parameters apply to every connection in the pool;
	// busy_timeout avoids "database locked" errors
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open registry")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "unable to ping registry")
	}
	if _, err := db.Exec(ddl); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "unable to create registry schema")
	}
	return &Registry{db: db, cfg: cfg}, nil
}

// Close closes the database.
func (r *Registry) Close() error { return r.db.Close() }

func schemaDDL(cfg Config) (string, error) {
	cols := make([]string, 0, len(cfg.Columns))
	for name := range cfg.Columns {
		cols = append(cols, name)
	}
	sort.Strings(cols)

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", cfg.Table)
	for i, name := range cols {
		st, ok := sqlTypes[cfg.Columns[name]]
		if !ok {
			return "", errors.Errorf("registry: column %s has unknown type %q",
				name, cfg.Columns[name])
		}
		sep := ","
		if i == len(cols)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "\t%s %s%s\n", name, st, sep)
	}
	b.WriteString(");\n")
	if len(cfg.Unique) > 0 {
		for _, u := range cfg.Unique {
			if _, ok := cfg.Columns[u]; !ok {
				return "", errors.Errorf("registry: unique key %s not in column schema", u)
			}
		}
		fmt.Fprintf(&b, "CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_unique ON %s(%s);\n",
			cfg.Table, cfg.Table, strings.Join(cfg.Unique, ", "))
	}
	return b.String(), nil
}

// Add inserts one row.  A row repeating the unique key set fails with the
// constraint error; the caller decides whether that aborts the ingest.
func (r *Registry) Add(ctx context.Context, row map[string]interface{}) error {
	cols := make([]string, 0, len(row))
	for name := range row {
		if _, ok := r.cfg.Columns[name]; !ok {
			return errors.Errorf("registry: row field %s not in column schema", name)
		}
		cols = append(cols, name)
	}
	sort.Strings(cols)

	args := make([]interface{}, len(cols))
	marks := make([]string, len(cols))
	for i, name := range cols {
		args[i] = row[name]
		marks[i] = "?"
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.cfg.Table, strings.Join(cols, ", "), strings.Join(marks, ", "))
	_, err := r.db.ExecContext(ctx, query, args...)
	return errors.Wrap(err, "unable to add registry row")
}

// Count returns the number of registered rows.
func (r *Registry) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s", r.cfg.Table)).Scan(&n)
	return n, errors.Wrap(err, "unable to count registry rows")
}

// Visits returns the visit-key projection of every row, ordered by the
// visit columns.  Each returned map holds one value per visit column.
func (r *Registry) Visits(ctx context.Context) ([]map[string]interface{}, error) {
	if len(r.cfg.Visit) == 0 {
		return nil, errors.New("registry: no visit columns declared")
	}
	sel := strings.Join(r.cfg.Visit, ", ")
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT %s FROM %s ORDER BY %s", sel, r.cfg.Table, sel))
	if err != nil {
		return nil, errors.Wrap(err, "unable to query visits")
	}
	defer rows.Close()

	var out []map[string]interface{}
	for rows.Next() {
		vals := make([]interface{}, len(r.cfg.Visit))
		ptrs := make([]interface{}, len(vals))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "unable to scan visit row")
		}
		m := make(map[string]interface{}, len(vals))
		for i, name := range r.cfg.Visit {
			m[name] = vals[i]
		}
		out = append(out, m)
	}
	return out, errors.Wrap(rows.Err(), "unable to read visits")
}
