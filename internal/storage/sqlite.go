package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/impactspark/impactspark/internal/record"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite query cache. The cache is disposable: it is rebuilt
// wholesale from the JSONL batch and never written to directly.
type DB struct {
	db *sql.DB
}

// selectWorkFields is the standard field list for SELECT queries.
const selectWorkFields = `title, authors, citations, pub_date, pub_year,
	keywords, abstract, source, work_type, doi,
	institutions, country_codes, topic, subfield, field, domain,
	fwci, open_access`

// OpenDB opens or creates the SQLite cache at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes.
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS works (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			authors TEXT NOT NULL,
			citations INTEGER NOT NULL,
			pub_date TEXT,
			pub_year INTEGER,
			keywords TEXT,
			abstract TEXT,
			source TEXT,
			work_type TEXT,
			doi TEXT,
			institutions TEXT,
			country_codes TEXT,
			topic TEXT,
			subfield TEXT,
			field TEXT,
			domain TEXT,
			fwci REAL,
			open_access INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_works_doi ON works(doi) WHERE doi IS NOT NULL AND doi != '';
		CREATE INDEX IF NOT EXISTS idx_works_year ON works(pub_year);
		CREATE INDEX IF NOT EXISTS idx_works_citations ON works(citations);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the cache and reloads it from a JSONL file.
// Returns the number of records loaded.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	records, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}

	if _, err := d.db.Exec("DELETE FROM works"); err != nil {
		return 0, fmt.Errorf("clearing works table: %w", err)
	}

	stmt, err := d.db.Prepare(`
		INSERT INTO works (` + selectWorkFields + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing works insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]

		var pubDate sql.NullString
		var pubYear sql.NullInt64
		if r.HasDate() {
			pubDate = sql.NullString{String: r.PublicationDate.Format("2006-01-02"), Valid: true}
			pubYear = sql.NullInt64{Int64: int64(r.Year()), Valid: true}
		}

		_, err = stmt.Exec(
			r.Title, r.Authors, record.CoerceCitations(r.Citations), pubDate, pubYear,
			nullableStringValue(r.Keywords), nullableStringValue(r.Abstract),
			nullableStringValue(r.Source), nullableStringValue(r.Type),
			nullableStringValue(r.DOI),
			nullableStringValue(r.Institutions), nullableStringValue(r.CountryCodes),
			nullableStringValue(r.Topic), nullableStringValue(r.Subfield),
			nullableStringValue(r.Field), nullableStringValue(r.Domain),
			r.FWCI, boolToInt(r.OpenAccess),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting work %d: %w", i, err)
		}
	}

	return len(records), nil
}

// ListFilters narrow a works listing. Zero values mean no constraint.
type ListFilters struct {
	YearFrom     int
	YearTo       int
	MinCitations int
	OpenAccess   bool // only open-access works when true
}

// List returns works matching all given filters, most-cited first.
func (d *DB) List(filters ListFilters, limit int) ([]record.Record, error) {
	query := `SELECT ` + selectWorkFields + ` FROM works WHERE 1=1`
	var args []interface{}

	if filters.YearFrom > 0 {
		query += " AND pub_year >= ?"
		args = append(args, filters.YearFrom)
	}
	if filters.YearTo > 0 {
		query += " AND pub_year <= ?"
		args = append(args, filters.YearTo)
	}
	if filters.MinCitations > 0 {
		query += " AND citations >= ?"
		args = append(args, filters.MinCitations)
	}
	if filters.OpenAccess {
		query += " AND open_access = 1"
	}

	query += " ORDER BY citations DESC, title"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing works: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// TopCited returns the n most cited works.
func (d *DB) TopCited(n int) ([]record.Record, error) {
	return d.List(ListFilters{}, n)
}

// Count returns the total number of cached works.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM works").Scan(&count)
	return count, err
}

func scanRecords(rows *sql.Rows) ([]record.Record, error) {
	var records []record.Record
	for rows.Next() {
		var r record.Record
		var pubDate sql.NullString
		var pubYear sql.NullInt64
		var keywords, abstract, source, workType, doi sql.NullString
		var institutions, countryCodes, topic, subfield, field, domain sql.NullString
		var openAccess int

		err := rows.Scan(
			&r.Title, &r.Authors, &r.Citations, &pubDate, &pubYear,
			&keywords, &abstract, &source, &workType, &doi,
			&institutions, &countryCodes, &topic, &subfield, &field, &domain,
			&r.FWCI, &openAccess,
		)
		if err != nil {
			return nil, err
		}

		if pubDate.Valid {
			if t, err := time.Parse("2006-01-02", pubDate.String); err == nil {
				r.PublicationDate = t
			}
		}
		r.Keywords = keywords.String
		r.Abstract = abstract.String
		r.Source = source.String
		r.Type = workType.String
		r.DOI = doi.String
		r.Institutions = institutions.String
		r.CountryCodes = countryCodes.String
		r.Topic = topic.String
		r.Subfield = subfield.String
		r.Field = field.String
		r.Domain = domain.String
		r.OpenAccess = openAccess != 0

		records = append(records, r)
	}
	return records, rows.Err()
}

// nullableStringValue converts a string to sql.NullString, treating empty
// as NULL.
func nullableStringValue(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
