package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"duckgate/backend/helper"
	"duckgate/backend/internal/model"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/sirupsen/logrus"
)

type DuckDBOptions struct {
	ParquetPath  string
	DatabasePath string
	// QueryTimeout bounds a single Execute call. Zero disables it.
	QueryTimeout time.Duration
}

type DuckDBClient struct {
	opts DuckDBOptions
	log  logrus.FieldLogger
}

func NewDuckDBClient(opts DuckDBOptions, log logrus.FieldLogger) *DuckDBClient {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DuckDBClient{opts: opts, log: log}
}

// Resolve picks the data source by checking the configured paths in
// priority order: Parquet file first, then the database file.
func (d *DuckDBClient) Resolve() (model.Source, error) {
	if helper.PathExists(d.opts.ParquetPath) {
		return model.Source{Kind: model.SourceParquet, Path: d.opts.ParquetPath}, nil
	}
	if helper.PathExists(d.opts.DatabasePath) {
		return model.Source{Kind: model.SourceDuckDB, Path: d.opts.DatabasePath}, nil
	}
	return model.Source{}, ErrSourceNotFound
}

// Execute runs query verbatim against src. The DuckDB handle lives only
// for the duration of the call.
func (d *DuckDBClient) Execute(ctx context.Context, src model.Source, query string) (model.ResultSet, error) {
	if d.opts.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.opts.QueryTimeout)
		defer cancel()
	}

	db, err := openSource(src)
	if err != nil {
		return nil, classify(err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			d.log.WithError(err).WithField("source", src.Kind).Warn("Failed to close DuckDB handle")
		}
	}()

	results, err := runQuery(ctx, db, query)
	if err != nil {
		return nil, classify(err)
	}
	return results, nil
}

func openSource(src model.Source) (*sql.DB, error) {
	var dsn string
	switch src.Kind {
	case model.SourceParquet:
		// Empty DSN is an in-memory database; the query reads the file itself.
		dsn = ""
	case model.SourceDuckDB:
		dsn = src.Path + "?access_mode=read_only"
	default:
		return nil, fmt.Errorf("unsupported source kind %q", src.Kind)
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, err
	}
	// Single session per request.
	db.SetMaxOpenConns(1)
	return db, nil
}

func runQuery(ctx context.Context, db *sql.DB, query string) (model.ResultSet, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	// The driver scans UUID columns as 16 raw bytes.
	uuidCols := make([]bool, len(cols))
	for i, ct := range types {
		uuidCols[i] = ct.DatabaseTypeName() == "UUID"
	}

	results := model.ResultSet{}
	for rows.Next() {
		columns := make([]any, len(cols))
		columnPointers := make([]any, len(cols))

		for i := range columns {
			columnPointers[i] = &columns[i]
		}

		if err := rows.Scan(columnPointers...); err != nil {
			return nil, err
		}

		record := make(model.Record, len(cols))
		for i, colName := range cols {
			if uuidCols[i] {
				record[colName] = uuidString(columns[i])
				continue
			}
			record[colName] = normalizeValue(columns[i])
		}

		results = append(results, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
