package model

type SourceKind string

const (
	SourceParquet SourceKind = "parquet" // columnar file, queried from an in-memory session
	SourceDuckDB  SourceKind = "duckdb"  // database file, opened read-only
)

type Source struct {
	Kind SourceKind `json:"kind"`
	Path string     `json:"path"`
}
