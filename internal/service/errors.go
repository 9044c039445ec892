package service

import (
	"errors"
	"strings"

	"github.com/marcboeker/go-duckdb"
)

// ErrSourceNotFound is returned when neither the Parquet file nor the
// database file exists.
var ErrSourceNotFound = errors.New("Dados não encontrados. Execute o notebook primeiro para gerar os dados.")

type ErrorKind string

const (
	ErrorKindParse     ErrorKind = "parse"
	ErrorKindExecution ErrorKind = "execution"
)

// QueryError wraps a failure reported by the engine. Error returns the
// engine's message unchanged.
type QueryError struct {
	Kind ErrorKind
	Err  error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is a SQL syntax error.
func IsParseError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Kind == ErrorKindParse
}

// IsExecutionError reports whether err failed after parsing.
func IsExecutionError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe) && qe.Kind == ErrorKindExecution
}

func classify(err error) error {
	if err == nil {
		return nil
	}

	var qe *QueryError
	if errors.As(err, &qe) {
		return err
	}

	var duckErr *duckdb.Error
	if errors.As(err, &duckErr) && duckErr.Type == duckdb.ErrorTypeParser {
		return &QueryError{Kind: ErrorKindParse, Err: err}
	}

	// Some driver paths only hand back the message text.
	if strings.HasPrefix(err.Error(), "Parser Error") {
		return &QueryError{Kind: ErrorKindParse, Err: err}
	}

	return &QueryError{Kind: ErrorKindExecution, Err: err}
}
