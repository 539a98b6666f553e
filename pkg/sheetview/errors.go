package sheetview

import (
	"errors"
	"fmt"
)

// ErrWrongFormat indicates the file name does not carry an accepted
// spreadsheet extension. The decoder is never invoked in this case.
var ErrWrongFormat = errors.New("unsupported file format")

// ErrNoWorkbook indicates an operation that needs a loaded workbook
// was called before any successful ingest.
var ErrNoWorkbook = errors.New("no workbook loaded")

// DecodeError represents a codec failure while ingesting a file. The
// sheet collection is left untouched when it is returned.
type DecodeError struct {
	BookName string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %q: %v", e.BookName, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(bookName string, err error) *DecodeError {
	return &DecodeError{BookName: bookName, Err: err}
}
