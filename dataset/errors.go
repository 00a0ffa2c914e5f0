package dataset

import "errors"

var (
	// ErrFile marks a CSV path that is missing or unreadable.
	ErrFile = errors.New("file error")
	// ErrParse marks content that is not valid CSV.
	ErrParse = errors.New("parse error")
	// ErrColumn marks a reference to a column absent from the schema.
	ErrColumn = errors.New("column error")
)
