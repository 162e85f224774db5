package menuload

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// Stage names the extraction step a SheetError happened in.
type Stage string

const (
	StageRows  Stage = "rows"
	StageRange Stage = "range"
	StageWrite Stage = "write"
)

// SheetError reports a failure on one menu sheet. Path is the JSON file the
// sheet was going to, set for StageWrite.
type SheetError struct {
	SheetName string
	Stage     Stage
	Path      string
	Err       error
}

func (e *SheetError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("sheet %q: %s %s: %v", e.SheetName, e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("sheet %q: read %s: %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
