package errors

import "fmt"

type ErrReadFile struct {
	Err error
}

func (e ErrReadFile) Error() string {
	return fmt.Sprintf("read file: %v", e.Err)
}

func (e ErrReadFile) Unwrap() error {
	return e.Err
}

func NewReadFileError(err error) error {
	return ErrReadFile{Err: err}
}

// ErrWriteFile wraps failures creating the report output file.
type ErrWriteFile struct {
	Path string
	Err  error
}

func (e ErrWriteFile) Error() string {
	return fmt.Sprintf("write file %s: %v", e.Path, e.Err)
}

func (e ErrWriteFile) Unwrap() error {
	return e.Err
}

func NewWriteFileError(path string, err error) error {
	return ErrWriteFile{Path: path, Err: err}
}
