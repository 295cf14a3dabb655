package service

import "fmt"

// SourceError reports a feed that could not be read. Nothing is parsed or
// written when it is returned.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("failed to read feed %s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
