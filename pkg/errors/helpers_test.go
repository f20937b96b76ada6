package errors

import "fmt"

func fmtWrap(err error) error {
	return fmt.Errorf("context: %w", err)
}
