package util

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

func IsExpectedError(err error) bool {
	return err == nil ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed)
}

func WrapWithBase(base error, msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", base, msg, err)
}

func WrapError(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
