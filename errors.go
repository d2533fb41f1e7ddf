package sievego

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sievego/bitmap"
	"github.com/hupe1980/sievego/scheduler"
	"github.com/hupe1980/sievego/sieve"
)

var (
	// ErrInvalidArgument is returned for inputs rejected before any work is
	// scheduled: a zero block size, an unknown cell kind, or an n whose
	// block bounds cannot be represented in uint64.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResourceExhausted is returned when a bitmap cannot be allocated
	// within the configured limits. The run produces no partial result.
	ErrResourceExhausted = errors.New("resource exhausted")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, scheduler.ErrInvalidBlockSize) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	var overflow *sieve.ErrBoundsOverflow
	if errors.As(err, &overflow) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	var badKind *bitmap.ErrInvalidKind
	if errors.As(err, &badKind) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	var tooLarge *bitmap.ErrTooLarge
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: %w", ErrResourceExhausted, err)
	}

	return err
}
