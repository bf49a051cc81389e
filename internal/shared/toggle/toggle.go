// Package toggle implements the idempotent create-or-delete semantics
// shared by like and follow edges.
package toggle

import (
	"context"
	"errors"
)

// ErrDuplicate is the sentinel callers return from create when the
// storage layer rejected the insert on a uniqueness constraint.
var ErrDuplicate = errors.New("edge already exists")

// Flip toggles an (actor, target) edge: when the edge exists it is
// removed and active=false is reported, otherwise it is created and
// active=true is reported.
//
// A create that loses a race to a concurrent caller fails with
// ErrDuplicate; that outcome is reported as active=true since exactly
// one edge exists afterwards either way.
func Flip(
	ctx context.Context,
	exists func(ctx context.Context) (bool, error),
	create func(ctx context.Context) error,
	remove func(ctx context.Context) error,
) (bool, error) {
	found, err := exists(ctx)
	if err != nil {
		return false, err
	}

	if found {
		if err := remove(ctx); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := create(ctx); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}
