package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

// mutateMessages carries the user-facing text for each terminal checkpoint of
// a single-row mutation.
type mutateMessages struct {
	notFound string
	invalid  string
	failure  string
	success  string
}

// mutateByID runs the write path shared by every single-row mutation in the
// system: reject the zero identity, fetch the row, apply the mutation,
// persist. Failure at any checkpoint is terminal and classified; the zero
// identity is rejected before storage is touched. apply may be nil (deletes);
// an error from apply classifies as a validation failure.
func mutateByID[T any](
	ctx context.Context,
	id uuid.UUID,
	msgs mutateMessages,
	fetch func(context.Context, uuid.UUID) (*T, error),
	apply func(*T) error,
	persist func(context.Context, *T) error,
) Result[T] {
	if id == uuid.Nil {
		return fail[T](StatusInvalidIdentity, msgs.notFound)
	}

	row, err := fetch(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fail[T](StatusNotFound, msgs.notFound)
		}
		return fail[T](StatusPersistence, msgs.failure)
	}

	if apply != nil {
		if err := apply(row); err != nil {
			return fail[T](StatusValidation, msgs.invalid)
		}
	}

	if err := persist(ctx, row); err != nil {
		return fail[T](StatusPersistence, msgs.failure)
	}

	return ok(row, msgs.success)
}
