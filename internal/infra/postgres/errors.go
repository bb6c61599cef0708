package postgres

import (
	"errors"
	"fmt"

	"quizhub-service/internal/domain"
	"github.com/jackc/pgconn"
)

const uniqueViolationCode = "23505"

// mapWriteErr translates a unique-constraint violation into the given domain
// duplicate error and anything else into ErrStoreUnavailable. Relying on the
// constraint keeps the duplicate check atomic with the insert.
func mapWriteErr(err error, onDuplicate error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return onDuplicate
	}
	return storeErr(err)
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
