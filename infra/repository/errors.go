package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/corebank/ledger/pkg/domain/ledger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapStoreError converts storage-layer errors into the domain taxonomy so the
// retry harness can tell transient failures (connectivity, operational
// timeouts) from non-retryable ones (constraint violations). Errors already in
// the taxonomy, and business errors raised inside a unit of work, pass through
// unchanged.
func MapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
			return fmt.Errorf("%w: %s", ledger.ErrConflict, pgErr.Code)
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsOperatorIntervention(pgErr.Code),
			pgerrcode.IsInsufficientResources(pgErr.Code),
			pgErr.Code == pgerrcode.LockNotAvailable,
			pgErr.Code == pgerrcode.QueryCanceled:
			return fmt.Errorf("%w: %s", ledger.ErrStoreUnavailable, pgErr.Code)
		}
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicated key", ledger.ErrConflict)
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, gorm.ErrInvalidTransaction),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, io.EOF),
		isNetError(err):
		return fmt.Errorf("%w: %v", ledger.ErrStoreUnavailable, err)
	}

	return err
}

func isNetError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}
