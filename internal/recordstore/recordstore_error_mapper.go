package recordstore

import (
	"errors"

	recordstoreerrors "go-outpass/internal/recordstore/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return recordstoreerrors.ErrDuplicateRegistration
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return recordstoreerrors.ErrRecordNotFound
	}

	return err
}
