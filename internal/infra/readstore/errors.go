package readstore

import (
	"errors"

	"ridepool/internal/infra"

	"github.com/jackc/pgx/v5"
)

func wrapReadErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(infra.KindNotFound, msg, err)
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
