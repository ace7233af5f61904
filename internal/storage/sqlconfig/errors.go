package sqlconfig

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrDuplicate    = errors.New("duplicate key")
	ErrNoRowUpdated = errors.New("no row updated")
)

const uniqueViolation = pq.ErrorCode("23505")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
