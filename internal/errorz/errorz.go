package errorz

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrServer              = errors.New("server error")
)
