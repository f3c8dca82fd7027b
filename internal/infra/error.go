package infra

import (
	"errors"

	"colpa-mia/internal/pkg/errs"
)

type StoreErrorKind string

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

func WrapStoreErr(msg string, err error, kinds ...StoreErrorKind) error {
	kind := KindKVFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return StoreError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound      StoreErrorKind = "NOT_FOUND"
	KindKVFailure     StoreErrorKind = "KV_FAILURE"
	KindAlreadyExists StoreErrorKind = "ALREADY_EXISTS"
	KindDecodeFailure StoreErrorKind = "DECODE_FAILURE"
)
