package httperr

import "errors"

// BusinessError is a domain failure identified by a stable code. Err keeps
// the underlying cause for logs; it is never sent to clients.
type BusinessError struct {
	Code string
	Err  error
}

func (e BusinessError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func Wrap(code string, err error) error {
	return BusinessError{Code: code, Err: err}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
