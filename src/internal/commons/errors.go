package commons

import "errors"

var ErrRecordNotFound = errors.New("Account not found")
