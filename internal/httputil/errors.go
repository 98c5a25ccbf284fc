package httputil

import "errors"

var ErrRequestBodyEmpty = errors.New("the request body must not be empty")
