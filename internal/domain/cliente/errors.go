package cliente

import "errors"

var ErrNotFound = errors.New("client not found")
