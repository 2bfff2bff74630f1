package servico

import "errors"

var ErrNotFound = errors.New("service not found")
