package inventory

import "errors"

// ErrLookupFailed — сервис остатков ответил ошибкой или некорректным телом.
var ErrLookupFailed = errors.New("inventory lookup failed")
