package usecase

import "errors"

// ErrStaleReportUnavailable is returned when the staleness report backing a
// validation run cannot be produced.
var ErrStaleReportUnavailable = errors.New("stale report unavailable")
