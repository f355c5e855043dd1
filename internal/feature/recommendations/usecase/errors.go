package usecase

import "errors"

// ErrNoDelistedSecurities is returned when a cleanup script is requested but
// validation found nothing to remove.
var ErrNoDelistedSecurities = errors.New("no delisted securities to clean up")
