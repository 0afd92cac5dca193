package domain

import "errors"

var ErrFeedUnavailable = errors.New("rate feed unavailable")
