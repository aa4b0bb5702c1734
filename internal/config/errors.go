package config

import "errors"

// ErrInvalidConfig is returned by Validate and Load for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")
