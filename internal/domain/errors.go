package domain

import "errors"

// ErrNoOptions is returned when neither the help text nor the option catalog
// yields a single option.
var ErrNoOptions = errors.New("no options found for program")
