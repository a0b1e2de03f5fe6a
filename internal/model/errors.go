package model

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every *ConfigurationError via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports an unknown catalog key (class, location,
// modifier) or an invalid construction parameter. Nothing is created when
// it is returned.
type ConfigurationError struct {
	Kind string
	Key  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErr(kind, key string) error {
	return &ConfigurationError{Kind: kind, Key: key}
}
