package component

import "errors"

// Errors for the component registry and spec loader.
var (
	// ErrUnknownProvider indicates a spec names a provider no factory is
	// registered for.
	ErrUnknownProvider = errors.New("unknown condition provider")

	// ErrProviderExists indicates a factory is already registered for
	// the provider.
	ErrProviderExists = errors.New("condition provider already registered")

	// ErrInvalidSpec indicates a malformed spec or registration.
	ErrInvalidSpec = errors.New("invalid condition spec")

	// ErrSpecNotFound indicates the spec file does not exist.
	ErrSpecNotFound = errors.New("condition spec file not found")

	// ErrInvalidFormat indicates the spec file format is not supported
	// or could not be parsed.
	ErrInvalidFormat = errors.New("invalid condition spec format")
)
