package circumflex

// SentinelError is an error.
type SentinelError string

const (
	// ErrTypeMismatch indicates a stored value incompatible with the requested type.
	ErrTypeMismatch = SentinelError("type mismatch")

	// ErrCoercion indicates a value that cannot be coerced to the requested type.
	ErrCoercion = SentinelError("cannot coerce value")

	// ErrParse indicates a date value that does not match the supplied layout.
	ErrParse = SentinelError("cannot parse date")

	// ErrConfiguration indicates a missing instantiation target without a default.
	ErrConfiguration = SentinelError("no instantiation target")

	// ErrInstantiation indicates a name the registry cannot turn into an instance.
	ErrInstantiation = SentinelError("cannot instantiate")

	// ErrKeyNotFound indicates a missing entry.
	ErrKeyNotFound = SentinelError("missing entry")

	// ErrResourceLoad indicates a missing or malformed bootstrap resource.
	ErrResourceLoad = SentinelError("cannot load resource")

	// ErrNothingToReload indicates no callbacks were added to Reloader.
	ErrNothingToReload = SentinelError("nothing to reload")

	// ErrAlreadyReloaded indicates recent reload.
	ErrAlreadyReloaded = SentinelError("already reloaded")
)

// Error implements error.
func (e SentinelError) Error() string {
	return string(e)
}
