package patch

// Coalesce returns the value pointed to by ptr when non-nil, else fallback.
// Used to merge optional patch fields onto stored values.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
