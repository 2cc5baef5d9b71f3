package patch

// Coalesce returns *v when v is non-nil, otherwise fallback.
func Coalesce[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}
