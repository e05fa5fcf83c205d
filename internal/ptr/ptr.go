package ptr

// Ref returns a pointer to the value passed as argument. Handy for literal
// optional fields in tests and request payloads.
func Ref[T any](v T) *T {
	return &v
}
