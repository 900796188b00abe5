package cli

// MustGet is used with [Value] to panic if a namespace key is missing or mistyped.
// The developer usually knows whether a lookup can fail, so this keeps handler code flat.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
