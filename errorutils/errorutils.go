package errorutils

// Returns the value passed in if there is no error, otherwise it will panic.
// Only meant for values that are known good at init time.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
