package runtime

// Must panics if err is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
