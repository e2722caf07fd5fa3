package nav

// Picker hands a list of candidates to an interactive selector and returns
// the raw line it chose. It returns ErrCancelled when the user aborts.
type Picker interface {
	Pick(candidates []string) (string, error)
}
