package summary

const (
	// DefaultLength is the maximum number of keywords returned.
	DefaultLength = 20
	// DefaultMinWordLength is the minimum token length that qualifies.
	DefaultMinWordLength = 4
)

// Options tunes keyword extraction. The zero value is not useful; start from
// DefaultOptions and override fields as needed.
type Options struct {
	Length        int
	MinWordLength int
	ExcludeCommon bool
}

// DefaultOptions returns the options applied when a caller supplies none.
func DefaultOptions() Options {
	return Options{
		Length:        DefaultLength,
		MinWordLength: DefaultMinWordLength,
		ExcludeCommon: false,
	}
}
