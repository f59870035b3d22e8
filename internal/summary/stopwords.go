package summary

// stopwords is the fixed set of common English words filtered out when
// Options.ExcludeCommon is set. Matching is exact and case-insensitive
// (tokens are lowercased before lookup).
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "and", "a", "to", "of", "in", "is", "it", "you", "that",
		"he", "was", "for", "on", "are", "with", "as", "this", "from",
		"have", "been", "has", "had", "not", "what", "all", "were",
		"when", "we", "there", "can", "an", "which", "their", "said",
		"if", "will", "would", "about", "them", "then", "she", "many",
		"these", "so", "some", "her", "like", "him", "into", "time",
		"could", "no", "make", "than", "first", "its", "who", "now",
	} {
		stopwords[w] = struct{}{}
	}
}
