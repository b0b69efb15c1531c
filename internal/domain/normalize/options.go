package normalize

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithPlaceholderPoster overrides the URL substituted for blank posters.
func WithPlaceholderPoster(url string) Option {
	return func(n *Normalizer) {
		if url != "" {
			n.poster = url
		}
	}
}

// WithMotifs overrides the candidate motif labels. Order is precedence order.
func WithMotifs(labels []string) Option {
	return func(n *Normalizer) {
		if len(labels) > 0 {
			n.motifs = labels
		}
	}
}
