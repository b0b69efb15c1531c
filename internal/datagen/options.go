package datagen

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed makes the generated dataset reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.reseed(seed)
	}
}

// WithCount sets the number of generated rows.
func WithCount(count int) Option {
	return func(g *Generator) {
		if count > 0 {
			g.count = count
		}
	}
}

// WithSubject sets the actor present in every generated cast.
func WithSubject(subject string) Option {
	return func(g *Generator) {
		if subject != "" {
			g.subject = subject
		}
	}
}

// WithMissingRates sets the per-row probability of a missing year and a
// missing poster.
func WithMissingRates(year, poster float64) Option {
	return func(g *Generator) {
		if year >= 0 && year <= 1 {
			g.missingYear = year
		}
		if poster >= 0 && poster <= 1 {
			g.missingPoster = poster
		}
	}
}
