package identicon

// Option configures Generate.
type Option func(g *generator)

type generator struct {
	newCanvas func() Canvas
}

// WithCanvas replaces the PNG canvas. fn is called once per image.
func WithCanvas(fn func() Canvas) Option {
	return func(g *generator) {
		g.newCanvas = fn
	}
}

func newGenerator(opts ...Option) *generator {
	g := &generator{
		newCanvas: func() Canvas { return NewPNGCanvas() },
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate hashes input and renders its identicon.
func Generate(input string, opts ...Option) (Image, error) {
	return GenerateFromHash(Hash(input), opts...)
}

// GenerateFromHash renders the identicon of an already hashed input.
func GenerateFromHash(raw RawHash, opts ...Option) (Image, error) {
	g := newGenerator(opts...)

	colored, err := PickColor(raw)
	if err != nil {
		return Image{}, err
	}

	pixels, err := MapPixels(FilterSquares(BuildGrid(colored)))
	if err != nil {
		return Image{}, err
	}

	return Render(pixels, g.newCanvas())
}
