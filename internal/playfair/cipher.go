package playfair

import (
	"fmt"
	"io"
	"log/slog"
)

// Cipher applies the Playfair substitution rules with a single KeySquare.
type Cipher struct {
	square *KeySquare
	logger *slog.Logger
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithLogger makes the cipher log every substitution at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cipher) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCipher returns a Cipher over square.
func NewCipher(square *KeySquare, opts ...Option) *Cipher {
	cipher := &Cipher{
		square: square,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(cipher)
	}

	return cipher
}

// Square returns the KeySquare the cipher was built with.
func (c *Cipher) Square() *KeySquare {
	return c.square
}

// Encipher chunks text and enciphers the resulting digraphs.
func (c *Cipher) Encipher(text string) ([]Digraph, error) {
	return c.Transform(Chunkify(text), Encipher)
}

// Decipher chunks text and deciphers the resulting digraphs.
func (c *Cipher) Decipher(text string) ([]Digraph, error) {
	return c.Transform(Chunkify(text), Decipher)
}

// Transform substitutes every digraph. The first letter missing from the
// square aborts the whole transform and no partial output is returned.
func (c *Cipher) Transform(digraphs []Digraph, mode Mode) ([]Digraph, error) {
	out := make([]Digraph, 0, len(digraphs))

	for _, pair := range digraphs {
		shape, err := c.shapeOf(pair)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", mode, pair, err)
		}

		sub := c.substitute(shape, mode.Step())

		c.logger.Debug("substitution", "shape", shape.Kind, "in", pair.String(), "out", sub.String())

		out = append(out, sub)
	}

	return out, nil
}

func (c *Cipher) shapeOf(pair Digraph) (Shape, error) {
	pos1, err := c.square.PositionOf(pair.First)
	if err != nil {
		return Shape{}, err
	}

	pos2, err := c.square.PositionOf(pair.Second)
	if err != nil {
		return Shape{}, err
	}

	return Classify(pos1, pos2), nil
}

func (c *Cipher) substitute(shape Shape, step int) Digraph {
	sq := c.square

	switch shape.Kind {
	case VerticalLine:
		return Digraph{sq.At(shape.X1, shape.Y1+step), sq.At(shape.X2, shape.Y2+step)}
	case HorizontalLine:
		return Digraph{sq.At(shape.X1+step, shape.Y1), sq.At(shape.X2+step, shape.Y2)}
	default:
		return Digraph{sq.At(shape.X2, shape.Y1), sq.At(shape.X1, shape.Y2)}
	}
}
