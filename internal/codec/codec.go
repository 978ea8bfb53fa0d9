package codec

import (
	"io"

	"menagerie/internal/domain"
)

// Codec encodes and decodes an ordered sequence of type tags in one wire
// format. Implementations must preserve order across a round trip.
type Codec interface {
	Encode(w io.Writer, tags []domain.Tag) error
	Decode(r io.Reader) ([]domain.Tag, error)

	// Format returns the codec format identifier
	Format() string

	// Extension returns the file extension for this format
	Extension() string
}
