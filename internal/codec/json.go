package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"menagerie/internal/domain"
)

// jsonRecord is the persisted shape: one object per entity, carrying only
// the type tag.
type jsonRecord struct {
	Type string `json:"Type"`
}

// JSONCodec handles JSON encoding of tag sequences
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Extension returns the file extension for this format
func (c *JSONCodec) Extension() string {
	return "json"
}

// Encode writes tags as a JSON array of tagged records
func (c *JSONCodec) Encode(w io.Writer, tags []domain.Tag) error {
	records := make([]jsonRecord, 0, len(tags))
	for _, tag := range tags {
		records = append(records, jsonRecord{Type: string(tag)})
	}

	encoder := json.NewEncoder(w)
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// Decode reads a JSON array of tagged records back into tags
func (c *JSONCodec) Decode(r io.Reader) ([]domain.Tag, error) {
	var records []jsonRecord
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	tags := make([]domain.Tag, 0, len(records))
	for _, rec := range records {
		tags = append(tags, domain.Tag(rec.Type))
	}

	return tags, nil
}
