package codec

import (
	"encoding/xml"
	"fmt"
	"io"

	"menagerie/internal/domain"
)

// xmlDocument represents the XML structure for a tag sequence
type xmlDocument struct {
	XMLName xml.Name    `xml:"Entities"`
	Items   []xmlRecord `xml:"Entity"`
}

type xmlRecord struct {
	Type string `xml:"Type"`
}

// XMLCodec handles XML encoding of tag sequences
type XMLCodec struct{}

// NewXMLCodec creates a new XML codec
func NewXMLCodec() *XMLCodec {
	return &XMLCodec{}
}

// Format returns the codec format identifier
func (c *XMLCodec) Format() string {
	return "xml"
}

// Extension returns the file extension for this format
func (c *XMLCodec) Extension() string {
	return "xml"
}

// Encode writes tags as an Entities document with one Entity per tag
func (c *XMLCodec) Encode(w io.Writer, tags []domain.Tag) error {
	doc := xmlDocument{
		Items: make([]xmlRecord, 0, len(tags)),
	}
	for _, tag := range tags {
		doc.Items = append(doc.Items, xmlRecord{Type: string(tag)})
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	defer encoder.Close()

	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode XML: %w", err)
	}

	return nil
}

// Decode reads an Entities document back into tags
func (c *XMLCodec) Decode(r io.Reader) ([]domain.Tag, error) {
	var doc xmlDocument
	decoder := xml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	tags := make([]domain.Tag, 0, len(doc.Items))
	for _, rec := range doc.Items {
		tags = append(tags, domain.Tag(rec.Type))
	}

	return tags, nil
}
