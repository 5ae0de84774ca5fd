// Package pathdef models the mixer path definition stream.
//
// A definitions file is a shallow tag hierarchy of <path> and <ctl>
// elements. This package does not interpret the tags; it presents them as
// a flat stream of start/end events that the loader in pkg/route drives
// through its state machine. The only concrete producer is XMLSource,
// which adapts an encoding/xml token stream.
package pathdef

import (
	"encoding/xml"
	"errors"
	"io"
)

// Kind distinguishes tag stream events.
type Kind uint8

const (
	// Start is the opening of a tag, carrying its attributes.
	Start Kind = 0
	// End is the closing of a tag.
	End Kind = 1
)

// Attr is one name/value attribute pair of a start tag.
type Attr struct {
	Name  string
	Value string
}

// Tag is a single event in the definition stream.
type Tag struct {
	Kind  Kind
	Name  string
	Attrs []Attr
}

// Attr returns the value of the named attribute and whether it is present.
func (t Tag) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Source produces a definition stream. Next returns io.EOF when the
// stream is exhausted; any other error means the stream is broken and the
// consumer must discard everything built from it.
type Source interface {
	Next() (Tag, error)
}

// XMLSource adapts an XML document to a Source. Character data, comments
// and processing instructions are skipped; only element boundaries are
// reported.
type XMLSource struct {
	dec *xml.Decoder
}

// NewXMLSource returns an XMLSource reading from r.
func NewXMLSource(r io.Reader) *XMLSource {
	return &XMLSource{dec: xml.NewDecoder(r)}
}

// Next returns the next element boundary in the document.
func (s *XMLSource) Next() (Tag, error) {
	for {
		tok, err := s.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Tag{}, io.EOF
			}
			return Tag{}, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			tag := Tag{Kind: Start, Name: el.Name.Local}
			for _, a := range el.Attr {
				tag.Attrs = append(tag.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			return tag, nil
		case xml.EndElement:
			return Tag{Kind: End, Name: el.Name.Local}, nil
		}
	}
}

// Compile-time interface satisfaction check.
var _ Source = (*XMLSource)(nil)
