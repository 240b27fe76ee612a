package endpoint

import (
	"bytes"
	"fmt"
	"slices"
)

// Kind is the tag of a [Body], selecting which of its fields are meaningful.
type Kind string

const (
	// KindNone means the endpoint has no body, it's the zero value.
	KindNone Kind = ""

	// KindRaw is an opaque sequence of bytes with a declared [Encoding].
	KindRaw Kind = "raw"

	// KindURLEncoded is a set of form fields sent as application/x-www-form-urlencoded.
	KindURLEncoded Kind = "urlencoded"

	// KindMultipart is a set of form fields sent as multipart/form-data.
	KindMultipart Kind = "multipart"
)

// UnmarshalText implements [encoding.TextUnmarshaler] for [Kind], rejecting
// unknown tags.
func (k *Kind) UnmarshalText(text []byte) error {
	switch kind := Kind(text); kind {
	case KindNone, KindRaw, KindURLEncoded, KindMultipart:
		*k = kind
		return nil
	default:
		return fmt.Errorf("unknown body kind %q, expected one of (raw|urlencoded|multipart)", kind)
	}
}

// Encoding is the declared encoding of a raw body.
type Encoding string

const (
	EncodingPlain       Encoding = "plain"
	EncodingJSON        Encoding = "json"
	EncodingXML         Encoding = "xml"
	EncodingOctetStream Encoding = "octet-stream"
)

// ContentType returns the MIME type conventionally used for the encoding.
//
// The empty encoding is treated as plain text.
func (e Encoding) ContentType() string {
	switch e {
	case EncodingJSON:
		return "application/json"
	case EncodingXML:
		return "application/xml"
	case EncodingOctetStream:
		return "application/octet-stream"
	default:
		return "text/plain"
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler] for [Encoding], rejecting
// unknown encodings.
func (e *Encoding) UnmarshalText(text []byte) error {
	switch encoding := Encoding(text); encoding {
	case "", EncodingPlain, EncodingJSON, EncodingXML, EncodingOctetStream:
		*e = encoding
		return nil
	default:
		return fmt.Errorf("unknown body encoding %q, expected one of (plain|json|xml|octet-stream)", encoding)
	}
}

// Content is the raw content of a body.
//
// It is equivalent to a []byte but has a custom implementation of
// [encoding.TextMarshaler] so documents can hold it as plain text rather
// than base64.
type Content []byte //nolint:recvcheck // Receiver must differ to match encoding.TextMarshaler

// MarshalText implements [encoding.TextMarshaler] for [Content].
func (c Content) MarshalText() ([]byte, error) {
	return c, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] for [Content].
func (c *Content) UnmarshalText(text []byte) error {
	*c = append((*c)[:0], text...)
	return nil
}

// String implements [fmt.Stringer] for [Content].
func (c Content) String() string {
	return string(c)
}

// Body is a HTTP request body, a tagged union over [Kind].
//
// For KindRaw only Encoding and Content are meaningful, for KindURLEncoded
// and KindMultipart only Fields is.
type Body struct {
	// Which variant this body is
	Kind Kind `json:"kind,omitempty" toml:"kind,omitempty" yaml:"kind,omitempty"`

	// Declared encoding of a raw body
	Encoding Encoding `json:"encoding,omitempty" toml:"encoding,omitempty" yaml:"encoding,omitempty"`

	// Content of a raw body
	Content Content `json:"content,omitempty" toml:"content,omitempty" yaml:"content,omitempty"`

	// Fields of a structured (form) body
	Fields []Param `json:"fields,omitempty" toml:"fields,omitempty" yaml:"fields,omitempty"`
}

// Raw returns a raw [Body] with the given encoding and content.
func Raw(encoding Encoding, content []byte) Body {
	return Body{
		Kind:     KindRaw,
		Encoding: encoding,
		Content:  bytes.Clone(content),
	}
}

// URLEncoded returns a url encoded form [Body] made of fields.
func URLEncoded(fields ...Param) Body {
	return Body{Kind: KindURLEncoded, Fields: slices.Clone(fields)}
}

// Multipart returns a multipart form [Body] made of fields.
func Multipart(fields ...Param) Body {
	return Body{Kind: KindMultipart, Fields: slices.Clone(fields)}
}

// IsZero reports whether b is the empty body.
func (b Body) IsZero() bool {
	return b.Kind == KindNone && b.Encoding == "" && len(b.Content) == 0 && len(b.Fields) == 0
}

// Clone returns a deep copy of b.
func (b Body) Clone() Body {
	clone := b
	clone.Content = bytes.Clone(b.Content)
	clone.Fields = slices.Clone(b.Fields)

	return clone
}

// Equal reports whether b and other are structurally equal.
func (b Body) Equal(other Body) bool {
	return b.Kind == other.Kind &&
		b.Encoding == other.Encoding &&
		bytes.Equal(b.Content, other.Content) &&
		slices.Equal(b.Fields, other.Fields)
}
