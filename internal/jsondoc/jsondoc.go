// Package jsondoc converts JSON text into pretty-printable documents.
//
// Objects and arrays are bracketed and grouped, so small values stay on a
// single line and large ones are broken up, one member per line. Members
// keep their order of appearance in the input.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/pretty"
	"github.com/npillmayer/pretty/internal/theme"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("pretty")
}

// ErrJSON is wrapped by all errors reporting malformed input.
var ErrJSON = errors.New("invalid JSON")

// Converter creates documents from JSON input.
type Converter struct {
	theme *theme.Theme
}

// New creates a converter styling tokens with th. th may be nil.
func New(th *theme.Theme) *Converter {
	if th == nil {
		th = &theme.Theme{}
	}
	return &Converter{theme: th}
}

// Read converts all JSON values from r, which may contain a stream of
// whitespace-separated values. Each value becomes one document.
func (c *Converter) Read(r io.Reader) ([]pretty.Doc, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var docs []pretty.Doc
	for {
		d, err := c.value(dec)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, c.wrap(dec, err)
		}
		docs = append(docs, d)
	}
	tracer().Debugf("converted %d JSON values", len(docs))
	return docs, nil
}

// FromBytes converts a single JSON value.
func (c *Converter) FromBytes(data []byte) (pretty.Doc, error) {
	docs, err := c.Read(bytes.NewReader(data))
	if err != nil {
		return pretty.Empty(), err
	}
	if len(docs) != 1 {
		return pretty.Empty(), fmt.Errorf("%w: expected a single value, found %d", ErrJSON, len(docs))
	}
	return docs[0], nil
}

// wrap adds the input offset to decoding errors.
func (c *Converter) wrap(dec *json.Decoder, err error) error {
	if err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: unexpected end of input", ErrJSON)
	}
	return fmt.Errorf("%w at offset %d: %v", ErrJSON, dec.InputOffset(), err)
}

func (c *Converter) value(dec *json.Decoder) (pretty.Doc, error) {
	tok, err := dec.Token()
	if err != nil {
		return pretty.Empty(), err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return c.object(dec)
		case '[':
			return c.array(dec)
		}
		return pretty.Empty(), fmt.Errorf("unexpected %q", rune(v))
	case json.Number:
		return theme.Token(v.String(), c.theme.Number), nil
	case string:
		return theme.Token(quote(v), c.theme.String), nil
	case bool:
		return theme.Token(fmt.Sprint(v), c.theme.Keyword), nil
	case nil:
		return theme.Token("null", c.theme.Keyword), nil
	}
	return pretty.Empty(), fmt.Errorf("unexpected token %v", tok)
}

func (c *Converter) object(dec *json.Decoder) (pretty.Doc, error) {
	var members []pretty.Doc
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return pretty.Empty(), eofIsUnexpected(err)
		}
		key, ok := tok.(string)
		if !ok {
			return pretty.Empty(), fmt.Errorf("object key expected, found %v", tok)
		}
		v, err := c.value(dec)
		if err != nil {
			return pretty.Empty(), eofIsUnexpected(err)
		}
		members = append(members, pretty.Concat(
			theme.Token(quote(key), c.theme.Key),
			theme.Token(":", c.theme.Punct),
			pretty.Nbsp(),
			v,
		))
	}
	if err := closing(dec, '}'); err != nil {
		return pretty.Empty(), err
	}
	return c.theme.Enclose(c.sequence(members), "{", "}"), nil
}

func (c *Converter) array(dec *json.Decoder) (pretty.Doc, error) {
	var elems []pretty.Doc
	for dec.More() {
		v, err := c.value(dec)
		if err != nil {
			return pretty.Empty(), eofIsUnexpected(err)
		}
		elems = append(elems, v)
	}
	if err := closing(dec, ']'); err != nil {
		return pretty.Empty(), err
	}
	return c.theme.Enclose(c.sequence(elems), "[", "]"), nil
}

func (c *Converter) sequence(docs []pretty.Doc) pretty.Doc {
	sep := theme.Token(",", c.theme.Punct).Append(pretty.Space())
	return pretty.Join(sep, docs...)
}

func closing(dec *json.Decoder, delim json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return eofIsUnexpected(err)
	}
	if tok != delim {
		return fmt.Errorf("expected %q, found %v", rune(delim), tok)
	}
	return nil
}

func eofIsUnexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// quote produces a JSON string literal. Unlike json.Marshal, it does not
// escape HTML characters.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Sprintf("%q", s)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
