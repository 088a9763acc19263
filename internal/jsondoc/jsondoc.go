// Package jsondoc reads, writes, and merges JSON configuration documents.
//
// Documents are generic order-preserving mappings rather than fixed structs,
// so top-level keys this tool knows nothing about survive a read/modify/write
// cycle untouched and in their original order.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Doc is a JSON object whose key order survives round-trips. Values are
// json.Number, string, bool, nil, []any, or nested *Doc.
type Doc = *orderedmap.OrderedMap[string, any]

// New returns an empty document.
func New() Doc {
	return orderedmap.New[string, any]()
}

// ParseError reports malformed JSON in a document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing JSON document %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Read loads the JSON object at path. A missing file or a file containing
// only whitespace yields an empty document; malformed content yields a
// *ParseError.
func Read(path string) (Doc, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes raw JSON text into a document. Blank input yields an empty
// document; path is used only for error reporting.
func Parse(data []byte, path string) (Doc, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	doc, ok := value.(Doc)
	if !ok {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("top-level value is not an object")}
	}
	// Trailing garbage after the object is malformed input.
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("unexpected content after JSON object")}
	}
	return doc, nil
}

// Write serializes doc with two-space indentation and a single trailing
// newline, overwriting path.
func Write(path string, doc Doc) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing %s: %w", path, err)
	}
	out = append(out, '\n')
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// decodeValue recursively decodes the next JSON value from dec, producing
// nested Docs for objects so key order is preserved at every depth. The
// standard library unmarshals objects into unordered maps, which is why the
// token walk is done by hand.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool, or nil
		return tok, nil
	}

	switch delim {
	case '{':
		obj := New()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is not a string: %v", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, value)
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return obj, nil
	case '[':
		arr := make([]any, 0)
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

// ChildObject returns the nested object stored under key, if present.
func ChildObject(doc Doc, key string) (Doc, bool) {
	value, ok := doc.Get(key)
	if !ok {
		return nil, false
	}
	child, ok := value.(Doc)
	return child, ok
}

// EnsureObject returns the nested object under key, creating (or replacing a
// non-object value with) an empty one as needed.
func EnsureObject(doc Doc, key string) Doc {
	if child, ok := ChildObject(doc, key); ok {
		return child
	}
	child := New()
	doc.Set(key, child)
	return child
}

// StringAt returns the string value at the dotted key path, or "" if any
// segment is missing or the leaf is not a string.
func StringAt(doc Doc, path ...string) string {
	current := doc
	for i, key := range path {
		if i == len(path)-1 {
			value, ok := current.Get(key)
			if !ok {
				return ""
			}
			s, _ := value.(string)
			return s
		}
		child, ok := ChildObject(current, key)
		if !ok {
			return ""
		}
		current = child
	}
	return ""
}

// Equal reports whether two documents serialize identically. Used by tests;
// cheaper than a structural walk and exact by construction.
func Equal(a, b Doc) bool {
	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return strings.TrimSpace(string(aj)) == strings.TrimSpace(string(bj))
}
