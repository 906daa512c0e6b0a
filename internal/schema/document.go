package schema

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// element is one node of a parsed instance document, with enough position
// information to produce line/column diagnostics.
type element struct {
	name     string
	ns       string
	attrs    []attribute
	children []*element
	text     strings.Builder
	line     int
	col      int
}

type attribute struct {
	name  string
	ns    string
	value string
}

func (e *element) attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

func (e *element) pos() string {
	return fmt.Sprintf("line %d, column %d", e.line, e.col)
}

// parseDocument builds the element tree for an XML document. A non-nil error
// means the document is not well-formed.
func parseDocument(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *element
	var stack []*element

	for {
		offset := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			line, col := position(data, offset)
			el := &element{
				name: t.Name.Local,
				ns:   t.Name.Space,
				line: line,
				col:  col,
			}
			for _, a := range t.Attr {
				if isNamespaceDecl(a.Name) {
					continue
				}
				el.attrs = append(el.attrs, attribute{name: a.Name.Local, ns: a.Name.Space, value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected closing tag </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}

	if len(stack) != 0 {
		return nil, fmt.Errorf("unclosed element <%s>", stack[len(stack)-1].name)
	}
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return root, nil
}

func isNamespaceDecl(n xml.Name) bool {
	return n.Local == "xmlns" || n.Space == "xmlns" || n.Space == "http://www.w3.org/2000/xmlns/"
}

// position converts a byte offset into 1-based line and column numbers.
func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = 1 + bytes.Count(prefix, []byte{'\n'})
	last := bytes.LastIndexByte(prefix, '\n')
	col = int(offset) - last
	return line, col
}
