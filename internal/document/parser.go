package document

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/klauspost/compress/gzip"
)

// Parser errors.
var (
	ErrEmptyDocument     = errors.New("document contains no root element")
	ErrMissingFiscalYear = errors.New("root element missing fiscalYear attribute")
	ErrMissingStates     = errors.New("document contains no State elements")
)

// Document is one fully parsed State Program Report export.
type Document struct {
	Root       *Node
	FiscalYear string
}

// Parse decompresses and parses a gzip-compressed XML export into the
// generic node representation. The whole document is materialized before
// any flattening begins.
func Parse(r io.Reader) (*Document, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer zr.Close()

	return ParseXML(zr)
}

// ParseXML parses an uncompressed XML export.
func ParseXML(r io.Reader) (*Document, error) {
	tree, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	var rootElem *xmlquery.Node
	for c := tree.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			rootElem = c
			break
		}
	}

	if rootElem == nil {
		return nil, ErrEmptyDocument
	}

	root := convertElement(rootElem)

	fiscalYear := root.Get("@fiscalYear").Text()
	if fiscalYear == "" {
		return nil, ErrMissingFiscalYear
	}

	return &Document{Root: root, FiscalYear: fiscalYear}, nil
}

// States returns the per-state elements in document order.
func (d *Document) States() ([]*Node, error) {
	states := d.Root.Get("State").Items()
	if len(states) == 0 {
		return nil, ErrMissingStates
	}

	return states, nil
}

// StateName returns the partition key of a state element.
func StateName(state *Node) string {
	return state.Get("@name").Text()
}

// convertElement maps one XML element onto the node representation:
// attributes become "@"-prefixed scalar children, repeated sibling elements
// collapse into a list, text-only elements become scalars, and empty
// elements become absent (explicit null).
func convertElement(elem *xmlquery.Node) *Node {
	children := make(map[string]*Node)
	var textParts []string

	for _, attr := range elem.Attr {
		children["@"+attr.Name.Local] = NewScalar(attr.Value)
	}

	hasElements := false

	for c := elem.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if t := strings.TrimSpace(c.Data); t != "" {
				textParts = append(textParts, t)
			}
		case xmlquery.ElementNode:
			hasElements = true
			key := c.Data
			converted := convertElement(c)

			existing, seen := children[key]
			if !seen {
				children[key] = converted
				continue
			}

			// Repeated sibling element: promote to a list.
			if existing.Kind() == List {
				existing.items = append(existing.items, converted)
			} else {
				children[key] = NewList(existing, converted)
			}
		}
	}

	text := strings.Join(textParts, " ")

	if !hasElements && len(elem.Attr) == 0 {
		if text == "" {
			return nil
		}

		return NewScalar(text)
	}

	if text != "" {
		children["#text"] = NewScalar(text)
	}

	// Drop children that converted to explicit nulls so lookups treat
	// <Empty/> and a missing element identically.
	for key, child := range children {
		if child == nil {
			delete(children, key)
		}
	}

	if len(children) == 0 {
		return nil
	}

	return NewObject(children)
}
