// Package sanitize cleans the HTML-ish free-text fields embedded in report
// exports: abstracts and the exemplary narrative.
package sanitize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Options configure the sanitizer explicitly; there is no ambient
// process-wide configuration.
type Options struct {
	// KeepComments leaves HTML comments in place instead of stripping them.
	KeepComments bool

	// PreserveWhitespace skips collapsing whitespace runs in text content.
	PreserveWhitespace bool
}

// New builds the sanitizing function: parse the fragment in a body context,
// strip comments, normalize whitespace, and render the body-only result.
// Unparseable input yields nil, which callers store as a null value.
func New(opts Options) func(string) *string {
	return func(text string) *string {
		body := &html.Node{
			Type:     html.ElementNode,
			Data:     "body",
			DataAtom: atom.Body,
		}

		nodes, err := html.ParseFragment(strings.NewReader(text), body)
		if err != nil {
			return nil
		}

		var out strings.Builder

		for _, node := range nodes {
			if node.Type == html.CommentNode && !opts.KeepComments {
				continue
			}

			if node.Type == html.TextNode && !opts.PreserveWhitespace {
				node.Data = whitespaceRun.ReplaceAllString(node.Data, " ")
			}

			clean(node, opts)

			if err := html.Render(&out, node); err != nil {
				return nil
			}
		}

		cleaned := strings.TrimSpace(out.String())

		return &cleaned
	}
}

// clean removes comment nodes and normalizes text content in place.
func clean(n *html.Node, opts Options) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling

		switch c.Type {
		case html.CommentNode:
			if !opts.KeepComments {
				n.RemoveChild(c)
			}
		case html.TextNode:
			if !opts.PreserveWhitespace {
				c.Data = whitespaceRun.ReplaceAllString(c.Data, " ")
			}
		default:
			clean(c, opts)
		}

		c = next
	}
}
