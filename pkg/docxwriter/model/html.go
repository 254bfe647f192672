package model

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InlineSpan is one piece of an inline HTML fragment: either text sharing a
// single formatting or a line break.
type InlineSpan struct {
	Text  string
	Font  *FontStyle
	Break bool
}

// inlineFormat is the formatting accumulated along the path to a text node.
type inlineFormat struct {
	bold, italic, underline, strike, sup, sub bool
}

func (f inlineFormat) font() *FontStyle {
	if f == (inlineFormat{}) {
		return nil
	}
	fs := &FontStyle{
		Bold:        f.bold,
		Italic:      f.italic,
		Strike:      f.strike,
		Superscript: f.sup,
		Subscript:   f.sub,
	}
	if f.underline {
		fs.Underline = "single"
	}
	return fs
}

// ParseInlineHTML converts a fragment using b, strong, i, em, u, s, strike,
// del, sup, sub, span and br into spans. Consecutive text with the same
// formatting is merged. Any other tag is an error.
func ParseInlineHTML(fragment string) ([]InlineSpan, error) {
	if fragment == "" {
		return nil, nil
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, fmt.Errorf("invalid HTML: %w", err)
	}

	var spans []InlineSpan
	var formats []inlineFormat
	for _, n := range nodes {
		if err := collectSpans(n, inlineFormat{}, &spans, &formats); err != nil {
			return nil, err
		}
	}
	return spans, nil
}

func collectSpans(n *html.Node, f inlineFormat, spans *[]InlineSpan, formats *[]inlineFormat) error {
	switch n.Type {
	case html.TextNode:
		if n.Data == "" {
			return nil
		}
		last := len(*spans) - 1
		if last >= 0 && !(*spans)[last].Break && (*formats)[last] == f {
			(*spans)[last].Text += n.Data
			return nil
		}
		*spans = append(*spans, InlineSpan{Text: n.Data, Font: f.font()})
		*formats = append(*formats, f)
		return nil
	case html.ElementNode:
		switch n.DataAtom {
		case atom.B, atom.Strong:
			f.bold = true
		case atom.I, atom.Em:
			f.italic = true
		case atom.U:
			f.underline = true
		case atom.S, atom.Strike, atom.Del:
			f.strike = true
		case atom.Sup:
			f.sup, f.sub = true, false
		case atom.Sub:
			f.sub, f.sup = true, false
		case atom.Span:
		case atom.Br:
			*spans = append(*spans, InlineSpan{Break: true})
			*formats = append(*formats, f)
			return nil
		default:
			return fmt.Errorf("unsupported HTML tag: %s", n.Data)
		}
	case html.CommentNode:
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectSpans(c, f, spans, formats); err != nil {
			return err
		}
	}
	return nil
}
