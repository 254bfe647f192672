package xml

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Header is the XML declaration written at the top of every part.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

var (
	// ErrUnbalanced is returned when EndElement is called with no open element.
	ErrUnbalanced = errors.New("xml: end element without matching start")
	// ErrAttributeAfterContent is returned when an attribute is written after
	// the start tag of the current element has been closed.
	ErrAttributeAfterContent = errors.New("xml: attribute written after element content")
)

// Attr is a single attribute. Attributes keep the order they are given in.
type Attr struct {
	Name  string
	Value string
}

// IntAttr builds an attribute with an integer value.
func IntAttr(name string, value int) Attr {
	return Attr{Name: name, Value: strconv.Itoa(value)}
}

// Writer is a streaming XML emitter. Calls must be balanced: every
// StartElement needs a matching EndElement. The first error is sticky and
// returned by every later call.
type Writer struct {
	out     *bufio.Writer
	stack   []string
	pending bool // start tag written, '>' not yet
	err     error
}

// NewWriter creates a Writer emitting to out. Call Flush when done.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(out)}
}

// StartElement opens an element. Attributes may follow until content is written.
func (w *Writer) StartElement(name string) error {
	if w.err != nil {
		return w.err
	}
	w.closePending()
	w.writeString("<" + name)
	w.stack = append(w.stack, name)
	w.pending = true
	return w.err
}

// WriteAttribute adds an attribute to the element opened last.
func (w *Writer) WriteAttribute(name, value string) error {
	if w.err != nil {
		return w.err
	}
	if !w.pending {
		w.err = fmt.Errorf("%w: %s", ErrAttributeAfterContent, name)
		return w.err
	}
	w.writeAttr(name, value)
	return w.err
}

// EndElement closes the element opened last. An element without content is
// written as a self-closing tag.
func (w *Writer) EndElement() error {
	if w.err != nil {
		return w.err
	}
	if len(w.stack) == 0 {
		w.err = ErrUnbalanced
		return w.err
	}
	name := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	if w.pending {
		w.pending = false
		w.writeString("/>")
		return w.err
	}
	w.writeString("</" + name + ">")
	return w.err
}

// WriteElementBlock writes a complete element carrying only attributes.
func (w *Writer) WriteElementBlock(name string, attrs ...Attr) error {
	if err := w.StartElement(name); err != nil {
		return err
	}
	for _, a := range attrs {
		w.writeAttr(a.Name, a.Value)
	}
	return w.EndElement()
}

// WriteText writes escaped character data inside the current element.
func (w *Writer) WriteText(text string) error {
	if w.err != nil {
		return w.err
	}
	w.closePending()
	if w.err == nil {
		w.err = xml.EscapeText(w.out, []byte(text))
	}
	return w.err
}

// WriteRaw writes s unescaped. It is meant for declarations and pre-rendered
// fragments.
func (w *Writer) WriteRaw(s string) error {
	if w.err != nil {
		return w.err
	}
	w.closePending()
	w.writeString(s)
	return w.err
}

// Depth returns the number of currently open elements.
func (w *Writer) Depth() int {
	return len(w.stack)
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes buffered output. It fails if elements are still open.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if len(w.stack) > 0 {
		w.err = fmt.Errorf("xml: %d unclosed element(s), innermost %s", len(w.stack), w.stack[len(w.stack)-1])
		return w.err
	}
	w.err = w.out.Flush()
	return w.err
}

func (w *Writer) closePending() {
	if w.pending {
		w.pending = false
		w.writeString(">")
	}
}

func (w *Writer) writeAttr(name, value string) {
	if w.err != nil {
		return
	}
	w.writeString(" " + name + `="`)
	if w.err == nil {
		w.err = xml.EscapeText(w.out, []byte(value))
	}
	w.writeString(`"`)
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.out.WriteString(s)
}
