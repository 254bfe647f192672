package docxwriter

import (
	"golang.org/x/text/unicode/norm"

	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/style"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

// ElementWriter writes one kind of element. Writers given an element of
// another kind do nothing, or fail with ErrElementMismatch in strict mode.
type ElementWriter interface {
	Write(w *xml.Writer, el model.Element) error
}

// writeRun writes one w:r holding text. Character formatting is merged into
// the run.
func writeRun(w *xml.Writer, text string, font *model.FontStyle) error {
	w.StartElement("w:r")
	if err := (style.Font{Style: font, Inline: true}).Write(w); err != nil {
		return err
	}
	w.StartElement("w:t")
	w.WriteAttribute("xml:space", "preserve")
	w.WriteText(norm.NFC.String(text))
	w.EndElement()
	return w.EndElement()
}

// TextWriter writes *model.Text. In block mode the run is wrapped in its own
// paragraph; WithoutP writes the run alone.
type TextWriter struct {
	ctx      *Context
	WithoutP bool
}

// NewTextWriter creates a block mode text writer.
func NewTextWriter(ctx *Context) *TextWriter {
	return &TextWriter{ctx: ctx}
}

func (tw *TextWriter) Write(w *xml.Writer, el model.Element) error {
	t, ok := el.(*model.Text)
	if !ok {
		return tw.ctx.mismatch("write text", el)
	}
	if tw.WithoutP {
		return writeRun(w, t.Text(), t.FontStyle())
	}
	w.StartElement("w:p")
	if err := (style.Paragraph{Style: t.ParagraphStyle()}).Write(w); err != nil {
		return err
	}
	if err := writeRun(w, t.Text(), t.FontStyle()); err != nil {
		return err
	}
	return w.EndElement()
}

// TextBreakWriter writes *model.TextBreak: an empty paragraph in block mode,
// a line break run with WithoutP.
type TextBreakWriter struct {
	ctx      *Context
	WithoutP bool
}

// NewTextBreakWriter creates a block mode break writer.
func NewTextBreakWriter(ctx *Context) *TextBreakWriter {
	return &TextBreakWriter{ctx: ctx}
}

func (bw *TextBreakWriter) Write(w *xml.Writer, el model.Element) error {
	br, ok := el.(*model.TextBreak)
	if !ok {
		return bw.ctx.mismatch("write text break", el)
	}
	if bw.WithoutP {
		w.StartElement("w:r")
		w.WriteElementBlock("w:br")
		return w.EndElement()
	}
	w.StartElement("w:p")
	para, font := br.ParagraphStyle(), br.FontStyle()
	if para != nil || font != nil {
		w.StartElement("w:pPr")
		if err := (style.Paragraph{Style: para, WithoutPPr: true}).Write(w); err != nil {
			return err
		}
		if err := (style.Font{Style: font}).Write(w); err != nil {
			return err
		}
		w.EndElement()
	}
	return w.EndElement()
}

// PageBreakWriter writes *model.PageBreak as a paragraph holding a page break.
type PageBreakWriter struct {
	ctx *Context
}

// NewPageBreakWriter creates a page break writer.
func NewPageBreakWriter(ctx *Context) *PageBreakWriter {
	return &PageBreakWriter{ctx: ctx}
}

func (pw *PageBreakWriter) Write(w *xml.Writer, el model.Element) error {
	if _, ok := el.(*model.PageBreak); !ok {
		return pw.ctx.mismatch("write page break", el)
	}
	w.StartElement("w:p")
	w.StartElement("w:r")
	w.WriteElementBlock("w:br", xml.Attr{Name: "w:type", Value: "page"})
	w.EndElement()
	return w.EndElement()
}

// TextRunWriter writes *model.TextRun: one paragraph holding every inline
// child as its own run.
type TextRunWriter struct {
	ctx *Context
}

// NewTextRunWriter creates a text run writer.
func NewTextRunWriter(ctx *Context) *TextRunWriter {
	return &TextRunWriter{ctx: ctx}
}

func (rw *TextRunWriter) Write(w *xml.Writer, el model.Element) error {
	tr, ok := el.(*model.TextRun)
	if !ok {
		return rw.ctx.mismatch("write text run", el)
	}
	w.StartElement("w:p")
	if err := (style.Paragraph{Style: tr.ParagraphStyle()}).Write(w); err != nil {
		return err
	}
	if err := NewInlineWriter(rw.ctx).Write(w, tr); err != nil {
		return err
	}
	return w.EndElement()
}
