package style

import (
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

// Paragraph writes paragraph properties.
type Paragraph struct {
	Style *model.ParagraphStyle
	// Inline writes direct formatting even when a named style is referenced.
	// Without it a named style is written as a bare w:pStyle reference.
	Inline bool
	// WithoutPPr writes the inner content only; the caller owns the w:pPr element.
	WithoutPPr bool
	// SkipSpacing leaves out the style's w:spacing so the caller can write a
	// merged one.
	SkipSpacing bool
}

// Write emits the properties into w.
func (p Paragraph) Write(w *xml.Writer) error {
	s := p.Style
	if s == nil {
		return nil
	}
	if !p.WithoutPPr {
		w.StartElement("w:pPr")
	}

	if s.StyleName != "" {
		w.WriteElementBlock("w:pStyle", xml.Attr{Name: "w:val", Value: s.StyleName})
	}
	if p.Inline || s.StyleName == "" {
		writeFlag(w, "w:keepNext", s.KeepNext)
		writeFlag(w, "w:keepLines", s.KeepLines)
		writeFlag(w, "w:pageBreakBefore", s.PageBreakBefore)
		if !p.SkipSpacing {
			Spacing{Spacing: s.Spacing}.Write(w)
		}
		if ind := s.Indentation; ind != nil {
			w.StartElement("w:ind")
			writeIntAttr(w, "w:left", ind.Left)
			writeIntAttr(w, "w:right", ind.Right)
			writeIntAttr(w, "w:hanging", ind.Hanging)
			writeIntAttr(w, "w:firstLine", ind.FirstLine)
			w.EndElement()
		}
		if s.Alignment != "" {
			w.WriteElementBlock("w:jc", xml.Attr{Name: "w:val", Value: s.Alignment})
		}
	}

	if !p.WithoutPPr {
		w.EndElement()
	}
	return w.Err()
}

// Spacing writes a w:spacing element. Zero values are left out and a spacing
// with no value set writes nothing.
type Spacing struct {
	Spacing *model.Spacing
}

// Write emits the spacing into w.
func (s Spacing) Write(w *xml.Writer) error {
	sp := s.Spacing
	if sp.IsZero() {
		return nil
	}
	w.StartElement("w:spacing")
	writeIntAttr(w, "w:before", sp.Before)
	writeIntAttr(w, "w:after", sp.After)
	writeIntAttr(w, "w:line", sp.Line)
	if sp.LineRule != "" {
		w.WriteAttribute("w:lineRule", sp.LineRule)
	}
	return w.EndElement()
}

func writeFlag(w *xml.Writer, name string, on bool) {
	if on {
		w.WriteElementBlock(name)
	}
}

func writeIntAttr(w *xml.Writer, name string, v int) {
	if v != 0 {
		a := xml.IntAttr(name, v)
		w.WriteAttribute(a.Name, a.Value)
	}
}
