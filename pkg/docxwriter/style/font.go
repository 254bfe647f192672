package style

import (
	"math"

	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

// Font writes run properties (w:rPr).
type Font struct {
	Style *model.FontStyle
	// Inline merges the character formatting into the run. Without it a named
	// style is written as a bare w:rStyle reference.
	Inline bool
}

// Write emits the run properties into w.
func (f Font) Write(w *xml.Writer) error {
	s := f.Style
	if s == nil {
		return nil
	}
	w.StartElement("w:rPr")
	if s.StyleName != "" {
		w.WriteElementBlock("w:rStyle", xml.Attr{Name: "w:val", Value: s.StyleName})
	}
	if f.Inline || s.StyleName == "" {
		if s.Name != "" {
			w.WriteElementBlock("w:rFonts",
				xml.Attr{Name: "w:ascii", Value: s.Name},
				xml.Attr{Name: "w:hAnsi", Value: s.Name},
				xml.Attr{Name: "w:cs", Value: s.Name},
			)
		}
		writeFlag(w, "w:b", s.Bold)
		writeFlag(w, "w:i", s.Italic)
		writeFlag(w, "w:strike", s.Strike)
		if s.Color != "" {
			w.WriteElementBlock("w:color", xml.Attr{Name: "w:val", Value: s.Color})
		}
		if s.Size > 0 {
			// w:sz is measured in half-points
			halfPoints := int(math.Round(s.Size * 2))
			w.WriteElementBlock("w:sz", xml.IntAttr("w:val", halfPoints))
			w.WriteElementBlock("w:szCs", xml.IntAttr("w:val", halfPoints))
		}
		if s.Underline != "" {
			w.WriteElementBlock("w:u", xml.Attr{Name: "w:val", Value: s.Underline})
		}
		switch {
		case s.Superscript:
			w.WriteElementBlock("w:vertAlign", xml.Attr{Name: "w:val", Value: "superscript"})
		case s.Subscript:
			w.WriteElementBlock("w:vertAlign", xml.Attr{Name: "w:val", Value: "subscript"})
		}
	}
	return w.EndElement()
}
