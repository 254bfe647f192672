package docxwriter

import (
	"strconv"

	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

// writeNumberingPart writes word/numbering.xml: one abstract definition per
// registered numbering style followed by the numbering instances that list
// items reference.
func writeNumberingPart(w *xml.Writer, defs []*model.NumberingDefinition) error {
	w.WriteRaw(xml.Header)
	w.StartElement("w:numbering")
	for _, a := range xml.NamespaceAttrs(xml.NamespaceW) {
		w.WriteAttribute(a.Name, a.Value)
	}

	for i, def := range defs {
		w.StartElement("w:abstractNum")
		w.WriteAttribute("w:abstractNumId", strconv.Itoa(i))
		if def.Style.Type != "" {
			w.WriteElementBlock("w:multiLevelType", xml.Attr{Name: "w:val", Value: def.Style.Type})
		}
		for level, lvl := range def.Style.Levels {
			writeNumberingLevel(w, level, lvl)
		}
		w.EndElement()
	}

	// Instances must follow every abstract definition
	for i, def := range defs {
		w.StartElement("w:num")
		w.WriteAttribute("w:numId", strconv.Itoa(def.NumID))
		w.WriteElementBlock("w:abstractNumId", xml.IntAttr("w:val", i))
		w.EndElement()
	}

	return w.EndElement()
}

func writeNumberingLevel(w *xml.Writer, level int, lvl model.NumberingLevel) {
	w.StartElement("w:lvl")
	w.WriteAttribute("w:ilvl", strconv.Itoa(level))

	start := lvl.Start
	if start == 0 {
		start = 1
	}
	w.WriteElementBlock("w:start", xml.IntAttr("w:val", start))
	if lvl.Format != "" {
		w.WriteElementBlock("w:numFmt", xml.Attr{Name: "w:val", Value: lvl.Format})
	}
	w.WriteElementBlock("w:lvlText", xml.Attr{Name: "w:val", Value: lvl.Text})
	if lvl.Alignment != "" {
		w.WriteElementBlock("w:lvlJc", xml.Attr{Name: "w:val", Value: lvl.Alignment})
	}

	if lvl.TabPos > 0 || lvl.Left > 0 || lvl.Hanging > 0 {
		w.StartElement("w:pPr")
		if lvl.TabPos > 0 {
			w.StartElement("w:tabs")
			w.WriteElementBlock("w:tab", xml.Attr{Name: "w:val", Value: "num"}, xml.IntAttr("w:pos", lvl.TabPos))
			w.EndElement()
		}
		if lvl.Left > 0 || lvl.Hanging > 0 {
			w.WriteElementBlock("w:ind", xml.IntAttr("w:left", lvl.Left), xml.IntAttr("w:hanging", lvl.Hanging))
		}
		w.EndElement()
	}

	if lvl.Font != "" {
		w.StartElement("w:rPr")
		w.WriteElementBlock("w:rFonts",
			xml.Attr{Name: "w:ascii", Value: lvl.Font},
			xml.Attr{Name: "w:hAnsi", Value: lvl.Font},
			xml.Attr{Name: "w:hint", Value: "default"},
		)
		w.EndElement()
	}
	w.EndElement()
}
