package docxwriter

import (
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/style"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

// writeDocumentPart writes word/document.xml. Every section is analysed before
// any markup is written; the emission pass only reads the stored boundaries.
func (c *Context) writeDocumentPart(w *xml.Writer, doc *model.Document) error {
	sections := doc.Sections()
	for _, section := range sections {
		c.Prepare(section)
	}

	w.WriteRaw(xml.Header)
	w.StartElement("w:document")
	for _, a := range xml.NamespaceAttrs(xml.NamespaceW, xml.NamespaceR) {
		w.WriteAttribute(a.Name, a.Value)
	}
	w.StartElement("w:body")

	body := NewBlockWriter(c)
	for i, section := range sections {
		if err := body.Write(w, section); err != nil {
			return WithContext(err, "write section", map[string]interface{}{"section": i})
		}
		if i == len(sections)-1 {
			break
		}
		// Earlier sections end with a paragraph carrying their properties
		w.StartElement("w:p")
		w.StartElement("w:pPr")
		if err := (style.Section{Style: section.Style()}).Write(w); err != nil {
			return err
		}
		w.EndElement()
		w.EndElement()
	}

	var last *model.SectionStyle
	if len(sections) > 0 {
		last = sections[len(sections)-1].Style()
	}
	if err := (style.Section{Style: last}).Write(w); err != nil {
		return err
	}

	w.EndElement()
	return w.EndElement()
}
