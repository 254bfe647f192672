package style

import (
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

const headerFooterDistance = 720

// Section writes section properties (w:sectPr).
type Section struct {
	Style *model.SectionStyle
}

// Write emits the section properties into w. A nil style uses the default page.
func (s Section) Write(w *xml.Writer) error {
	st := s.Style
	if st == nil {
		st = model.DefaultSectionStyle()
	}
	width, height := st.PageWidth, st.PageHeight
	landscape := st.Orientation == model.OrientationLandscape
	// Landscape pages swap the dimensions when the caller gave portrait ones.
	if landscape && width < height {
		width, height = height, width
	}

	w.StartElement("w:sectPr")
	w.StartElement("w:pgSz")
	writeIntAttr(w, "w:w", width)
	writeIntAttr(w, "w:h", height)
	if landscape {
		w.WriteAttribute("w:orient", model.OrientationLandscape)
	}
	w.EndElement()
	w.WriteElementBlock("w:pgMar",
		xml.IntAttr("w:top", st.MarginTop),
		xml.IntAttr("w:right", st.MarginRight),
		xml.IntAttr("w:bottom", st.MarginBottom),
		xml.IntAttr("w:left", st.MarginLeft),
		xml.IntAttr("w:header", headerFooterDistance),
		xml.IntAttr("w:footer", headerFooterDistance),
		xml.IntAttr("w:gutter", 0),
	)
	return w.EndElement()
}
