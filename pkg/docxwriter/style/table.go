package style

import (
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

var tableBorderSides = []string{"w:top", "w:left", "w:bottom", "w:right", "w:insideH", "w:insideV"}

// Table writes table properties (w:tblPr).
type Table struct {
	Style *model.TableStyle
}

// Write emits the table properties into w. A table always gets a w:tblPr with
// an automatic width.
func (t Table) Write(w *xml.Writer) error {
	w.StartElement("w:tblPr")
	w.WriteElementBlock("w:tblW", xml.IntAttr("w:w", 0), xml.Attr{Name: "w:type", Value: "auto"})
	if s := t.Style; s != nil {
		if s.Alignment != "" {
			w.WriteElementBlock("w:jc", xml.Attr{Name: "w:val", Value: s.Alignment})
		}
		if s.BorderSize > 0 {
			color := s.BorderColor
			if color == "" {
				color = "auto"
			}
			w.StartElement("w:tblBorders")
			for _, side := range tableBorderSides {
				w.WriteElementBlock(side,
					xml.Attr{Name: "w:val", Value: "single"},
					xml.IntAttr("w:sz", s.BorderSize),
					xml.IntAttr("w:space", 0),
					xml.Attr{Name: "w:color", Value: color},
				)
			}
			w.EndElement()
		}
		if s.CellMargin > 0 {
			w.StartElement("w:tblCellMar")
			for _, side := range tableBorderSides[:4] {
				w.WriteElementBlock(side, xml.IntAttr("w:w", s.CellMargin), xml.Attr{Name: "w:type", Value: "dxa"})
			}
			w.EndElement()
		}
	}
	return w.EndElement()
}

// Row writes row properties (w:trPr). Nothing is written for a row with no
// height and no style flags.
type Row struct {
	Height int
	Style  *model.RowStyle
}

// Write emits the row properties into w.
func (r Row) Write(w *xml.Writer) error {
	header := r.Style != nil && r.Style.TblHeader
	cantSplit := r.Style != nil && r.Style.CantSplit
	if r.Height <= 0 && !header && !cantSplit {
		return nil
	}
	w.StartElement("w:trPr")
	writeFlag(w, "w:cantSplit", cantSplit)
	if r.Height > 0 {
		w.WriteElementBlock("w:trHeight", xml.IntAttr("w:val", r.Height))
	}
	writeFlag(w, "w:tblHeader", header)
	return w.EndElement()
}

// Cell writes cell properties (w:tcPr).
type Cell struct {
	Width int
	Style *model.CellStyle
	// Header marks a cell of a header row. Header cells are vertically
	// centered unless the cell style sets its own alignment.
	Header bool
}

// Write emits the cell properties into w.
func (c Cell) Write(w *xml.Writer) error {
	w.StartElement("w:tcPr")
	if c.Width > 0 {
		w.WriteElementBlock("w:tcW", xml.IntAttr("w:w", c.Width), xml.Attr{Name: "w:type", Value: "dxa"})
	}
	var vAlign string
	if c.Style != nil {
		if c.Style.GridSpan > 1 {
			w.WriteElementBlock("w:gridSpan", xml.IntAttr("w:val", c.Style.GridSpan))
		}
		vAlign = c.Style.VAlign
	}
	if vAlign == "" && c.Header {
		vAlign = model.VAlignCenter
	}
	if vAlign != "" {
		w.WriteElementBlock("w:vAlign", xml.Attr{Name: "w:val", Value: vAlign})
	}
	return w.EndElement()
}
