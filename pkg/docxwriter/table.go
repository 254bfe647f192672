package docxwriter

import (
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/style"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

// TableWriter writes *model.Table. Each cell is written as its own block
// container.
type TableWriter struct {
	ctx *Context
}

// NewTableWriter creates a table writer bound to ctx.
func NewTableWriter(ctx *Context) *TableWriter {
	return &TableWriter{ctx: ctx}
}

func (tw *TableWriter) Write(w *xml.Writer, el model.Element) error {
	table, ok := el.(*model.Table)
	if !ok {
		return tw.ctx.mismatch("write table", el)
	}
	rows := table.Rows()
	if len(rows) == 0 {
		tw.ctx.logger.Debug("skipping table without rows")
		return nil
	}

	w.StartElement("w:tbl")
	if err := (style.Table{Style: table.Style()}).Write(w); err != nil {
		return err
	}
	writeTableGrid(w, rows)

	for _, row := range rows {
		w.StartElement("w:tr")
		if err := (style.Row{Height: row.Height(), Style: row.Style()}).Write(w); err != nil {
			return err
		}
		for _, cell := range row.Cells() {
			if err := tw.writeCell(w, cell, row.IsHeader()); err != nil {
				return err
			}
		}
		w.EndElement()
	}
	return w.EndElement()
}

func (tw *TableWriter) writeCell(w *xml.Writer, cell *model.Cell, header bool) error {
	w.StartElement("w:tc")
	if err := (style.Cell{Width: cell.Width(), Style: cell.Style(), Header: header}).Write(w); err != nil {
		return err
	}
	if len(cell.Elements()) == 0 {
		// A cell must hold at least one paragraph
		w.WriteElementBlock("w:p")
	} else if err := NewBlockWriter(tw.ctx).Write(w, cell); err != nil {
		return err
	}
	return w.EndElement()
}

// writeTableGrid writes one w:gridCol per cell of the widest row.
func writeTableGrid(w *xml.Writer, rows []*model.Row) {
	widest := rows[0]
	for _, row := range rows[1:] {
		if len(row.Cells()) > len(widest.Cells()) {
			widest = row
		}
	}
	w.StartElement("w:tblGrid")
	for _, cell := range widest.Cells() {
		if cell.Width() > 0 {
			w.WriteElementBlock("w:gridCol", xml.IntAttr("w:w", cell.Width()))
		} else {
			w.WriteElementBlock("w:gridCol")
		}
	}
	w.EndElement()
}
