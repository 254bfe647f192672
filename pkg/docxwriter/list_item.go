package docxwriter

import (
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

// ListItemWriter writes *model.ListItem: one numbered paragraph whose body is
// a single run.
type ListItemWriter struct {
	ctx *Context
}

// NewListItemWriter creates a list item writer bound to ctx.
func NewListItemWriter(ctx *Context) *ListItemWriter {
	return &ListItemWriter{ctx: ctx}
}

func (lw *ListItemWriter) Write(w *xml.Writer, el model.Element) error {
	item, ok := el.(*model.ListItem)
	if !ok {
		return lw.ctx.mismatch("write list item", el)
	}
	err := lw.ctx.writeListParagraph(w, item, func() error {
		text := item.TextObject()
		return writeRun(w, text.Text(), text.FontStyle())
	})
	if err != nil {
		return newElementError("write list item", item, err)
	}
	return nil
}
