package docxwriter

import (
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

// ListItemRunWriter writes *model.ListItemRun: one numbered paragraph whose
// body keeps the formatting of each inline child.
type ListItemRunWriter struct {
	ctx *Context
}

// NewListItemRunWriter creates a list item run writer bound to ctx.
func NewListItemRunWriter(ctx *Context) *ListItemRunWriter {
	return &ListItemRunWriter{ctx: ctx}
}

func (lw *ListItemRunWriter) Write(w *xml.Writer, el model.Element) error {
	item, ok := el.(*model.ListItemRun)
	if !ok {
		return lw.ctx.mismatch("write list item run", el)
	}
	err := lw.ctx.writeListParagraph(w, item, func() error {
		return NewInlineWriter(lw.ctx).Write(w, item)
	})
	if err != nil {
		return newElementError("write list item run", item, err)
	}
	return nil
}
