package docxwriter

import (
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

// ContainerWriter writes the children of a container in order, choosing an
// element writer per child.
type ContainerWriter struct {
	ctx *Context
	// inline writes children as runs of the surrounding paragraph.
	inline bool
}

// NewBlockWriter creates a writer for sections and table cells.
func NewBlockWriter(ctx *Context) *ContainerWriter {
	return &ContainerWriter{ctx: ctx}
}

// NewInlineWriter creates a writer for the runs of text runs and list item runs.
func NewInlineWriter(ctx *Context) *ContainerWriter {
	return &ContainerWriter{ctx: ctx, inline: true}
}

// Write writes every child of container.
func (cw *ContainerWriter) Write(w *xml.Writer, container model.Container) error {
	for _, el := range container.Elements() {
		ew := cw.writerFor(el)
		if ew == nil {
			if err := cw.ctx.mismatch("write container", el); err != nil {
				return err
			}
			continue
		}
		if err := ew.Write(w, el); err != nil {
			return err
		}
	}
	return w.Err()
}

func (cw *ContainerWriter) writerFor(el model.Element) ElementWriter {
	if cw.inline {
		switch el.(type) {
		case *model.Text:
			return &TextWriter{ctx: cw.ctx, WithoutP: true}
		case *model.TextBreak:
			return &TextBreakWriter{ctx: cw.ctx, WithoutP: true}
		}
		return nil
	}

	switch el.(type) {
	case *model.Text:
		return NewTextWriter(cw.ctx)
	case *model.TextBreak:
		return NewTextBreakWriter(cw.ctx)
	case *model.PageBreak:
		return NewPageBreakWriter(cw.ctx)
	case *model.TextRun:
		return NewTextRunWriter(cw.ctx)
	case *model.ListItem:
		return NewListItemWriter(cw.ctx)
	case *model.ListItemRun:
		return NewListItemRunWriter(cw.ctx)
	case *model.Table:
		return NewTableWriter(cw.ctx)
	}
	return nil
}
