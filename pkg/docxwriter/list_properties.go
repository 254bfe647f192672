package docxwriter

import (
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/style"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

// listBoundarySpacing is the space before the first and after the last top
// level item of a list, in twips (15pt).
const listBoundarySpacing = 300

// spacingDirective is the extra space of a list item at a group boundary.
type spacingDirective struct {
	before, after int
}

func (d spacingDirective) isZero() bool {
	return d.before == 0 && d.after == 0
}

// listSpacing computes the boundary spacing of item. Only depth 0 items
// inside a container with a matching group get spacing.
func (c *Context) listSpacing(item model.ListElement) spacingDirective {
	if item.Depth() != 0 {
		return spacingDirective{}
	}
	parent := item.Parent()
	if parent == nil {
		c.logger.Warn("list item with numbering id %d has no container, skipping boundary spacing", item.NumID())
		return spacingDirective{}
	}
	pos := item.ElementIndex() - 1
	b, ok := c.Boundaries(parent).Lookup(item.NumID(), pos)
	if !ok {
		return spacingDirective{}
	}

	var d spacingDirective
	if pos == b.First {
		d.before = listBoundarySpacing
	}
	if pos == b.Last {
		d.after = listBoundarySpacing
	}
	return d
}

// validateListElement rejects values that cannot be written as numbering
// properties.
func validateListElement(item model.ListElement) error {
	verr := &ValidationError{}
	if item.Depth() < 0 {
		verr.add("depth", "must not be negative, got %d", item.Depth())
	}
	if item.NumID() <= 0 {
		verr.add("numId", "must be positive, got %d", item.NumID())
	}
	if item.Parent() != nil && item.ElementIndex() < 1 {
		verr.add("index", "must be positive, got %d", item.ElementIndex())
	}
	return verr.err()
}

// writeListProperties writes the content of the w:pPr of a list item: the
// inline paragraph style, the boundary spacing and the numbering reference.
// The caller owns the w:pPr element.
func (c *Context) writeListProperties(w *xml.Writer, item model.ListElement) error {
	para := item.ParagraphStyle()
	directive := c.listSpacing(item)
	var ownSpacing *model.Spacing
	if para != nil {
		ownSpacing = para.Spacing
	}
	merge := !directive.isZero() && !ownSpacing.IsZero()

	if err := (style.Paragraph{Style: para, Inline: true, WithoutPPr: true, SkipSpacing: merge}).Write(w); err != nil {
		return err
	}

	if !directive.isZero() {
		spacing := model.Spacing{Before: directive.before, After: directive.after}
		if merge {
			spacing.Line, spacing.LineRule = ownSpacing.Line, ownSpacing.LineRule
			if spacing.Before == 0 {
				spacing.Before = ownSpacing.Before
			}
			if spacing.After == 0 {
				spacing.After = ownSpacing.After
			}
		}
		if err := (style.Spacing{Spacing: &spacing}).Write(w); err != nil {
			return err
		}
	}

	w.StartElement("w:numPr")
	w.WriteElementBlock("w:ilvl", xml.IntAttr("w:val", item.Depth()))
	w.WriteElementBlock("w:numId", xml.IntAttr("w:val", item.NumID()))
	return w.EndElement()
}

// writeListParagraph writes a complete list paragraph; body writes the
// content that follows the properties.
func (c *Context) writeListParagraph(w *xml.Writer, item model.ListElement, body func() error) error {
	if err := validateListElement(item); err != nil {
		return err
	}
	w.StartElement("w:p")
	w.StartElement("w:pPr")
	if err := c.writeListProperties(w, item); err != nil {
		return err
	}
	w.EndElement()
	if err := body(); err != nil {
		return err
	}
	return w.EndElement()
}
