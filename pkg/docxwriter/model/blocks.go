package model

// blocks provides the block level add operations shared by sections and cells.
type blocks struct {
	container
}

func (b *blocks) addText(owner Container, text string, font *FontStyle, para *ParagraphStyle) *Text {
	t := &Text{text: text, font: font, para: para}
	b.add(owner, t)
	return t
}

func (b *blocks) addTextBreak(owner Container, count int, font *FontStyle, para *ParagraphStyle) {
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		b.add(owner, &TextBreak{font: font, para: para})
	}
}

func (b *blocks) addPageBreak(owner Container) *PageBreak {
	pb := &PageBreak{}
	b.add(owner, pb)
	return pb
}

func (b *blocks) addTextRun(owner Container, para *ParagraphStyle) *TextRun {
	tr := &TextRun{para: para}
	tr.doc = b.doc
	b.add(owner, tr)
	return tr
}

func (b *blocks) addListItem(owner Container, text string, depth int, font *FontStyle, numStyle string, para *ParagraphStyle) (*ListItem, error) {
	numID, err := b.resolveNumID(numStyle)
	if err != nil {
		return nil, err
	}
	li := NewListItem(text, depth, numID, font, para)
	b.add(owner, li)
	return li, nil
}

func (b *blocks) addListItemRun(owner Container, depth int, numStyle string, para *ParagraphStyle) (*ListItemRun, error) {
	numID, err := b.resolveNumID(numStyle)
	if err != nil {
		return nil, err
	}
	lr := NewListItemRun(depth, numID, para)
	lr.doc = b.doc
	b.add(owner, lr)
	return lr, nil
}

func (b *blocks) addTable(owner Container, style *TableStyle) *Table {
	t := &Table{style: style, doc: b.doc}
	b.add(owner, t)
	return t
}

func (b *blocks) resolveNumID(numStyle string) (int, error) {
	if b.doc == nil {
		return 0, errDetachedContainer
	}
	return b.doc.NumberingID(numStyle)
}

// AddElement appends an element built outside the container, such as a list
// item created with NewListItem.
func (s *Section) AddElement(el Element) {
	s.add(s, el)
}

// Text is a run of text. As a block element it forms its own paragraph.
type Text struct {
	position
	text string
	font *FontStyle
	para *ParagraphStyle
}

// Text returns the text content.
func (t *Text) Text() string { return t.text }

// FontStyle returns the character formatting, or nil.
func (t *Text) FontStyle() *FontStyle { return t.font }

// ParagraphStyle returns the paragraph formatting, or nil.
func (t *Text) ParagraphStyle() *ParagraphStyle { return t.para }

// TextBreak is an empty paragraph in block content or a line break in inline
// content.
type TextBreak struct {
	position
	font *FontStyle
	para *ParagraphStyle
}

// FontStyle returns the character formatting, or nil.
func (b *TextBreak) FontStyle() *FontStyle { return b.font }

// ParagraphStyle returns the paragraph formatting, or nil.
func (b *TextBreak) ParagraphStyle() *ParagraphStyle { return b.para }

// PageBreak forces a new page.
type PageBreak struct {
	position
}

// TextRun is a paragraph assembled from inline elements.
type TextRun struct {
	position
	inlines
	para *ParagraphStyle
}

// ParagraphStyle returns the paragraph formatting, or nil.
func (tr *TextRun) ParagraphStyle() *ParagraphStyle { return tr.para }

// AddText appends an inline text run.
func (tr *TextRun) AddText(text string, font *FontStyle) *Text {
	return tr.addText(tr, text, font)
}

// AddTextBreak appends an inline line break.
func (tr *TextRun) AddTextBreak() *TextBreak {
	return tr.addBreak(tr)
}

// AddHTML appends the runs described by an inline HTML fragment.
func (tr *TextRun) AddHTML(fragment string) error {
	return tr.addHTML(tr, fragment)
}

// ListItem is a list entry whose body is a single styled text.
type ListItem struct {
	position
	text  *Text
	depth int
	numID int
}

// NewListItem creates a detached list item. Append it to a container before
// writing to get boundary spacing.
func NewListItem(text string, depth, numID int, font *FontStyle, para *ParagraphStyle) *ListItem {
	return &ListItem{
		text:  &Text{text: text, font: font, para: para},
		depth: depth,
		numID: numID,
	}
}

// NumID implements ListElement.
func (li *ListItem) NumID() int { return li.numID }

// Depth implements ListElement.
func (li *ListItem) Depth() int { return li.depth }

// TextObject returns the body text.
func (li *ListItem) TextObject() *Text { return li.text }

// ParagraphStyle implements ListElement; the body text carries it.
func (li *ListItem) ParagraphStyle() *ParagraphStyle { return li.text.para }

// ListItemRun is a list entry whose body is a sequence of inline runs with
// their own formatting.
type ListItemRun struct {
	position
	inlines
	depth int
	numID int
	para  *ParagraphStyle
}

// NewListItemRun creates a detached list item run.
func NewListItemRun(depth, numID int, para *ParagraphStyle) *ListItemRun {
	return &ListItemRun{depth: depth, numID: numID, para: para}
}

// NumID implements ListElement.
func (lr *ListItemRun) NumID() int { return lr.numID }

// Depth implements ListElement.
func (lr *ListItemRun) Depth() int { return lr.depth }

// ParagraphStyle implements ListElement.
func (lr *ListItemRun) ParagraphStyle() *ParagraphStyle { return lr.para }

// AddText appends an inline text run.
func (lr *ListItemRun) AddText(text string, font *FontStyle) *Text {
	return lr.addText(lr, text, font)
}

// AddTextBreak appends an inline line break.
func (lr *ListItemRun) AddTextBreak() *TextBreak {
	return lr.addBreak(lr)
}

// AddHTML appends the runs described by an inline HTML fragment.
func (lr *ListItemRun) AddHTML(fragment string) error {
	return lr.addHTML(lr, fragment)
}

// inlines provides the inline add operations shared by TextRun and ListItemRun.
type inlines struct {
	container
}

func (in *inlines) addText(owner Container, text string, font *FontStyle) *Text {
	t := &Text{text: text, font: font}
	in.add(owner, t)
	return t
}

func (in *inlines) addBreak(owner Container) *TextBreak {
	br := &TextBreak{}
	in.add(owner, br)
	return br
}

func (in *inlines) addHTML(owner Container, fragment string) error {
	spans, err := ParseInlineHTML(fragment)
	if err != nil {
		return err
	}
	for _, span := range spans {
		if span.Break {
			in.addBreak(owner)
			continue
		}
		in.addText(owner, span.Text, span.Font)
	}
	return nil
}

// Table is a grid of rows and cells.
type Table struct {
	position
	doc   *Document
	style *TableStyle
	rows  []*Row
}

// Style returns the table formatting, or nil.
func (t *Table) Style() *TableStyle { return t.style }

// Rows returns the rows in order.
func (t *Table) Rows() []*Row { return t.rows }

// AddRow appends a row. A zero height lets the content decide.
func (t *Table) AddRow(height int, style *RowStyle) *Row {
	r := &Row{table: t, height: height, style: style}
	t.rows = append(t.rows, r)
	return r
}

// Row is a table row.
type Row struct {
	table  *Table
	height int
	style  *RowStyle
	cells  []*Cell
}

// Height returns the row height in twips, or zero.
func (r *Row) Height() int { return r.height }

// Style returns the row formatting, or nil.
func (r *Row) Style() *RowStyle { return r.style }

// Cells returns the cells in order.
func (r *Row) Cells() []*Cell { return r.cells }

// IsHeader reports whether the row is a repeated header row.
func (r *Row) IsHeader() bool { return r.style != nil && r.style.TblHeader }

// AddCell appends a cell with the given width in twips.
func (r *Row) AddCell(width int, style *CellStyle) *Cell {
	c := &Cell{row: r, width: width, style: style}
	c.doc = r.table.doc
	r.cells = append(r.cells, c)
	return c
}

// Cell is a table cell and a block container of its own.
type Cell struct {
	blocks
	row   *Row
	width int
	style *CellStyle
}

// Width returns the cell width in twips.
func (c *Cell) Width() int { return c.width }

// Style returns the cell formatting, or nil.
func (c *Cell) Style() *CellStyle { return c.style }

// Row returns the row holding the cell.
func (c *Cell) Row() *Row { return c.row }

// AddText appends a text paragraph.
func (c *Cell) AddText(text string, font *FontStyle, para *ParagraphStyle) *Text {
	return c.addText(c, text, font, para)
}

// AddTextBreak appends count empty paragraphs.
func (c *Cell) AddTextBreak(count int, font *FontStyle, para *ParagraphStyle) {
	c.addTextBreak(c, count, font, para)
}

// AddTextRun appends a paragraph made of several inline runs.
func (c *Cell) AddTextRun(para *ParagraphStyle) *TextRun {
	return c.addTextRun(c, para)
}

// AddListItem appends a single-text list item.
func (c *Cell) AddListItem(text string, depth int, font *FontStyle, numStyle string, para *ParagraphStyle) (*ListItem, error) {
	return c.addListItem(c, text, depth, font, numStyle, para)
}

// AddListItemRun appends a list item built from several runs.
func (c *Cell) AddListItemRun(depth int, numStyle string, para *ParagraphStyle) (*ListItemRun, error) {
	return c.addListItemRun(c, depth, numStyle, para)
}

// AddTable appends a nested table.
func (c *Cell) AddTable(style *TableStyle) *Table {
	return c.addTable(c, style)
}

// AddElement appends an element built outside the container.
func (c *Cell) AddElement(el Element) {
	c.add(c, el)
}
