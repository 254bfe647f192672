package model

import "fmt"

// Document is the root of the tree.
type Document struct {
	sections  []*Section
	numbering []*NumberingDefinition
	byName    map[string]*NumberingDefinition
	byID      map[int]*NumberingDefinition
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		byName: make(map[string]*NumberingDefinition),
		byID:   make(map[int]*NumberingDefinition),
	}
}

// AddSection appends a section. A nil style uses DefaultSectionStyle.
func (d *Document) AddSection(style *SectionStyle) *Section {
	if style == nil {
		style = DefaultSectionStyle()
	}
	s := &Section{style: style}
	s.doc = d
	d.sections = append(d.sections, s)
	return s
}

// Sections returns the sections in document order.
func (d *Document) Sections() []*Section {
	return d.sections
}

// AddNumberingStyle registers a numbering style under name and returns its
// numbering id. Registering the same name again returns the existing id.
func (d *Document) AddNumberingStyle(name string, style *NumberingStyle) (int, error) {
	if def, ok := d.byName[name]; ok {
		return def.NumID, nil
	}
	if style == nil {
		return 0, fmt.Errorf("numbering style %q: style is nil", name)
	}
	numID := style.NumID
	if numID < 0 {
		return 0, fmt.Errorf("numbering style %q: negative numbering id %d", name, numID)
	}
	if numID == 0 {
		numID = d.nextNumID()
	} else if other, taken := d.byID[numID]; taken {
		return 0, fmt.Errorf("numbering style %q: numbering id %d already used by %q", name, numID, other.Name)
	}
	def := &NumberingDefinition{Name: name, NumID: numID, Style: style}
	d.numbering = append(d.numbering, def)
	d.byName[name] = def
	d.byID[numID] = def
	return numID, nil
}

// Numbering returns the registered numbering definitions in registration order.
func (d *Document) Numbering() []*NumberingDefinition {
	return d.numbering
}

// NumberingID resolves a numbering style name. An empty name resolves to the
// default bullet list, registering it on first use.
func (d *Document) NumberingID(name string) (int, error) {
	if name == "" {
		return d.AddNumberingStyle(defaultListStyleName, DefaultNumberingStyle())
	}
	def, ok := d.byName[name]
	if !ok {
		return 0, fmt.Errorf("unknown numbering style %q", name)
	}
	return def.NumID, nil
}

func (d *Document) nextNumID() int {
	id := 1
	for {
		if _, taken := d.byID[id]; !taken {
			return id
		}
		id++
	}
}

// Section is a top level block container with its own page setup.
type Section struct {
	blocks
	style *SectionStyle
}

// Style returns the section's page setup.
func (s *Section) Style() *SectionStyle {
	return s.style
}

// AddText appends a text paragraph.
func (s *Section) AddText(text string, font *FontStyle, para *ParagraphStyle) *Text {
	return s.addText(s, text, font, para)
}

// AddTextBreak appends count empty paragraphs, each one a separate element.
func (s *Section) AddTextBreak(count int, font *FontStyle, para *ParagraphStyle) {
	s.addTextBreak(s, count, font, para)
}

// AddPageBreak appends a page break.
func (s *Section) AddPageBreak() *PageBreak {
	return s.addPageBreak(s)
}

// AddTextRun appends a paragraph made of several inline runs.
func (s *Section) AddTextRun(para *ParagraphStyle) *TextRun {
	return s.addTextRun(s, para)
}

// AddListItem appends a single-text list item. numStyle names a registered
// numbering style; an empty name uses the default bullet list.
func (s *Section) AddListItem(text string, depth int, font *FontStyle, numStyle string, para *ParagraphStyle) (*ListItem, error) {
	return s.addListItem(s, text, depth, font, numStyle, para)
}

// AddListItemRun appends a list item whose body is built from several runs.
func (s *Section) AddListItemRun(depth int, numStyle string, para *ParagraphStyle) (*ListItemRun, error) {
	return s.addListItemRun(s, depth, numStyle, para)
}

// AddTable appends a table.
func (s *Section) AddTable(style *TableStyle) *Table {
	return s.addTable(s, style)
}
