package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// documentEntry mirrors the YAML layout of a document.
type documentEntry struct {
	Numbering []numberingEntry `yaml:"numbering"`
	Sections  []sectionEntry   `yaml:"sections"`
}

type numberingEntry struct {
	Name           string `yaml:"name"`
	NumberingStyle `yaml:",inline"`
}

type sectionEntry struct {
	Style    *SectionStyle  `yaml:"style"`
	Elements []elementEntry `yaml:"elements"`
}

// elementEntry holds exactly one element kind.
type elementEntry struct {
	Text      *textEntry    `yaml:"text"`
	Break     *int          `yaml:"break"`
	PageBreak bool          `yaml:"pageBreak"`
	TextRun   *textRunEntry `yaml:"textRun"`
	List      *listEntry    `yaml:"list"`
	ListRun   *listRunEntry `yaml:"listRun"`
	Table     *tableEntry   `yaml:"table"`
}

// textEntry accepts either a bare string or a mapping with styles.
type textEntry struct {
	Value     string          `yaml:"value"`
	Font      *FontStyle      `yaml:"font"`
	Paragraph *ParagraphStyle `yaml:"paragraph"`
}

func (t *textEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		t.Value = node.Value
		return nil
	}
	type plain textEntry
	return node.Decode((*plain)(t))
}

type runEntry struct {
	Text  string     `yaml:"text"`
	Font  *FontStyle `yaml:"font"`
	Break bool       `yaml:"break"`
}

type textRunEntry struct {
	Paragraph *ParagraphStyle `yaml:"paragraph"`
	Runs      []runEntry      `yaml:"runs"`
	HTML      string          `yaml:"html"`
}

type listEntry struct {
	Text      string          `yaml:"text"`
	Depth     int             `yaml:"depth"`
	Style     string          `yaml:"style"`
	Font      *FontStyle      `yaml:"font"`
	Paragraph *ParagraphStyle `yaml:"paragraph"`
}

type listRunEntry struct {
	Depth     int             `yaml:"depth"`
	Style     string          `yaml:"style"`
	Paragraph *ParagraphStyle `yaml:"paragraph"`
	Runs      []runEntry      `yaml:"runs"`
	HTML      string          `yaml:"html"`
}

type tableEntry struct {
	Style *TableStyle `yaml:"style"`
	Rows  []rowEntry  `yaml:"rows"`
}

type rowEntry struct {
	Height int         `yaml:"height"`
	Header bool        `yaml:"header"`
	Style  *RowStyle   `yaml:"style"`
	Cells  []cellEntry `yaml:"cells"`
}

type cellEntry struct {
	Width    int            `yaml:"width"`
	Style    *CellStyle     `yaml:"style"`
	Elements []elementEntry `yaml:"elements"`
}

// blockContainer is satisfied by *Section and *Cell.
type blockContainer interface {
	AddText(text string, font *FontStyle, para *ParagraphStyle) *Text
	AddTextBreak(count int, font *FontStyle, para *ParagraphStyle)
	AddTextRun(para *ParagraphStyle) *TextRun
	AddListItem(text string, depth int, font *FontStyle, numStyle string, para *ParagraphStyle) (*ListItem, error)
	AddListItemRun(depth int, numStyle string, para *ParagraphStyle) (*ListItemRun, error)
	AddTable(style *TableStyle) *Table
}

// inlineContainer is satisfied by *TextRun and *ListItemRun.
type inlineContainer interface {
	AddText(text string, font *FontStyle) *Text
	AddTextBreak() *TextBreak
	AddHTML(fragment string) error
}

// LoadFile reads a YAML document description from path.
func LoadFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model: %w", err)
	}
	return Load(bytes.NewReader(content))
}

// Load decodes a YAML document description.
func Load(r io.Reader) (*Document, error) {
	var entry documentEntry
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&entry); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse model: %w", err)
	}

	doc := NewDocument()
	for i, ns := range entry.Numbering {
		if ns.Name == "" {
			return nil, fmt.Errorf("numbering[%d]: missing name", i)
		}
		style := ns.NumberingStyle
		if _, err := doc.AddNumberingStyle(ns.Name, &style); err != nil {
			return nil, fmt.Errorf("numbering[%d]: %w", i, err)
		}
	}

	for i, ss := range entry.Sections {
		section := doc.AddSection(ss.Style)
		if err := loadBlocks(section, ss.Elements, fmt.Sprintf("sections[%d]", i)); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func loadBlocks(c blockContainer, entries []elementEntry, path string) error {
	for i, es := range entries {
		at := fmt.Sprintf("%s.elements[%d]", path, i)
		if n := es.kinds(); n != 1 {
			return fmt.Errorf("%s: expected exactly one element kind, got %d", at, n)
		}
		switch {
		case es.Text != nil:
			c.AddText(es.Text.Value, es.Text.Font, es.Text.Paragraph)
		case es.Break != nil:
			c.AddTextBreak(*es.Break, nil, nil)
		case es.PageBreak:
			section, ok := c.(*Section)
			if !ok {
				return fmt.Errorf("%s: page breaks are only allowed in sections", at)
			}
			section.AddPageBreak()
		case es.TextRun != nil:
			tr := c.AddTextRun(es.TextRun.Paragraph)
			if err := loadInlines(tr, es.TextRun.Runs, es.TextRun.HTML); err != nil {
				return fmt.Errorf("%s: %w", at, err)
			}
		case es.List != nil:
			l := es.List
			if _, err := c.AddListItem(l.Text, l.Depth, l.Font, l.Style, l.Paragraph); err != nil {
				return fmt.Errorf("%s: %w", at, err)
			}
		case es.ListRun != nil:
			l := es.ListRun
			lr, err := c.AddListItemRun(l.Depth, l.Style, l.Paragraph)
			if err != nil {
				return fmt.Errorf("%s: %w", at, err)
			}
			if err := loadInlines(lr, l.Runs, l.HTML); err != nil {
				return fmt.Errorf("%s: %w", at, err)
			}
		case es.Table != nil:
			if err := loadTable(c.AddTable(es.Table.Style), es.Table, at); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadInlines(c inlineContainer, runs []runEntry, fragment string) error {
	for _, r := range runs {
		if r.Break {
			c.AddTextBreak()
			continue
		}
		c.AddText(r.Text, r.Font)
	}
	if fragment != "" {
		return c.AddHTML(fragment)
	}
	return nil
}

func loadTable(t *Table, entry *tableEntry, path string) error {
	for i, rs := range entry.Rows {
		style := rs.Style
		if rs.Header {
			if style == nil {
				style = &RowStyle{}
			}
			style.TblHeader = true
		}
		row := t.AddRow(rs.Height, style)
		for j, cs := range rs.Cells {
			cell := row.AddCell(cs.Width, cs.Style)
			if err := loadBlocks(cell, cs.Elements, fmt.Sprintf("%s.rows[%d].cells[%d]", path, i, j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (es elementEntry) kinds() int {
	n := 0
	if es.Text != nil {
		n++
	}
	if es.Break != nil {
		n++
	}
	if es.PageBreak {
		n++
	}
	if es.TextRun != nil {
		n++
	}
	if es.List != nil {
		n++
	}
	if es.ListRun != nil {
		n++
	}
	if es.Table != nil {
		n++
	}
	return n
}
