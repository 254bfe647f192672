// Package model provides the in-memory document tree consumed by the docxwriter
// serializers.
//
// The tree is passive: writers read it but never change it. A Document holds
// ordered sections; sections and table cells are block containers; text runs and
// list item runs are inline containers. Every element knows the container it was
// appended to and its 1-based position within that container.
//
// # Structure Organization
//
//   - element.go: Element, Container and ListElement interfaces, positional bookkeeping
//   - document.go: Document, Section and numbering style registration
//   - blocks.go: block content (text, breaks, text runs, list items, tables)
//   - styles.go: paragraph, font, section, table, row and cell styles
//   - numbering.go: numbering (list) definitions
//   - load.go: YAML document loader
//   - html.go: inline HTML fragments converted into styled text elements
//
// # Usage
//
//	doc := model.NewDocument()
//	section := doc.AddSection(nil)
//	section.AddText("Before the list", nil, nil)
//	section.AddListItem("First", 0, nil, "", nil)
//	section.AddListItem("Second", 0, nil, "", nil)
package model
