// Package docxwriter writes WordprocessingML (.docx) packages from a
// model.Document.
//
// The interesting part is list content. A list item does not know whether it
// opens or closes its list, so before writing a container the writer groups
// consecutive top level items sharing a numbering id and gives the first item
// of each group 15pt of space before it and the last item 15pt after it.
// Every list paragraph carries a numbering reference (w:numPr) with its depth
// and numbering id.
//
// # Structure Organization
//
//   - context.go: per-write Context holding boundary data per container
//   - list_properties.go: paragraph properties of list items (style, spacing, numbering)
//   - list_item.go, list_item_run.go: the two list element writers
//   - text.go: text, break, page break and text run writers
//   - container.go: block and inline child dispatch
//   - table.go: tables, rows and cells
//   - document.go, numbering.go, package.go: package parts and the Writer
//   - config.go, logger.go, errors.go: configuration, logging and error types
//
// # Usage
//
//	doc := model.NewDocument()
//	section := doc.AddSection(nil)
//	section.AddText("Before the list", nil, nil)
//	section.AddListItem("First", 0, nil, "", nil)
//	section.AddListItem("Second", 0, nil, "", nil)
//	section.AddText("After the list", nil, nil)
//
//	w := docxwriter.NewWriter(doc, nil)
//	if err := w.Save(context.Background(), "lists.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// Options come from DOCXWRITER_LOG_LEVEL, DOCXWRITER_STRICT_MODE,
// DOCXWRITER_LIST_GROUPING and DOCXWRITER_LOCK_TIMEOUT, or from a Config passed
// to NewWriter. ListGrouping "merge" (the default) treats a numbering id that
// reappears after an interruption as the same list; "split" starts a new one.
package docxwriter
