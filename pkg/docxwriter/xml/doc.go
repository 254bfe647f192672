// Package xml provides the streaming XML emitter used to serialize DOCX parts.
//
// WordprocessingML is order sensitive and relies heavily on self-closing
// property elements (<w:ilvl w:val="0"/>). The Writer emits markup directly as
// calls arrive: a start tag stays open until the next content call so that
// attributes can still be added, and an element closed before any content is
// written collapses into a self-closing tag.
//
// # Structure Organization
//
//   - writer.go: Writer, Attr and the error values returned on misuse
//   - namespaces.go: namespace URIs and the conventional prefixes used in parts
//
// # Usage
//
//	var buf bytes.Buffer
//	w := xml.NewWriter(&buf)
//	w.StartElement("w:numPr")
//	w.WriteElementBlock("w:ilvl", xml.Attr{Name: "w:val", Value: "0"})
//	w.WriteElementBlock("w:numId", xml.Attr{Name: "w:val", Value: "5"})
//	w.EndElement()
//	if err := w.Flush(); err != nil {
//	    return err
//	}
//	// <w:numPr><w:ilvl w:val="0"/><w:numId w:val="5"/></w:numPr>
package xml
