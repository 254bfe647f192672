package xml

// Namespace URIs used by the generated parts.
const (
	NamespaceW            = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NamespaceR            = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NamespacePackageRels  = "http://schemas.openxmlformats.org/package/2006/relationships"
	NamespaceContentTypes = "http://schemas.openxmlformats.org/package/2006/content-types"
	RelTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
)

// namespacePrefixes maps namespace URIs to the prefixes Word expects.
var namespacePrefixes = map[string]string{
	NamespaceW: "w",
	NamespaceR: "r",
}

// NamespaceAttrs returns xmlns declarations for the given URIs, in order.
// Unknown URIs are skipped.
func NamespaceAttrs(uris ...string) []Attr {
	attrs := make([]Attr, 0, len(uris))
	for _, uri := range uris {
		prefix, ok := namespacePrefixes[uri]
		if !ok {
			continue
		}
		attrs = append(attrs, Attr{Name: "xmlns:" + prefix, Value: uri})
	}
	return attrs
}
