// Package render provides pure helpers that derive structural context for the
// docxwriter serializers.
//
// Nothing in this package keeps state between calls or writes markup. Helpers
// take model values and return derived data that the writers consult while
// emitting XML.
//
// # List Boundaries
//
// AnalyzeListBoundaries scans the children of one container and groups
// consecutive top level (depth 0) list items by numbering id. Each group records
// the zero-based positions of its first and last item, which the writers use to
// add vertical space before and after a list:
//
//	boundaries := render.AnalyzeListBoundaries(section.Elements(), render.MergeReopenedGroups)
//	if b, ok := boundaries.Lookup(item.NumID(), item.ElementIndex()-1); ok {
//	    first := item.ElementIndex()-1 == b.First
//	    last := item.ElementIndex()-1 == b.Last
//	    ...
//	}
//
// Nested items (depth > 0) neither open nor close a group. Any element that is
// not a list item closes the open group.
package render
