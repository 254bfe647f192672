package docxwriter

import (
	"fmt"

	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/render"
)

// ContainerReport lists the list groups found in one container.
type ContainerReport struct {
	// Path locates the container, e.g. "sections[0].table[3].rows[0].cells[1]".
	// Table positions are the 1-based element index inside the parent.
	Path   string
	Groups []render.Group
}

// ReportBoundaries analyses every block container of doc and returns the
// containers holding at least one list group, in document order.
func ReportBoundaries(doc *model.Document, config *Config) []ContainerReport {
	ctx := NewContext(config)
	var reports []ContainerReport
	for i, section := range doc.Sections() {
		reports = ctx.report(reports, fmt.Sprintf("sections[%d]", i), section)
	}
	return reports
}

func (c *Context) report(reports []ContainerReport, path string, container model.Container) []ContainerReport {
	if b := c.Boundaries(container); b.Len() > 0 {
		reports = append(reports, ContainerReport{Path: path, Groups: b.Groups()})
	}
	for _, el := range container.Elements() {
		table, ok := el.(*model.Table)
		if !ok {
			continue
		}
		for r, row := range table.Rows() {
			for k, cell := range row.Cells() {
				cellPath := fmt.Sprintf("%s.table[%d].rows[%d].cells[%d]", path, table.ElementIndex(), r, k)
				reports = c.report(reports, cellPath, cell)
			}
		}
	}
	return reports
}
