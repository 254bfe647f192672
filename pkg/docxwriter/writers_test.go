package docxwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

func writeContainer(t *testing.T, cw *ContainerWriter, c model.Container) string {
	t.Helper()
	var buf bytes.Buffer
	w := xml.NewWriter(&buf)
	if err := cw.Write(w, c); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("unexpected flush error: %v", err)
	}
	return buf.String()
}

func TestBlockWriters(t *testing.T) {
	tests := []struct {
		name     string
		build    func(s *model.Section)
		expected string
	}{
		{
			name:     "plain text",
			build:    func(s *model.Section) { s.AddText("hello", nil, nil) },
			expected: `<w:p><w:r><w:t xml:space="preserve">hello</w:t></w:r></w:p>`,
		},
		{
			name: "text with named paragraph style and font",
			build: func(s *model.Section) {
				s.AddText("title", &model.FontStyle{Size: 14}, &model.ParagraphStyle{StyleName: "Heading1"})
			},
			expected: `<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr>` +
				`<w:r><w:rPr><w:sz w:val="28"/><w:szCs w:val="28"/></w:rPr><w:t xml:space="preserve">title</w:t></w:r></w:p>`,
		},
		{
			name:     "text is escaped and normalized",
			build:    func(s *model.Section) { s.AddText("a < b & cafe\u0301", nil, nil) },
			expected: `<w:p><w:r><w:t xml:space="preserve">a &lt; b &amp; caf` + "\u00e9" + `</w:t></w:r></w:p>`,
		},
		{
			name:     "text breaks are separate paragraphs",
			build:    func(s *model.Section) { s.AddTextBreak(2, nil, nil) },
			expected: `<w:p/><w:p/>`,
		},
		{
			name:     "styled text break",
			build:    func(s *model.Section) { s.AddTextBreak(1, nil, &model.ParagraphStyle{Alignment: "center"}) },
			expected: `<w:p><w:pPr><w:jc w:val="center"/></w:pPr></w:p>`,
		},
		{
			name:     "page break",
			build:    func(s *model.Section) { s.AddPageBreak() },
			expected: `<w:p><w:r><w:br w:type="page"/></w:r></w:p>`,
		},
		{
			name: "text run",
			build: func(s *model.Section) {
				tr := s.AddTextRun(&model.ParagraphStyle{Alignment: "right"})
				tr.AddText("a", nil)
				tr.AddTextBreak()
				tr.AddText("b", &model.FontStyle{Italic: true})
			},
			expected: `<w:p><w:pPr><w:jc w:val="right"/></w:pPr>` +
				`<w:r><w:t xml:space="preserve">a</w:t></w:r>` +
				`<w:r><w:br/></w:r>` +
				`<w:r><w:rPr><w:i/></w:rPr><w:t xml:space="preserve">b</w:t></w:r></w:p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := model.NewDocument().AddSection(nil)
			tt.build(section)
			got := writeContainer(t, NewBlockWriter(testContext(nil)), section)
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestListItemRunFromHTML(t *testing.T) {
	section := model.NewDocument().AddSection(nil)
	section.AddText("before", nil, nil)
	lr, err := section.AddListItemRun(0, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := lr.AddHTML("one <b>two</b><br>three"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := mustWrite(t, NewListItemRunWriter(testContext(nil)), lr)
	expected := `<w:r><w:t xml:space="preserve">one </w:t></w:r>` +
		`<w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">two</w:t></w:r>` +
		`<w:r><w:br/></w:r>` +
		`<w:r><w:t xml:space="preserve">three</w:t></w:r></w:p>`
	if !strings.HasSuffix(out, expected) {
		t.Errorf("expected body %s, got %s", expected, out)
	}
}

func TestTableWriter(t *testing.T) {
	doc := model.NewDocument()
	section := doc.AddSection(nil)
	table := section.AddTable(&model.TableStyle{BorderSize: 6})

	header := table.AddRow(0, &model.RowStyle{TblHeader: true})
	header.AddCell(2000, nil).AddText("Name", nil, nil)
	header.AddCell(3000, &model.CellStyle{VAlign: model.VAlignBottom}).AddText("Items", nil, nil)

	body := table.AddRow(400, nil)
	body.AddCell(2000, nil)
	cell := body.AddCell(3000, nil)
	cell.AddListItem("first", 0, nil, "", nil)
	cell.AddListItem("second", 0, nil, "", nil)

	out := mustWrite(t, NewTableWriter(testContext(nil)), table)

	for _, want := range []string{
		`<w:tblGrid><w:gridCol w:w="2000"/><w:gridCol w:w="3000"/></w:tblGrid>`,
		`<w:trPr><w:tblHeader/></w:trPr>`,
		`<w:tcPr><w:tcW w:w="2000" w:type="dxa"/><w:vAlign w:val="center"/></w:tcPr>`,
		`<w:tcPr><w:tcW w:w="3000" w:type="dxa"/><w:vAlign w:val="bottom"/></w:tcPr>`,
		`<w:trPr><w:trHeight w:val="400"/></w:trPr>`,
		`<w:tcPr><w:tcW w:w="2000" w:type="dxa"/></w:tcPr><w:p/></w:tc>`,
		`<w:pPr>` + spacingBefore + numPr(0, 1) + `</w:pPr>`,
		`<w:pPr>` + spacingAfter + numPr(0, 1) + `</w:pPr>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %s, got %s", want, out)
		}
	}
	if !strings.HasPrefix(out, "<w:tbl><w:tblPr>") || !strings.HasSuffix(out, "</w:tbl>") {
		t.Errorf("unexpected table framing: %s", out)
	}
}

func TestTableWithoutRows(t *testing.T) {
	table := model.NewDocument().AddSection(nil).AddTable(nil)
	if out := mustWrite(t, NewTableWriter(testContext(nil)), table); out != "" {
		t.Errorf("expected no output, got %s", out)
	}
}

func TestContextPrepare(t *testing.T) {
	doc := model.NewDocument()
	section := doc.AddSection(nil)
	section.AddListItem("a", 0, nil, "", nil)
	table := section.AddTable(nil)
	row := table.AddRow(0, nil)
	left := row.AddCell(1000, nil)
	left.AddListItem("b", 0, nil, "", nil)
	nested := left.AddTable(nil).AddRow(0, nil).AddCell(500, nil)
	row.AddCell(1000, nil)

	ctx := testContext(nil)
	ctx.Prepare(section)
	if got := ctx.Prepared(); got != 4 {
		t.Errorf("expected 4 prepared containers, got %d", got)
	}
	if ctx.Boundaries(left).Len() != 1 {
		t.Errorf("expected one group in the cell")
	}
	if ctx.Boundaries(nested).Len() != 0 {
		t.Errorf("expected no group in the nested cell")
	}
	if ctx.Boundaries(nil) != nil {
		t.Errorf("expected nil boundaries for a nil container")
	}

	ctx.Reset()
	if got := ctx.Prepared(); got != 0 {
		t.Errorf("expected no containers after reset, got %d", got)
	}

	// Unprepared containers are analysed on demand and remembered
	b := ctx.Boundaries(section)
	if b.Len() != 1 || ctx.Boundaries(section) != b {
		t.Errorf("expected lazily analysed boundaries to be reused")
	}
}

func TestContextsDoNotShareBoundaries(t *testing.T) {
	first, elementsA := newListDocument(t, "1:0", "1:0", "1:0")
	_, elementsB := newListDocument(t, "p", "1:0")

	ctx := testContext(nil)
	ctx.Prepare(first)

	got := paragraphProperties(t, mustWrite(t, NewListItemWriter(ctx), elementsB[1]))
	if got != spacingBoth+numPr(0, 1) {
		t.Errorf("expected the second container to be analysed on its own, got %s", got)
	}
	got = paragraphProperties(t, mustWrite(t, NewListItemWriter(ctx), elementsA[1]))
	if got != numPr(0, 1) {
		t.Errorf("expected the middle item of the first container to have no spacing, got %s", got)
	}
}

func TestInlineWriterRejectsBlockContent(t *testing.T) {
	section := model.NewDocument().AddSection(nil)
	section.AddPageBreak()

	strict := DefaultConfig()
	strict.StrictMode = true

	var buf bytes.Buffer
	err := NewInlineWriter(testContext(strict)).Write(xml.NewWriter(&buf), section)
	if !IsElementError(err) {
		t.Errorf("expected an element error, got %v", err)
	}
	if got := writeContainer(t, NewInlineWriter(testContext(nil)), section); got != "" {
		t.Errorf("expected no output without strict mode, got %s", got)
	}
}
