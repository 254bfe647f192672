package docxwriter

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
)

func quietConfig() *Config {
	config := DefaultConfig()
	config.LogLevel = "off"
	return config
}

func TestDocumentXML(t *testing.T) {
	doc := model.NewDocument()
	section := doc.AddSection(nil)
	section.AddText("before", nil, nil)
	section.AddListItem("only", 0, nil, "", nil)

	out, err := NewWriter(doc, quietConfig()).DocumentXML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)

	expectedStart := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"><w:body>`
	if !strings.HasPrefix(got, expectedStart) {
		t.Errorf("expected document to start with %s, got %s", expectedStart, got)
	}
	if !strings.Contains(got, `<w:pPr>`+spacingBoth+numPr(0, 1)+`</w:pPr>`) {
		t.Errorf("expected list item properties in %s", got)
	}
	expectedEnd := `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>` +
		`</w:sectPr></w:body></w:document>`
	if !strings.HasSuffix(got, expectedEnd) {
		t.Errorf("expected document to end with %s, got %s", expectedEnd, got)
	}
}

func TestDocumentSectionsAreIndependent(t *testing.T) {
	doc := model.NewDocument()
	for i := 0; i < 2; i++ {
		section := doc.AddSection(nil)
		section.AddText("heading", nil, nil)
		section.AddListItem("item", 0, nil, "", nil)
	}
	doc.Sections()[1].Style().Orientation = model.OrientationLandscape

	out, err := NewWriter(doc, quietConfig()).DocumentXML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)

	if n := strings.Count(got, spacingBoth); n != 2 {
		t.Errorf("expected both single item lists to get full spacing, got %d in %s", n, got)
	}
	if n := strings.Count(got, "<w:sectPr>"); n != 2 {
		t.Errorf("expected 2 section properties, got %d", n)
	}
	if !strings.Contains(got, `<w:p><w:pPr><w:sectPr><w:pgSz w:w="11906" w:h="16838"/>`) {
		t.Errorf("expected the first section to end with a section break paragraph, got %s", got)
	}
	if !strings.Contains(got, `<w:pgSz w:w="16838" w:h="11906" w:orient="landscape"/>`) {
		t.Errorf("expected the last section to be landscape, got %s", got)
	}
}

func TestDocumentWithoutSections(t *testing.T) {
	out, err := NewWriter(model.NewDocument(), quietConfig()).DocumentXML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "<w:body><w:sectPr>") {
		t.Errorf("expected an empty body with default section properties, got %s", out)
	}
}

func readPackage(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open package: %v", err)
	}
	parts := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

func TestWriterPackageParts(t *testing.T) {
	doc := model.NewDocument()
	if _, err := doc.AddNumberingStyle("steps", &model.NumberingStyle{
		NumID: 5,
		Type:  model.NumberingMultilevel,
		Levels: []model.NumberingLevel{
			{Format: "decimal", Text: "%1.", Alignment: "left", Left: 360, Hanging: 360, TabPos: 360},
		},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	section := doc.AddSection(nil)
	section.AddListItem("one", 0, nil, "steps", nil)
	section.AddListItem("bullet", 0, nil, "", nil)

	var buf bytes.Buffer
	if err := NewWriter(doc, quietConfig()).Write(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parts := readPackage(t, buf.Bytes())

	for _, name := range []string{PartContentTypes, PartRootRels, PartDocument, PartDocumentRels, PartNumbering} {
		if _, ok := parts[name]; !ok {
			t.Errorf("expected part %s", name)
		}
	}

	numbering := parts[PartNumbering]
	for _, want := range []string{
		`<w:abstractNum w:abstractNumId="0"><w:multiLevelType w:val="multilevel"/>`,
		`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="decimal"/><w:lvlText w:val="%1."/><w:lvlJc w:val="left"/>` +
			`<w:pPr><w:tabs><w:tab w:val="num" w:pos="360"/></w:tabs><w:ind w:left="360" w:hanging="360"/></w:pPr></w:lvl>`,
		`<w:num w:numId="5"><w:abstractNumId w:val="0"/></w:num>`,
		`<w:num w:numId="1"><w:abstractNumId w:val="1"/></w:num>`,
	} {
		if !strings.Contains(numbering, want) {
			t.Errorf("expected numbering part to contain %s, got %s", want, numbering)
		}
	}
	if strings.Index(numbering, "<w:num ") < strings.LastIndex(numbering, "</w:abstractNum>") {
		t.Errorf("expected numbering instances after every abstract definition")
	}

	if !strings.Contains(parts[PartContentTypes], `PartName="/word/numbering.xml"`) {
		t.Errorf("expected numbering override in content types, got %s", parts[PartContentTypes])
	}
	if !strings.Contains(parts[PartDocumentRels], `Target="numbering.xml"`) {
		t.Errorf("expected numbering relationship, got %s", parts[PartDocumentRels])
	}
	if !strings.Contains(parts[PartRootRels], `Target="word/document.xml"`) {
		t.Errorf("expected office document relationship, got %s", parts[PartRootRels])
	}
}

func TestWriterWithoutNumbering(t *testing.T) {
	doc := model.NewDocument()
	doc.AddSection(nil).AddText("no lists", nil, nil)

	var buf bytes.Buffer
	if err := NewWriter(doc, quietConfig()).Write(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parts := readPackage(t, buf.Bytes())
	if _, ok := parts[PartNumbering]; ok {
		t.Errorf("expected no numbering part")
	}
	if strings.Contains(parts[PartContentTypes], "numbering") {
		t.Errorf("expected no numbering content type, got %s", parts[PartContentTypes])
	}
}

func TestWriterRejectsInvalidConfig(t *testing.T) {
	config := quietConfig()
	config.ListGrouping = "sometimes"

	var buf bytes.Buffer
	if err := NewWriter(model.NewDocument(), config).Write(&buf); err == nil {
		t.Error("expected an error for an invalid list grouping")
	}
}

func TestWriterFailsOnInvalidListItem(t *testing.T) {
	doc := model.NewDocument()
	doc.AddSection(nil).AddElement(model.NewListItem("bad", -2, 1, nil, nil))

	var buf bytes.Buffer
	err := NewWriter(doc, quietConfig()).Write(&buf)
	if !IsPackageError(err) || !IsValidationError(err) {
		t.Errorf("expected a package error wrapping a validation error, got %v", err)
	}
}

func TestSave(t *testing.T) {
	doc := model.NewDocument()
	doc.AddSection(nil).AddListItem("saved", 0, nil, "", nil)
	path := filepath.Join(t.TempDir(), "out.docx")

	if err := NewWriter(doc, quietConfig()).Save(context.Background(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if _, ok := readPackage(t, data)[PartDocument]; !ok {
		t.Errorf("expected the saved package to hold %s", PartDocument)
	}

	// The lock file stays in place and is released for the next writer
	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Errorf("expected the lock file to remain, got %v", err)
	}
	next := flock.New(path + ".lock")
	locked, err := next.TryLock()
	if err != nil || !locked {
		t.Fatalf("expected the lock to be free after saving, got locked=%v err=%v", locked, err)
	}
	next.Unlock()
}

func TestWriterUsesConfiguredLogLevel(t *testing.T) {
	previous := GetLogger()
	defer SetLogger(previous)

	var buf bytes.Buffer
	SetLogger(NewLogger(&buf, LogDebug))

	doc := model.NewDocument()
	doc.AddSection(nil).AddListItem("logged", 0, nil, "", nil)

	tests := []struct {
		level    string
		expected bool
	}{
		{"off", false},
		{"error", false},
		{"info", true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			config := DefaultConfig()
			config.LogLevel = tt.level
			if err := NewWriter(doc, config).Write(io.Discard); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := strings.Contains(buf.String(), "wrote package")
			if got != tt.expected {
				t.Errorf("expected logged=%v at level %s, got output %q", tt.expected, tt.level, buf.String())
			}
			if strings.Contains(buf.String(), "[DEBUG]") {
				t.Errorf("expected no debug lines at level %s, got %q", tt.level, buf.String())
			}
		})
	}
}

func TestSaveWaitsForLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busy.docx")
	held := flock.New(path + ".lock")
	locked, err := held.TryLock()
	if err != nil || !locked {
		t.Fatalf("failed to take the lock: %v", err)
	}
	defer held.Unlock()

	config := quietConfig()
	config.LockTimeout = 200 * time.Millisecond
	err = NewWriter(model.NewDocument(), config).Save(context.Background(), path)
	if !IsPackageError(err) {
		t.Fatalf("expected a package error while the lock is held, got %v", err)
	}
	if !strings.Contains(err.Error(), "lock") {
		t.Errorf("expected a lock error, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("expected no output file while the lock is held")
	}
}

func TestReportBoundaries(t *testing.T) {
	doc := model.NewDocument()
	section := doc.AddSection(nil)
	section.AddListItem("a", 0, nil, "", nil)
	section.AddListItem("b", 0, nil, "", nil)
	cell := section.AddTable(nil).AddRow(0, nil).AddCell(1000, nil)
	cell.AddListItem("c", 0, nil, "", nil)
	doc.AddSection(nil).AddText("no lists", nil, nil)

	reports := ReportBoundaries(doc, quietConfig())
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d: %+v", len(reports), reports)
	}
	if reports[0].Path != "sections[0]" || reports[0].Groups[0].Last != 1 {
		t.Errorf("unexpected section report: %+v", reports[0])
	}
	if reports[1].Path != "sections[0].table[3].rows[0].cells[0]" {
		t.Errorf("unexpected cell path: %s", reports[1].Path)
	}
}
