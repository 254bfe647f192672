package docxwriter

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/xml"
)

// Part names inside the package.
const (
	PartContentTypes  = "[Content_Types].xml"
	PartRootRels      = "_rels/.rels"
	PartDocument      = "word/document.xml"
	PartDocumentRels  = "word/_rels/document.xml.rels"
	PartNumbering     = "word/numbering.xml"
	contentTypeRels   = "application/vnd.openxmlformats-package.relationships+xml"
	contentTypeXML    = "application/xml"
	contentTypeMain   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	contentTypeNumber = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
)

const lockRetryDelay = 100 * time.Millisecond

// Writer produces a .docx package from a document.
type Writer struct {
	doc    *model.Document
	config *Config
}

// NewWriter creates a package writer. A nil config uses the global
// configuration.
func NewWriter(doc *model.Document, config *Config) *Writer {
	if config == nil {
		config = GetGlobalConfig()
	}
	return &Writer{doc: doc, config: config}
}

// part is one generated package part.
type part struct {
	name  string
	write func(w *xml.Writer) error
}

// Write writes the complete package to out. Every call uses a fresh Context.
func (pw *Writer) Write(out io.Writer) error {
	if err := pw.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := configLogger(pw.config).WithField("render", uuid.NewString())
	ctx := NewContext(pw.config).WithLogger(logger)
	numbering := pw.doc.Numbering()

	parts := []part{
		{PartContentTypes, func(w *xml.Writer) error { return writeContentTypes(w, len(numbering) > 0) }},
		{PartRootRels, writeRootRels},
		{PartDocument, func(w *xml.Writer) error { return ctx.writeDocumentPart(w, pw.doc) }},
		{PartDocumentRels, func(w *xml.Writer) error { return writeDocumentRels(w, len(numbering) > 0) }},
	}
	if len(numbering) > 0 {
		parts = append(parts, part{PartNumbering, func(w *xml.Writer) error { return writeNumberingPart(w, numbering) }})
	}

	zw := zip.NewWriter(out)
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return &PackageError{Operation: "create", Part: p.name, Cause: err}
		}
		w := xml.NewWriter(fw)
		if err := p.write(w); err != nil {
			return &PackageError{Operation: "write", Part: p.name, Cause: err}
		}
		if err := w.Flush(); err != nil {
			return &PackageError{Operation: "write", Part: p.name, Cause: err}
		}
	}
	if err := zw.Close(); err != nil {
		return &PackageError{Operation: "close", Cause: err}
	}

	logger.Info("wrote package with %d part(s) and %d section(s)", len(parts), len(pw.doc.Sections()))
	return nil
}

// DocumentXML returns word/document.xml alone.
func (pw *Writer) DocumentXML() ([]byte, error) {
	var buf bytes.Buffer
	w := xml.NewWriter(&buf)
	if err := NewContext(pw.config).writeDocumentPart(w, pw.doc); err != nil {
		return nil, &PackageError{Operation: "write", Part: PartDocument, Cause: err}
	}
	if err := w.Flush(); err != nil {
		return nil, &PackageError{Operation: "write", Part: PartDocument, Cause: err}
	}
	return buf.Bytes(), nil
}

// Save writes the package to path while holding an advisory lock on
// path+".lock". It waits for the lock until ctx is done or the configured
// lock timeout expires.
func (pw *Writer) Save(ctx context.Context, path string) error {
	var buf bytes.Buffer
	if err := pw.Write(&buf); err != nil {
		return err
	}

	if pw.config.LockTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pw.config.LockTimeout)
		defer cancel()
	}

	fileLock := flock.New(path + ".lock")
	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return &PackageError{Operation: "lock", Path: path, Cause: err}
	}
	if !locked {
		return &PackageError{Operation: "lock", Path: path, Cause: fmt.Errorf("could not acquire file lock")}
	}
	defer fileLock.Unlock()

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &PackageError{Operation: "save", Path: path, Cause: err}
	}
	return nil
}

func writeContentTypes(w *xml.Writer, numbering bool) error {
	w.WriteRaw(xml.Header)
	w.StartElement("Types")
	w.WriteAttribute("xmlns", xml.NamespaceContentTypes)
	w.WriteElementBlock("Default", xml.Attr{Name: "Extension", Value: "rels"}, xml.Attr{Name: "ContentType", Value: contentTypeRels})
	w.WriteElementBlock("Default", xml.Attr{Name: "Extension", Value: "xml"}, xml.Attr{Name: "ContentType", Value: contentTypeXML})
	w.WriteElementBlock("Override", xml.Attr{Name: "PartName", Value: "/" + PartDocument}, xml.Attr{Name: "ContentType", Value: contentTypeMain})
	if numbering {
		w.WriteElementBlock("Override", xml.Attr{Name: "PartName", Value: "/" + PartNumbering}, xml.Attr{Name: "ContentType", Value: contentTypeNumber})
	}
	return w.EndElement()
}

func writeRootRels(w *xml.Writer) error {
	w.WriteRaw(xml.Header)
	w.StartElement("Relationships")
	w.WriteAttribute("xmlns", xml.NamespacePackageRels)
	writeRelationship(w, "rId1", xml.RelTypeOfficeDocument, PartDocument)
	return w.EndElement()
}

func writeDocumentRels(w *xml.Writer, numbering bool) error {
	w.WriteRaw(xml.Header)
	w.StartElement("Relationships")
	w.WriteAttribute("xmlns", xml.NamespacePackageRels)
	if numbering {
		writeRelationship(w, "rId1", xml.RelTypeNumbering, "numbering.xml")
	}
	return w.EndElement()
}

func writeRelationship(w *xml.Writer, id, relType, target string) {
	w.WriteElementBlock("Relationship",
		xml.Attr{Name: "Id", Value: id},
		xml.Attr{Name: "Type", Value: relType},
		xml.Attr{Name: "Target", Value: target},
	)
}
