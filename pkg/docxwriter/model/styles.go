package model

// Measurements are in twentieths of a point (twips) unless noted otherwise.

// ParagraphStyle holds paragraph formatting.
type ParagraphStyle struct {
	// StyleName references a named paragraph style (w:pStyle).
	StyleName       string       `yaml:"styleName"`
	Alignment       string       `yaml:"alignment"`
	Indentation     *Indentation `yaml:"indentation"`
	Spacing         *Spacing     `yaml:"spacing"`
	KeepNext        bool         `yaml:"keepNext"`
	KeepLines       bool         `yaml:"keepLines"`
	PageBreakBefore bool         `yaml:"pageBreakBefore"`
}

// Indentation represents paragraph indentation.
type Indentation struct {
	Left      int `yaml:"left"`
	Right     int `yaml:"right"`
	Hanging   int `yaml:"hanging"`
	FirstLine int `yaml:"firstLine"`
}

// Spacing represents paragraph spacing. Zero values are not written.
type Spacing struct {
	Before   int    `yaml:"before"`
	After    int    `yaml:"after"`
	Line     int    `yaml:"line"`
	LineRule string `yaml:"lineRule"`
}

// IsZero reports whether no spacing value is set.
func (s *Spacing) IsZero() bool {
	return s == nil || (s.Before == 0 && s.After == 0 && s.Line == 0 && s.LineRule == "")
}

// FontStyle holds character formatting.
type FontStyle struct {
	// StyleName references a named character style (w:rStyle).
	StyleName   string  `yaml:"styleName"`
	Name        string  `yaml:"name"`
	Size        float64 `yaml:"size"` // points
	Bold        bool    `yaml:"bold"`
	Italic      bool    `yaml:"italic"`
	Underline   string  `yaml:"underline"`
	Strike      bool    `yaml:"strike"`
	Color       string  `yaml:"color"`
	Superscript bool    `yaml:"superscript"`
	Subscript   bool    `yaml:"subscript"`
}

// Orientation values for SectionStyle.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// SectionStyle holds page setup for a section.
type SectionStyle struct {
	Orientation  string `yaml:"orientation"`
	PageWidth    int    `yaml:"pageWidth"`
	PageHeight   int    `yaml:"pageHeight"`
	MarginTop    int    `yaml:"marginTop"`
	MarginRight  int    `yaml:"marginRight"`
	MarginBottom int    `yaml:"marginBottom"`
	MarginLeft   int    `yaml:"marginLeft"`
}

// DefaultSectionStyle returns an A4 portrait page with one inch margins.
func DefaultSectionStyle() *SectionStyle {
	return &SectionStyle{
		Orientation:  OrientationPortrait,
		PageWidth:    11906,
		PageHeight:   16838,
		MarginTop:    1440,
		MarginRight:  1440,
		MarginBottom: 1440,
		MarginLeft:   1440,
	}
}

// TableStyle holds table level formatting.
type TableStyle struct {
	BorderSize  int    `yaml:"borderSize"` // eighths of a point
	BorderColor string `yaml:"borderColor"`
	CellMargin  int    `yaml:"cellMargin"`
	Alignment   string `yaml:"alignment"`
}

// RowStyle holds row level formatting.
type RowStyle struct {
	// TblHeader repeats the row at the top of each page and marks it as a header.
	TblHeader bool `yaml:"tblHeader"`
	CantSplit bool `yaml:"cantSplit"`
}

// Vertical alignment values for CellStyle.
const (
	VAlignTop    = "top"
	VAlignCenter = "center"
	VAlignBottom = "bottom"
)

// CellStyle holds cell level formatting.
type CellStyle struct {
	VAlign   string `yaml:"valign"`
	GridSpan int    `yaml:"gridSpan"`
}
