package model

// Numbering style types.
const (
	NumberingSingleLevel       = "singleLevel"
	NumberingMultilevel        = "multilevel"
	NumberingHybridMultilevel  = "hybridMultilevel"
	defaultListStyleName       = "defaultList"
	maxNumberingLevels         = 9
	defaultNumberingLevelStep  = 360
	defaultNumberingFirstLevel = 720
)

// NumberingStyle describes a list definition. Each registered style receives a
// numbering id that list items reference.
type NumberingStyle struct {
	// NumID pins the numbering id. Zero lets the document allocate one.
	NumID  int              `yaml:"numId"`
	Type   string           `yaml:"type"`
	Levels []NumberingLevel `yaml:"levels"`
}

// NumberingLevel describes one level of a list definition.
type NumberingLevel struct {
	Format    string `yaml:"format"` // decimal, bullet, lowerLetter, ...
	Text      string `yaml:"text"`   // level text, e.g. "%1." or a bullet glyph
	Start     int    `yaml:"start"`
	Alignment string `yaml:"alignment"`
	Left      int    `yaml:"left"`
	Hanging   int    `yaml:"hanging"`
	TabPos    int    `yaml:"tabPos"`
	Font      string `yaml:"font"`
}

// DefaultNumberingStyle returns the bullet list used when a list item names no
// numbering style.
func DefaultNumberingStyle() *NumberingStyle {
	ns := &NumberingStyle{Type: NumberingHybridMultilevel}
	for i := 0; i < maxNumberingLevels; i++ {
		left := defaultNumberingFirstLevel + i*defaultNumberingLevelStep
		glyph, font := "•", "Symbol"
		if i%3 == 1 {
			glyph, font = "o", "Courier New"
		}
		ns.Levels = append(ns.Levels, NumberingLevel{
			Format:    "bullet",
			Text:      glyph,
			Start:     1,
			Alignment: "left",
			Left:      left,
			Hanging:   defaultNumberingLevelStep,
			TabPos:    left,
			Font:      font,
		})
	}
	return ns
}

// NumberingDefinition pairs a registered style with its name and id.
type NumberingDefinition struct {
	Name  string
	NumID int
	Style *NumberingStyle
}
