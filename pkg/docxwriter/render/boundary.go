package render

import (
	"fmt"
	"strconv"

	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
)

// GroupMode controls how a numbering id that reappears after an interruption
// is grouped.
type GroupMode int

const (
	// MergeReopenedGroups keys groups by numbering id only. A run that reuses a
	// numbering id after an interruption continues the earlier record: its
	// first position is kept and its last position is overwritten.
	MergeReopenedGroups GroupMode = iota
	// SplitDisjointGroups gives every contiguous run its own record.
	SplitDisjointGroups
)

// String returns the configuration name of the mode.
func (m GroupMode) String() string {
	switch m {
	case MergeReopenedGroups:
		return "merge"
	case SplitDisjointGroups:
		return "split"
	default:
		return "unknown"
	}
}

// ParseGroupMode parses "merge" or "split".
func ParseGroupMode(s string) (GroupMode, error) {
	switch s {
	case "merge", "":
		return MergeReopenedGroups, nil
	case "split":
		return SplitDisjointGroups, nil
	default:
		return MergeReopenedGroups, fmt.Errorf("invalid list grouping: %s", s)
	}
}

const listKeyPrefix = "list_"

// GroupKey returns the key of the group for a numbering id.
func GroupKey(numID int) string {
	return listKeyPrefix + strconv.Itoa(numID)
}

// Boundary holds zero-based positions of a group of list items.
type Boundary struct {
	First   int
	Current int
	// Last is -1 while the group is open.
	Last int
}

// Group is a keyed boundary record.
type Group struct {
	Key   string
	NumID int
	Boundary
}

// Boundaries is the result of analysing one container.
type Boundaries struct {
	mode   GroupMode
	groups map[string]*Group
	order  []string
	byNum  map[int][]*Group
}

// AnalyzeListBoundaries scans children in order and records the first and last
// position of each contiguous run of depth 0 list items sharing a numbering id.
func AnalyzeListBoundaries(children []model.Element, mode GroupMode) *Boundaries {
	b := &Boundaries{
		mode:   mode,
		groups: make(map[string]*Group),
		byNum:  make(map[int][]*Group),
	}

	var open *Group
	for pos, child := range children {
		item, ok := child.(model.ListElement)
		if !ok {
			// Non-list element breaks the sequence
			if open != nil {
				open.Last = open.Current
				open = nil
			}
			continue
		}
		if item.Depth() != 0 {
			continue
		}

		numID := item.NumID()
		if open == nil || open.NumID != numID {
			if open != nil {
				open.Last = open.Current
			}
			open = b.openGroup(numID, pos)
		}
		open.Current = pos
	}
	if open != nil {
		open.Last = open.Current
	}
	return b
}

func (b *Boundaries) openGroup(numID, pos int) *Group {
	key := GroupKey(numID)
	if b.mode == SplitDisjointGroups {
		key = fmt.Sprintf("%s#%d", key, len(b.byNum[numID])+1)
	}
	if g, ok := b.groups[key]; ok {
		return g
	}
	g := &Group{
		Key:      key,
		NumID:    numID,
		Boundary: Boundary{First: pos, Current: pos, Last: -1},
	}
	b.groups[key] = g
	b.order = append(b.order, key)
	b.byNum[numID] = append(b.byNum[numID], g)
	return g
}

// Lookup returns the boundary that applies to a depth 0 list item with the
// given numbering id at the zero-based position pos.
func (b *Boundaries) Lookup(numID, pos int) (Boundary, bool) {
	if b == nil {
		return Boundary{}, false
	}
	if b.mode != SplitDisjointGroups {
		g, ok := b.groups[GroupKey(numID)]
		if !ok {
			return Boundary{}, false
		}
		return g.Boundary, true
	}
	for _, g := range b.byNum[numID] {
		if pos >= g.First && pos <= g.Last {
			return g.Boundary, true
		}
	}
	return Boundary{}, false
}

// Groups returns a copy of the records in the order they were opened.
func (b *Boundaries) Groups() []Group {
	if b == nil {
		return nil
	}
	groups := make([]Group, 0, len(b.order))
	for _, key := range b.order {
		groups = append(groups, *b.groups[key])
	}
	return groups
}

// Len returns the number of records.
func (b *Boundaries) Len() int {
	if b == nil {
		return 0
	}
	return len(b.order)
}

// Mode returns the grouping mode used for the analysis.
func (b *Boundaries) Mode() GroupMode {
	return b.mode
}
