package model

import "errors"

var errDetachedContainer = errors.New("container is not attached to a document")

// Element is any node that can be appended to a Container.
type Element interface {
	// Parent returns the container the element was appended to, or nil for a
	// detached element.
	Parent() Container
	// ElementIndex returns the 1-based position of the element within its parent.
	ElementIndex() int

	attach(parent Container, index int)
}

// Container is an ordered holder of child elements.
type Container interface {
	// Elements returns the children in document order. Callers must not modify
	// the returned slice.
	Elements() []Element
}

// ListElement is implemented by the two list content variants, ListItem and
// ListItemRun.
type ListElement interface {
	Element
	// NumID identifies the numbering definition the item belongs to.
	NumID() int
	// Depth is the nesting level, 0 being the top level.
	Depth() int
	// ParagraphStyle returns the paragraph formatting applied to the item.
	ParagraphStyle() *ParagraphStyle
}

// position tracks where an element lives in the tree.
type position struct {
	parent Container
	index  int
}

func (p *position) Parent() Container { return p.parent }

func (p *position) ElementIndex() int { return p.index }

func (p *position) attach(parent Container, index int) {
	p.parent = parent
	p.index = index
}

// container implements the shared child bookkeeping of every container type.
type container struct {
	doc      *Document
	elements []Element
}

// Elements returns the children in document order.
func (c *container) Elements() []Element {
	return c.elements
}

// add appends el and records its owner and 1-based position. owner is the
// outer container value so the identity seen by writers is the public type.
func (c *container) add(owner Container, el Element) {
	c.elements = append(c.elements, el)
	el.attach(owner, len(c.elements))
}
