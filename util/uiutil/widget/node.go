package widget

import (
	"container/list"
	"fmt"
	"image"

	"github.com/jmigpin/roundcorner/util/imageutil"
)

type Node interface {
	fullNode() // ensure that EmbNode can't be directly assigned to a Node

	Embed() *EmbedNode

	InsertBefore(n Node, mark *EmbedNode)
	Append(n ...Node)
	Remove(child Node)

	Measure(hint image.Point) image.Point

	LayoutMarked()
	LayoutTree()
	Layout() // set childs bounds, don't call childs layout
	ChildsLayoutTree()

	PaintMarked() image.Rectangle
	PaintTree() bool
	PaintBase() // pre-paint step, useful for widgets with a pre-paint stage
	Paint()
	ChildsPaintTree()

	OnChildMarked(child Node, newMarks Marks)
}

//----------

// Doesn't allow embed to be assigned to a Node directly, which prevents a range of programming mistakes. This is the node other widgets should inherit from.
type ENode struct {
	EmbedNode
}

func (ENode) fullNode() {}

//----------

type EmbedNode struct {
	Bounds  image.Rectangle
	Wrapper Node
	Parent  *EmbedNode

	marks  Marks
	childs list.List
	elem   *list.Element
}

//----------

func (en *EmbedNode) Embed() *EmbedNode {
	return en
}

// Only the root node should need to set the wrapper explicitly.
func (en *EmbedNode) SetWrapperForRoot(n Node) {
	en.Wrapper = n
}

//----------

// If a node wants its InsertBefore implementation to be used, the wrapper must be set.
func (en *EmbedNode) Append(nodes ...Node) {
	for _, n := range nodes {
		if en.Wrapper != nil {
			en.Wrapper.InsertBefore(n, nil)
		} else {
			en.InsertBefore(n, nil)
		}
	}
}

func (en *EmbedNode) InsertBefore(child Node, next *EmbedNode) {
	childe := child.Embed()

	if childe == en {
		panic("inserting into itself")
	}
	if childe.Parent != nil {
		panic("element already has a parent")
	}

	// insert in list and get element
	var elem *list.Element
	if next == nil {
		elem = en.childs.PushBack(childe)
	} else {
		// ensure next element is a child of this node
		if next.Parent != en {
			panic("next is not a child of this node")
		}

		elem = en.childs.InsertBefore(childe, next.elem)
	}
	if elem == nil {
		panic("element not inserted")
	}

	childe.elem = elem
	childe.Parent = en
	childe.Wrapper = child // auto set the wrapper

	en.MarkNeedsLayoutAndPaint()
}

//----------

func (en *EmbedNode) Remove(child Node) {
	childe := child.Embed()
	if childe.Parent != en {
		panic("not a child of this node")
	}
	en.childs.Remove(childe.elem)
	childe.elem = nil
	childe.Parent = nil

	en.MarkNeedsLayoutAndPaint()
}

//----------

func (en *EmbedNode) ChildsLen() int {
	return en.childs.Len()
}

//----------

func elemEmbed(e *list.Element) *EmbedNode {
	if e == nil {
		return nil
	}
	return e.Value.(*EmbedNode)
}
func elemWrapper(e *list.Element) Node {
	if e == nil {
		return nil
	}
	return e.Value.(*EmbedNode).Wrapper
}

//----------

// Iterate all without break possibility.

func (en *EmbedNode) Iterate2(f func(*EmbedNode)) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		f(elemEmbed(e))
	}
}
func (en *EmbedNode) IterateWrappers2(f func(Node)) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		f(elemWrapper(e))
	}
}

//----------

func (en *EmbedNode) HasAnyMarks(m Marks) bool {
	return en.marks.HasAny(m)
}

func (en *EmbedNode) AddMarks(m Marks) {
	en.markUp(m, nil, 0)
}

func (en *EmbedNode) RemoveMarks(m Marks) {
	// direcly non-removable marks
	u := MarkNeedsPaint | MarkNeedsLayout |
		MarkChildNeedsPaint | MarkChildNeedsLayout
	if m.HasAny(u) {
		panic(fmt.Sprintf("mark not directly removable: %v", u))
	}
	en.marks.Remove(m)
}

//----------

func (en *EmbedNode) markUp(m Marks, child Node, childChangedMarks Marks) {
	old := en.marks
	en.marks |= m
	changed := en.marks ^ old

	// this node is a parent, run callback as soon as it gets marked (now)
	if en.Wrapper != nil && child != nil && childChangedMarks != 0 {
		en.Wrapper.OnChildMarked(child, childChangedMarks)
	}

	if en.Parent != nil && changed != 0 {
		// setup marks to add to parent
		var u Marks
		if changed.HasAny(MarkNeedsPaint | MarkChildNeedsPaint) {
			u.Add(MarkChildNeedsPaint)
		}
		if changed.HasAny(MarkNeedsLayout | MarkChildNeedsLayout) {
			u.Add(MarkChildNeedsLayout)
		}

		// mark parent
		en.Parent.markUp(u, en.Wrapper, changed)
	}
}

func (en *EmbedNode) OnChildMarked(child Node, newMarks Marks) {
}

//----------

func (en *EmbedNode) MarkNeedsLayout() {
	en.AddMarks(MarkNeedsLayout)
}
func (en *EmbedNode) MarkNeedsPaint() {
	en.AddMarks(MarkNeedsPaint)
}
func (en *EmbedNode) MarkNeedsLayoutAndPaint() {
	en.AddMarks(MarkNeedsLayout | MarkNeedsPaint)
}

//----------

func (en *EmbedNode) TreeNeedsPaint() bool {
	return en.HasAnyMarks(MarkNeedsPaint | MarkChildNeedsPaint)
}

func (en *EmbedNode) TreeNeedsLayout() bool {
	return en.HasAnyMarks(MarkNeedsLayout | MarkChildNeedsLayout)
}

//----------

func (en *EmbedNode) Measure(hint image.Point) image.Point {
	var max image.Point
	en.IterateWrappers2(func(c Node) {
		m := c.Measure(hint)
		max = imageutil.MaxPoint(max, m)
	})
	return max
}

//----------

func (en *EmbedNode) LayoutMarked() {
	if en.HasAnyMarks(MarkNeedsLayout) {
		en.Wrapper.LayoutTree()
	} else if en.HasAnyMarks(MarkChildNeedsLayout) {
		en.marks.Remove(MarkChildNeedsLayout)
		en.IterateWrappers2(func(c Node) {
			c.LayoutMarked()
		})
	}
}

func (en *EmbedNode) LayoutTree() {
	en.marks.Remove(MarkNeedsLayout | MarkChildNeedsLayout)

	// keep/set default bounds before layouting childs
	cbm := map[*EmbedNode]image.Rectangle{}
	en.Iterate2(func(c *EmbedNode) {
		cbm[c] = c.Bounds
		c.Bounds = en.Bounds // parent bounds

		// set to empty if not visible
		if c.HasAnyMarks(MarkForceZeroBounds) {
			c.Bounds = image.Rectangle{}
		}
	})

	en.Wrapper.Layout()
	en.Wrapper.ChildsLayoutTree()

	// auto detect if it needs paint if bounds change
	en.Iterate2(func(c *EmbedNode) {
		if cb, ok := cbm[c]; ok && c.Bounds != cb {
			c.MarkNeedsPaint()
		}
	})
}

func (en *EmbedNode) Layout() {
}

func (en *EmbedNode) ChildsLayoutTree() {
	en.IterateWrappers2(func(c Node) {
		c.LayoutTree()
	})
}

//----------

func (en *EmbedNode) PaintMarked() image.Rectangle {
	u := image.Rectangle{}
	if en.HasAnyMarks(MarkNeedsPaint) {
		if en.Wrapper.PaintTree() {
			u = u.Union(en.Bounds)
		}
	} else if en.HasAnyMarks(MarkChildNeedsPaint) {
		en.marks.Remove(MarkChildNeedsPaint)
		en.IterateWrappers2(func(c Node) {
			r := c.PaintMarked()
			u = u.Union(r)
		})
	}
	return u
}

func (en *EmbedNode) PaintTree() bool {
	en.marks.Remove(MarkNeedsPaint | MarkChildNeedsPaint)

	if en.HasAnyMarks(MarkNotPaintable | MarkForceZeroBounds) {
		return false
	}

	en.Wrapper.PaintBase()
	en.Wrapper.Paint()
	en.Wrapper.ChildsPaintTree()
	return true
}

func (en *EmbedNode) PaintBase() {
}

func (en *EmbedNode) Paint() {
}

func (en *EmbedNode) ChildsPaintTree() {
	en.IterateWrappers2(func(c Node) {
		c.PaintTree()
	})
}

//----------

type Marks uint16

func (m *Marks) Add(u Marks)        { *m |= u }
func (m *Marks) Remove(u Marks)     { *m &^= u }
func (m Marks) Mask(u Marks) Marks  { return m & u }
func (m Marks) HasAny(u Marks) bool { return m.Mask(u) > 0 }

//----------

const (
	MarkNeedsPaint Marks = 1 << iota
	MarkNeedsLayout

	MarkChildNeedsPaint
	MarkChildNeedsLayout

	MarkForceZeroBounds // sets bounds to zero (aka not visible)

	// For transparent widgets that don't paint anything.
	MarkNotPaintable
)
