package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Point is an integer coordinate. Y grows downwards.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Span holds the edges of a rectangle: Left/Right along X, Top/Bottom along Y.
type Span struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

func spanOf(x, y, w, h int) Span {
	return Span{Left: x, Right: x + w, Top: y, Bottom: y + h}
}

// Corners returns the four corners in the order top-left, top-right,
// bottom-left, bottom-right.
func (s Span) Corners() [4]Point {
	return [4]Point{
		{X: s.Left, Y: s.Top},
		{X: s.Right, Y: s.Top},
		{X: s.Left, Y: s.Bottom},
		{X: s.Right, Y: s.Bottom},
	}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", s.Left, s.Right, s.Top, s.Bottom)
}

// Bounded is anything occupying a rectangle inside a container.
// Container reports false when the value is not inside any container.
type Bounded interface {
	Span() Span
	Container() (int, bool)
}

// Overlaps reports whether a and b share interior area in the same container.
// Rectangles that only touch along an edge do not overlap.
func Overlaps(a, b Bounded) bool {
	if !sameContainer(a, b) {
		return false
	}
	ac := a.Span().Corners()
	bc := b.Span().Corners()
	return !(ac[1].X <= bc[2].X ||
		ac[2].X >= bc[1].X ||
		ac[1].Y >= bc[2].Y ||
		ac[2].Y <= bc[1].Y)
}

// Contains reports whether inner lies entirely within outer, edges inclusive.
func Contains(outer, inner Bounded) bool {
	if !sameContainer(outer, inner) {
		return false
	}
	oc := outer.Span().Corners()
	ic := inner.Span().Corners()
	return oc[0].X <= ic[0].X &&
		ic[3].X <= oc[3].X &&
		oc[0].Y <= ic[0].Y &&
		ic[3].Y <= oc[3].Y
}

func sameContainer(a, b Bounded) bool {
	ca, okA := a.Container()
	cb, okB := b.Container()
	return okA && okB && ca == cb
}

// FreeRect is an unoccupied rectangular region of a container. A container
// starts out as a single FreeRect covering all of it.
type FreeRect struct {
	Width       int `json:"width"`
	Height      int `json:"height"`
	X           int `json:"x"`
	Y           int `json:"y"`
	ContainerID int `json:"container_id"`
}

// NewFreeRect returns a width x height region at (x, y) in the given container.
func NewFreeRect(width, height, x, y, containerID int) FreeRect {
	return FreeRect{
		Width:       width,
		Height:      height,
		X:           x,
		Y:           y,
		ContainerID: containerID,
	}
}

// Span returns the region's edges.
func (r FreeRect) Span() Span {
	return spanOf(r.X, r.Y, r.Width, r.Height)
}

// Container returns the region's container id; a region is always in one.
func (r FreeRect) Container() (int, bool) {
	return r.ContainerID, true
}

// Area returns width x height.
func (r FreeRect) Area() int {
	return r.Width * r.Height
}

// Overlaps reports whether r shares interior area with other.
func (r FreeRect) Overlaps(other Bounded) bool {
	return Overlaps(r, other)
}

// Contains reports whether other lies entirely within r.
func (r FreeRect) Contains(other Bounded) bool {
	return Contains(r, other)
}

func (r FreeRect) String() string {
	return fmt.Sprintf("FreeRect{%dx%d at %d,%d in %d}", r.Width, r.Height, r.X, r.Y, r.ContainerID)
}

// Placement records where an item ended up.
type Placement struct {
	X           int `json:"x"`
	Y           int `json:"y"`
	ContainerID int `json:"container_id"`
}

// Item is a rectangle waiting to be packed. An item is placed at most once;
// a placed item is never unplaced again.
type Item struct {
	ID     string `json:"id"`
	Label  string `json:"label,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	placement *Placement
}

// NewItem returns an unplaced item with a fresh 8-character id.
func NewItem(width, height int) Item {
	return Item{
		ID:     uuid.New().String()[:8],
		Width:  width,
		Height: height,
	}
}

// Placed returns the item's placement, if it has one.
func (it Item) Placed() (Placement, bool) {
	if it.placement == nil {
		return Placement{}, false
	}
	return *it.placement, true
}

// IsPlaced reports whether the item has been assigned a position.
func (it Item) IsPlaced() bool {
	return it.placement != nil
}

// PlacedAt returns a copy of the item positioned at (x, y) in the given
// container. It panics if the item is already placed.
func (it Item) PlacedAt(x, y, containerID int) Item {
	if it.placement != nil {
		panic(fmt.Sprintf("model: item %s is already placed", it.ID))
	}
	it.placement = &Placement{X: x, Y: y, ContainerID: containerID}
	return it
}

// Span returns the edges of a placed item. Calling it on an unplaced item is
// a programming error and panics.
func (it Item) Span() Span {
	if it.placement == nil {
		panic(fmt.Sprintf("model: coordinates of unplaced item %s", it.ID))
	}
	return spanOf(it.placement.X, it.placement.Y, it.Width, it.Height)
}

// Container returns the item's container id, or false while it is unplaced.
func (it Item) Container() (int, bool) {
	if it.placement == nil {
		return 0, false
	}
	return it.placement.ContainerID, true
}

// Area returns width x height.
func (it Item) Area() int {
	return it.Width * it.Height
}

// Overlaps reports whether the placed item shares interior area with other.
// An unplaced item overlaps nothing.
func (it Item) Overlaps(other Bounded) bool {
	return Overlaps(it, other)
}

func (it Item) String() string {
	if p, ok := it.Placed(); ok {
		return fmt.Sprintf("Item{%s %dx%d at %d,%d in %d}", it.ID, it.Width, it.Height, p.X, p.Y, p.ContainerID)
	}
	return fmt.Sprintf("Item{%s %dx%d unplaced}", it.ID, it.Width, it.Height)
}

type itemJSON struct {
	ID        string     `json:"id"`
	Label     string     `json:"label,omitempty"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Placement *Placement `json:"placement,omitempty"`
}

func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		ID:        it.ID,
		Label:     it.Label,
		Width:     it.Width,
		Height:    it.Height,
		Placement: it.placement,
	})
}

func (it *Item) UnmarshalJSON(data []byte) error {
	var raw itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*it = Item{
		ID:        raw.ID,
		Label:     raw.Label,
		Width:     raw.Width,
		Height:    raw.Height,
		placement: raw.Placement,
	}
	return nil
}

// Result is the outcome of one packing run.
type Result struct {
	Placed   []Item     `json:"placed"`
	Unplaced []Item     `json:"unplaced"`
	Free     []FreeRect `json:"free"`
}
