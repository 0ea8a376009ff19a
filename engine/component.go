package engine

import (
	"github.com/lixenwraith/tuikit/vt"
)

// Kind carries a component's identity, state, and behavior. The session
// discovers behavior by type assertion against the capability
// interfaces below; a Kind implements only what it needs.
type Kind interface {
	Name() string
}

// ClickHandler receives mouse events routed by hit-test and parent
// escalation. Returning true consumes the event and stops escalation.
type ClickHandler interface {
	HandleClick(c *Component, ev MouseEvent) bool
}

// KeyHandler receives key events during the top-down z-order scan.
// Returning true consumes the event and stops the scan.
type KeyHandler interface {
	HandleKey(c *Component, ev KeyEvent) bool
}

// Renderer draws the component during Render. The registry paints
// bottom-up, so the top-most component paints last.
type Renderer interface {
	Render(c *Component, scr vt.Screen)
}

// Resizer lays out the component's children after its rect changes.
type Resizer interface {
	Resize(c *Component, r Rect)
}

// Component is a uniform tree node: a rect, exclusive ownership of its
// children, a non-owning parent back-reference for event escalation,
// and a Kind for everything behavioral.
type Component struct {
	rect     Rect
	parent   *Component
	children []*Component
	kind     Kind
	sess     *Session
}

// NewComponent wraps a kind in an unattached node.
func NewComponent(k Kind) *Component {
	return &Component{kind: k}
}

// Rect returns the component's current screen-space box.
func (c *Component) Rect() Rect {
	return c.rect
}

// Parent returns the parent node, nil for the root and unattached nodes.
func (c *Component) Parent() *Component {
	return c.parent
}

// Children returns the owned child list in attach order.
func (c *Component) Children() []*Component {
	return c.children
}

// Kind returns the behavioral payload.
func (c *Component) Kind() Kind {
	return c.kind
}

// Resize stores the rect decided by the parent's layout, then invokes
// the kind's Resizer to lay out children. The rect is applied even when
// the kind has no Resizer, so propagation reaches leaves top-down.
func (c *Component) Resize(r Rect) {
	c.rect = r
	if rs, ok := c.kind.(Resizer); ok {
		rs.Resize(c, r)
	}
}
