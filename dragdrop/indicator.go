package dragdrop

import "github.com/agiangrant/ctdinput/retained"

// Indicator marks where a drop would land while a target is hovered.
// Enter and Leave must alternate: the manager guarantees it, so a second
// Enter means a broken caller and panics.
type Indicator struct {
	active bool
	pos    retained.Point
}

// Enter shows the indicator at pos.
func (i *Indicator) Enter(pos retained.Point) {
	if i.active {
		panic("dragdrop: indicator entered twice without leaving")
	}
	i.active = true
	i.pos = pos
}

// Move updates the position of an active indicator.
func (i *Indicator) Move(pos retained.Point) {
	if i.active {
		i.pos = pos
	}
}

// Leave hides the indicator. Leaving an inactive indicator is a no-op.
func (i *Indicator) Leave() {
	i.active = false
}

// Active reports whether the indicator is shown.
func (i *Indicator) Active() bool {
	return i.active
}

// Position returns the last position of the indicator.
func (i *Indicator) Position() retained.Point {
	return i.pos
}

// ============================================================================
// Strip
// ============================================================================

// Strip is a ready-made drop target for reorderable rows of widgets such
// as tab strips. It accepts packages named Accept (any package if empty)
// and shows its Indicator while hovered.
type Strip struct {
	retained.BaseResponder

	Accept    string
	Indicator Indicator

	// OnDrop decides the drop outcome. Nil accepts every drop.
	OnDrop func(p *Package, x, y int) bool
}

func (s *Strip) CanAcceptPackage(p *Package) bool {
	return p != nil && (s.Accept == "" || p.Name == s.Accept)
}

func (s *Strip) HoverEnter(p *Package, x, y int) {
	s.Indicator.Enter(retained.Point{X: x, Y: y})
}

func (s *Strip) HoverLeave(p *Package) {
	s.Indicator.Leave()
}

func (s *Strip) Hover(p *Package, x, y int) {
	s.Indicator.Move(retained.Point{X: x, Y: y})
}

func (s *Strip) HandleDrop(p *Package, x, y int) bool {
	if s.OnDrop == nil {
		return true
	}
	return s.OnDrop(p, x, y)
}
