package domain

// Quantity is a magnitude expressed in a unit.
type Quantity struct {
	Magnitude Magnitude
	Unit      Unit
}

// NewQuantity returns a quantity of m in u.
func NewQuantity(m Magnitude, u Unit) Quantity {
	return Quantity{Magnitude: m, Unit: u}
}

// String renders the quantity as "<magnitude> <unit id>".
func (q Quantity) String() string {
	return q.Magnitude.String() + " " + q.Unit.ID()
}
