package usecases

// Actor identifies who is performing a ticket operation. Role resolution
// (staff role membership, admin flag) happens at the interface layer; the
// usecases only enforce the resulting authorization rules.
type Actor struct {
	ID    string
	Name  string
	Staff bool
	Admin bool
}

// IsStaff reports whether the actor may act on tickets they did not open.
func (a Actor) IsStaff() bool {
	return a.Staff || a.Admin
}
