package profiles

import "time"

// Role define el tipo de usuario.
// @Enum patient, caretaker
type Role string

const (
	RolePatient   Role = "patient"
	RoleCaretaker Role = "caretaker"
)

// Profile complementa al usuario del proveedor de identidad (mismo ID).
type Profile struct {
	ID        string
	Name      string
	Role      Role
	CreatedAt time.Time
}
