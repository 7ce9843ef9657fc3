package identity

type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleDoctor, RolePatient, RoleAdmin:
		return true
	}
	return false
}

// CallerContext is the authenticated identity behind a request. It is passed
// explicitly into every engine operation.
type CallerContext struct {
	ID   uint
	Role Role
	Name string
}

func (c CallerContext) Is(role Role) bool {
	return c.ID != 0 && c.Role == role
}
