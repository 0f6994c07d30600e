package user

type Role string

const (
	RoleWorker     Role = "worker"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleWorker, RoleSupervisor, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanApproveChanges reports whether the role may act as the ADMIN side of a
// shift-change or vacation approval.
func (r Role) CanApproveChanges() bool {
	return r == RoleSupervisor || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
