package entity

// Role is what a user is allowed to act as. A user holds customer by
// default, gains manager/delivery_crew through group membership, and
// admin through the IsAdmin account flag.
type Role string

const (
	RoleCustomer     Role = "customer"
	RoleDeliveryCrew Role = "delivery_crew"
	RoleManager      Role = "manager"
	RoleAdmin        Role = "admin"
)

// GroupRoles are the roles that live in the group_members table.
// admin and customer are not group-backed.
var GroupRoles = []Role{RoleManager, RoleDeliveryCrew}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleDeliveryCrew, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// AtLeast reports whether r carries at least min's privilege.
func (r Role) AtLeast(min Role) bool {
	return r.rank() >= min.rank()
}

// rank orders roles for precedence when a user sits in several groups.
func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleManager:
		return 2
	case RoleDeliveryCrew:
		return 1
	default:
		return 0
	}
}

// HighestRole folds an admin flag plus group memberships into the single
// role a request acts under. Manager outranks delivery_crew, admin
// outranks both, customer is the floor.
func HighestRole(isAdmin bool, groups []Role) Role {
	if isAdmin {
		return RoleAdmin
	}
	best := RoleCustomer
	for _, g := range groups {
		if g.rank() > best.rank() {
			best = g
		}
	}
	return best
}
