// Package authz holds the single decision table for who may do what.
// Decide is pure: it sees the caller's already-derived role plus the
// ownership facts of the target, touches no storage, and returns an
// allow or a deny with a reason. Everything HTTP-shaped stays outside.
package authz

import (
	"littlelemon/entity"
)

type Resource string

const (
	ResourceCategory          Resource = "category"
	ResourceMenuItem          Resource = "menu_item"
	ResourceCart              Resource = "cart"
	ResourceOrder             Resource = "order"
	ResourceGroupManager      Resource = "group:manager"
	ResourceGroupDeliveryCrew Resource = "group:delivery_crew"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"

	// Order-only actions. Which status values a crew member may move
	// between is the order service's business, not the table's.
	ActionSetStatus  Action = "set_status"
	ActionAssignCrew Action = "assign_crew"
)

// Caller is the acting identity after role derivation.
type Caller struct {
	UserID uint
	Role   entity.Role
}

// Target carries the ownership facts Decide needs. Zero value means
// "no particular target" (creates, collection-level checks).
type Target struct {
	OwnerID    uint
	AssignedTo *uint
}

type DenyReason string

const (
	ReasonInsufficientRole DenyReason = "insufficient role"
	ReasonNotOwner         DenyReason = "not the owner"
	ReasonNotAssigned      DenyReason = "not assigned to this order"
)

type Decision struct {
	Allowed bool
	Reason  DenyReason `json:"reason,omitempty"`
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}

// Decide evaluates one (role, resource, action, target) tuple.
func Decide(c Caller, res Resource, act Action, t Target) Decision {
	switch res {
	case ResourceCategory, ResourceMenuItem:
		if act == ActionRead {
			return Allow()
		}
		if c.Role.AtLeast(entity.RoleManager) {
			return Allow()
		}
		return Deny(ReasonInsufficientRole)

	case ResourceGroupManager:
		if c.Role == entity.RoleAdmin {
			return Allow()
		}
		return Deny(ReasonInsufficientRole)

	case ResourceGroupDeliveryCrew:
		if c.Role.AtLeast(entity.RoleManager) {
			return Allow()
		}
		return Deny(ReasonInsufficientRole)

	case ResourceCart:
		// Carts belong to customers alone; managers and crew have no
		// cart of their own to act on.
		if c.Role != entity.RoleCustomer {
			return Deny(ReasonInsufficientRole)
		}
		if t.OwnerID != 0 && t.OwnerID != c.UserID {
			return Deny(ReasonNotOwner)
		}
		return Allow()

	case ResourceOrder:
		return decideOrder(c, act, t)
	}

	return Deny(ReasonInsufficientRole)
}

func decideOrder(c Caller, act Action, t Target) Decision {
	switch act {
	case ActionCreate:
		// Checkout converts the caller's own cart; only customers
		// carry one.
		if c.Role == entity.RoleCustomer {
			return Allow()
		}
		return Deny(ReasonInsufficientRole)

	case ActionRead:
		if c.Role.AtLeast(entity.RoleManager) {
			return Allow()
		}
		if c.Role == entity.RoleDeliveryCrew {
			if assignedTo(t, c.UserID) {
				return Allow()
			}
			return Deny(ReasonNotAssigned)
		}
		if t.OwnerID == c.UserID {
			return Allow()
		}
		return Deny(ReasonNotOwner)

	case ActionSetStatus:
		if c.Role.AtLeast(entity.RoleManager) {
			return Allow()
		}
		if c.Role == entity.RoleDeliveryCrew {
			if assignedTo(t, c.UserID) {
				return Allow()
			}
			return Deny(ReasonNotAssigned)
		}
		return Deny(ReasonInsufficientRole)

	case ActionAssignCrew, ActionUpdate, ActionDelete:
		if c.Role.AtLeast(entity.RoleManager) {
			return Allow()
		}
		return Deny(ReasonInsufficientRole)
	}

	return Deny(ReasonInsufficientRole)
}

func assignedTo(t Target, userID uint) bool {
	return t.AssignedTo != nil && *t.AssignedTo == userID
}
