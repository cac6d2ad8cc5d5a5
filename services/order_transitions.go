// services/order_transitions.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"littlelemon/authz"
	"littlelemon/entity"
)

// OrderPatch is the writable surface of an order. Who may touch which
// field depends on the caller's role and assignment.
type OrderPatch struct {
	Status         *bool `json:"status"`
	DeliveryCrewID *uint `json:"deliveryCrewId"`
}

// Update applies the field-level write rules: managers and admin may
// set either field in any direction; assigned crew may only flip
// status pending->delivered; customers mutate nothing.
func (s *OrderService) Update(caller authz.Caller, orderID uint, patch OrderPatch) (*entity.Order, error) {
	if patch.Status == nil && patch.DeliveryCrewID == nil {
		return nil, ErrNoFields
	}

	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	target := orderTarget(o)

	if patch.DeliveryCrewID != nil {
		if d := authz.Decide(caller, authz.ResourceOrder, authz.ActionAssignCrew, target); !d.Allowed {
			return nil, Denied(d)
		}
		exists, err := s.UserRepo.ExistsByID(*patch.DeliveryCrewID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrCrewInvalid
		}
	}
	if patch.Status != nil {
		if d := authz.Decide(caller, authz.ResourceOrder, authz.ActionSetStatus, target); !d.Allowed {
			return nil, Denied(d)
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if caller.Role == entity.RoleDeliveryCrew {
			// one-way: pending -> delivered, guarded against races
			if !*patch.Status {
				return ErrTransitionInvalid
			}
			affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, false, true)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrAlreadyDelivered
			}
			return nil
		}

		updates := map[string]any{}
		if patch.Status != nil {
			updates["status"] = *patch.Status
		}
		if patch.DeliveryCrewID != nil {
			updates["delivery_crew_id"] = *patch.DeliveryCrewID
		}
		affected, err := s.Repo.UpdateFields(tx, o.ID, updates)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Repo.GetOrderWithItems(o.ID)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.NotifyOrderEvent("order.updated", out)
	}
	return out, nil
}

// AssignCrew hands the order to a delivery account (manager action).
func (s *OrderService) AssignCrew(caller authz.Caller, orderID, crewID uint) (*entity.Order, error) {
	return s.Update(caller, orderID, OrderPatch{DeliveryCrewID: &crewID})
}

// MarkDelivered flips the order to delivered. For crew the pending
// guard applies; managers may re-mark freely.
func (s *OrderService) MarkDelivered(caller authz.Caller, orderID uint) (*entity.Order, error) {
	delivered := true
	return s.Update(caller, orderID, OrderPatch{Status: &delivered})
}
