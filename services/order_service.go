package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"littlelemon/authz"
	"littlelemon/entity"
	"littlelemon/repository"
)

// OrderNotifier fans out committed order events; the websocket hub
// implements it. Nil is fine when nobody listens.
type OrderNotifier interface {
	NotifyOrderEvent(event string, order *entity.Order)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
	Notifier OrderNotifier
}

func NewOrderService(db *gorm.DB, orders *repository.OrderRepository, carts *repository.CartRepository, users *repository.UserRepository, notifier OrderNotifier) *OrderService {
	return &OrderService{DB: db, Repo: orders, CartRepo: carts, UserRepo: users, Notifier: notifier}
}

// Checkout converts the caller's cart into an order in one
// transaction: snapshot lines become order lines, the total is fixed,
// and exactly those lines leave the cart. An empty cart changes
// nothing, so an immediate retry cannot order twice.
func (s *OrderService) Checkout(userID uint) (*entity.Order, error) {
	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		items, err := s.CartRepo.ListItemsForUpdate(tx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.Price)
		}

		order := entity.Order{
			UserID:    userID,
			Reference: newOrderReference(),
			Status:    false,
			Total:     total,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		lineIDs := make([]uint, 0, len(items))
		for _, it := range items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				UnitPrice:  it.UnitPrice,
				Price:      it.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			lineIDs = append(lineIDs, it.ID)
		}

		// Delete only the snapshotted lines; an add that lands after
		// the snapshot stays in the cart for the next checkout.
		if err := s.CartRepo.RemoveLines(tx, userID, lineIDs); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	out, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.NotifyOrderEvent("order.created", out)
	}
	return out, nil
}

// newOrderReference: timestamp plus uuid keeps references unique and
// roughly sortable.
func newOrderReference() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

type ListOrdersIn struct {
	Status  *bool
	Page    int
	PerPage int
}

// List applies the visibility partition: managers and admin see all,
// crew see assigned deliveries, customers their own orders.
func (s *OrderService) List(caller authz.Caller, in ListOrdersIn) ([]entity.Order, int64, error) {
	v := repository.OrderVisibility{}
	switch {
	case caller.Role.AtLeast(entity.RoleManager):
		v.All = true
	case caller.Role == entity.RoleDeliveryCrew:
		v.CrewID = caller.UserID
	default:
		v.UserID = caller.UserID
	}
	return s.Repo.ListOrders(v, repository.OrderFilter{Status: in.Status, Page: in.Page, PerPage: in.PerPage})
}

// Get hides orders outside the caller's partition as not found.
func (s *OrderService) Get(caller authz.Caller, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithItems(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	d := authz.Decide(caller, authz.ResourceOrder, authz.ActionRead, orderTarget(o))
	if !d.Allowed {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) Delete(caller authz.Caller, orderID uint) error {
	if d := authz.Decide(caller, authz.ResourceOrder, authz.ActionDelete, authz.Target{}); !d.Allowed {
		return Denied(d)
	}
	affected, err := s.Repo.DeleteOrder(orderID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// ExportAll feeds the spreadsheet report. Route access is manager-only.
func (s *OrderService) ExportAll() ([]entity.Order, error) {
	return s.Repo.ListAllForExport()
}

func orderTarget(o *entity.Order) authz.Target {
	return authz.Target{OwnerID: o.UserID, AssignedTo: o.DeliveryCrewID}
}
