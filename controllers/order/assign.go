package orderControllers

import (
	"context"
	"errors"
	"fmt"

	"github.com/lukwagoraymond/duzol-pharma/models"
	"github.com/lukwagoraymond/duzol-pharma/repository"
)

type VendorFinder interface {
	FindByID(ctx context.Context, id string) (*models.Vendor, error)
}

type AgentFinder interface {
	FindAvailable(ctx context.Context, pincode string) ([]models.DeliveryUser, error)
}

// FirstAvailableInArea assigns the first verified, available agent in the
// vendor's pincode, in whatever order the store returns them. No load
// balancing, no distance ranking. When no agent matches, the order is
// marked for vendor self-delivery.
type FirstAvailableInArea struct {
	Vendors VendorFinder
	Agents  AgentFinder
	Orders  OrderStore
}

func (a *FirstAvailableInArea) Assign(ctx context.Context, orderID, vendorID string) error {
	vendor, err := a.Vendors.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("vendor %s not found", vendorID)
		}
		return fmt.Errorf("load vendor: %w", err)
	}

	order, err := a.Orders.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}

	agents, err := a.Agents.FindAvailable(ctx, vendor.Pincode)
	if err != nil {
		return fmt.Errorf("find delivery agents: %w", err)
	}
	if len(agents) == 0 {
		order.DeliveryID = models.SelfDelivery
	} else {
		order.DeliveryID = agents[0].ID.Hex()
	}
	return a.Orders.Save(ctx, order)
}
