package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// ErrEmptyCart is returned when a customer checks out with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutCommandHandler orchestrates the settlement of a customer's cart.
// Splits the cart by shop, creates one order per shop, decrements stock,
// debits the customer, and accrues the platform's cut, all in one
// transaction.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, sequences.Orders, 0.09)
//	cmd, _ := NewCheckoutCommand(customerID)
//	orderIDs, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrEmptyCart):
//	    log.Println("Nothing to check out")
//	case errors.Is(err, user.ErrInsufficientBalance):
//	    log.Println("Balance too low")
//	case err != nil:
//	    log.Printf("Checkout failed: %v", err)
//	default:
//	    log.Printf("Created orders %v", orderIDs)
//	}
type CheckoutCommandHandler struct {
	uowFactory UoWFactory
	ids        kernel.IDGenerator
	profitRate float64
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// The id generator draws from the order sequence; profitRate is the fixed
// fraction of each cart total accrued to the platform ledger.
func NewCheckoutCommandHandler(uowFactory UoWFactory, ids kernel.IDGenerator, profitRate float64) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		ids:        ids,
		profitRate: profitRate,
	}
}

// Handle processes the checkout command and returns the ids of the orders created.
//
// Settlement sequence:
//  1. Price the cart against current stock and debit the customer
//  2. Reject an empty detached cart with ErrEmptyCart
//  3. Split the cart by shop and create one order per shop
//  4. Decrement every purchased stock item once, globally
//  5. Accrue cartTotal times profitRate to the platform ledger
//
// The in-memory sequence debits before building orders, mirroring the
// detach-then-process contract of Checkout on the customer, but the whole
// command runs in a single transaction so a failure at any step leaves no
// partial persisted state.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) ([]uint64, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	shopRepo := uow.ShopRepository()
	orderRepo := uow.OrderRepository()
	ledgerRepo := uow.LedgerRepository()

	customer, err := userRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	customerCart, err := customer.Cart()
	if err != nil {
		return nil, err
	}

	allShops, err := shopRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	catalog := newStockIndex(allShops)

	total, err := customerCart.TotalPrice(catalog)
	if err != nil {
		return nil, err
	}

	detached, err := customer.Checkout(total)
	if err != nil {
		return nil, err
	}
	if detached.IsEmpty() {
		return nil, ErrEmptyCart
	}

	contents, err := services.NewContentSplitter().Split(detached, catalog)
	if err != nil {
		return nil, err
	}

	orderedAt := time.Now()
	orderIDs := make([]uint64, 0, len(contents))
	for _, content := range contents {
		owningShop, ok := catalog.shop(content.ShopID)
		if !ok {
			return nil, errs.NewObjectNotFoundError("shop id", content.ShopID)
		}

		newOrder, err := order.NewOrder(
			h.ids.Next(),
			orderedAt,
			customer.ID(),
			content.ShopID,
			owningShop.Address(),
			content.Lines,
			content.Subtotal,
		)
		if err != nil {
			return nil, err
		}

		if err = orderRepo.Add(ctx, newOrder); err != nil {
			return nil, err
		}
		orderIDs = append(orderIDs, newOrder.ID())
	}

	// Stock comes off the shelves once, after all orders are built.
	touched := make(map[uint64]*shop.Shop)
	for _, line := range detached.Lines() {
		item, err := catalog.StockItem(line.StockItemID())
		if err != nil {
			return nil, err
		}
		if err = item.Decrement(line.Quantity()); err != nil {
			return nil, err
		}
		owningShop, _ := catalog.shop(item.ShopID())
		touched[owningShop.ID()] = owningShop
	}
	for _, touchedShop := range touched {
		if err = shopRepo.Update(ctx, touchedShop); err != nil {
			return nil, err
		}
	}

	platformLedger, err := ledgerRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err = platformLedger.Accrue(total * h.profitRate); err != nil {
		return nil, err
	}
	if err = ledgerRepo.Update(ctx, platformLedger); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderIDs, nil
}

// stockIndex resolves stock item ids against a loaded set of shops.
// Implements the catalog contract shared by the cart and the splitter.
type stockIndex struct {
	shops map[uint64]*shop.Shop
	items map[uint64]*shop.StockItem
}

func newStockIndex(shops []*shop.Shop) *stockIndex {
	idx := &stockIndex{
		shops: make(map[uint64]*shop.Shop, len(shops)),
		items: make(map[uint64]*shop.StockItem),
	}
	for _, s := range shops {
		idx.shops[s.ID()] = s
		for _, item := range s.Stock() {
			idx.items[item.ID()] = item
		}
	}
	return idx
}

func (idx *stockIndex) StockItem(id uint64) (*shop.StockItem, error) {
	item, ok := idx.items[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("stock item id", id)
	}
	return item, nil
}

func (idx *stockIndex) shop(id uint64) (*shop.Shop, bool) {
	s, ok := idx.shops[id]
	return s, ok
}
