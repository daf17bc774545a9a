package cmd

import (
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sequences  *kernel.Sequences
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sequences:  kernel.NewSequences(),
	}
}

// SeedSequences lifts every id sequence above the highest persisted id so
// restarts never hand out identifiers that are already taken.
func (c *CompositionRoot) SeedSequences() error {
	tables := []struct {
		name     string
		sequence *kernel.Sequence
	}{
		{"users", c.sequences.Users},
		{"orders", c.sequences.Orders},
		{"stock_items", c.sequences.StockItems},
		{"shops", c.sequences.Shops},
		{"cart_lines", c.sequences.CartLines},
	}

	for _, t := range tables {
		var maxID uint64
		if err := c.gormDB.Raw("SELECT COALESCE(MAX(id), 0) FROM " + t.name).Scan(&maxID).Error; err != nil {
			return err
		}
		t.sequence.Raise(maxID)
	}
	return nil
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.createUserUoWFactory(), c.sequences.Users)
}

func (c *CompositionRoot) CreateCreateShopCommandHandler() commands.CreateShopCommandHandler {
	return commands.NewCreateShopCommandHandler(c.createUoWFactory(), c.sequences.Shops)
}

func (c *CompositionRoot) CreateAddStockItemCommandHandler() commands.AddStockItemCommandHandler {
	return commands.NewAddStockItemCommandHandler(c.createShopUoWFactory(), c.sequences.StockItems)
}

func (c *CompositionRoot) CreateRemoveStockItemCommandHandler() commands.RemoveStockItemCommandHandler {
	return commands.NewRemoveStockItemCommandHandler(c.createShopUoWFactory())
}

func (c *CompositionRoot) CreateAddCartLineCommandHandler() commands.AddCartLineCommandHandler {
	return commands.NewAddCartLineCommandHandler(c.createUoWFactory(), c.sequences.CartLines)
}

func (c *CompositionRoot) CreateRemoveCartLineCommandHandler() commands.RemoveCartLineCommandHandler {
	return commands.NewRemoveCartLineCommandHandler(c.createUserUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.createUoWFactory(), c.sequences.Orders, c.config.ProfitRate)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateFinishOrderCommandHandler() commands.FinishOrderCommandHandler {
	return commands.NewFinishOrderCommandHandler(c.createUoWFactory(), c.config.ShipperFee)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.createUoWFactory(), c.config.ProfitRate)
}

func (c *CompositionRoot) CreateDepositCommandHandler() commands.DepositCommandHandler {
	return commands.NewDepositCommandHandler(c.createUserUoWFactory())
}

func (c *CompositionRoot) CreateWithdrawCommandHandler() commands.WithdrawCommandHandler {
	return commands.NewWithdrawCommandHandler(c.createUserUoWFactory())
}

func (c *CompositionRoot) CreateShopPayoutCommandHandler() commands.ShopPayoutCommandHandler {
	return commands.NewShopPayoutCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateRelayWarehouseOrdersCommandHandler() commands.RelayWarehouseOrdersCommandHandler {
	return commands.NewRelayWarehouseOrdersCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipperOrdersQueryHandler() queries.GetShipperOrdersQueryHandler {
	return queries.NewGetShipperOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopOrdersQueryHandler() queries.GetShopOrdersQueryHandler {
	return queries.NewGetShopOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersReadyToShipQueryHandler() queries.GetOrdersReadyToShipQueryHandler {
	return queries.NewGetOrdersReadyToShipQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchShopsQueryHandler() queries.SearchShopsQueryHandler {
	return queries.NewSearchShopsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createUserUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createShopUoWFactory() commands.ShopUoWFactory {
	return FuncShopUoWFactory(func() commands.ShopUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncShopUoWFactory func() commands.ShopUoW

func (f FuncShopUoWFactory) Create() commands.ShopUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
