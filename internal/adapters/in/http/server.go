// Package http exposes the marketplace over a JSON REST API.
// It coordinates between HTTP handlers and application use cases, holding
// no business logic of its own: requests are translated into commands and
// queries, domain errors into status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every use case the server dispatches to.
type Handlers struct {
	RegisterUser    commands.RegisterUserCommandHandler
	CreateShop      commands.CreateShopCommandHandler
	AddStockItem    commands.AddStockItemCommandHandler
	RemoveStockItem commands.RemoveStockItemCommandHandler
	AddCartLine     commands.AddCartLineCommandHandler
	RemoveCartLine  commands.RemoveCartLineCommandHandler
	Checkout        commands.CheckoutCommandHandler
	AcceptOrder     commands.AcceptOrderCommandHandler
	ClaimOrder      commands.ClaimOrderCommandHandler
	FinishOrder     commands.FinishOrderCommandHandler
	ConfirmOrder    commands.ConfirmOrderCommandHandler
	Deposit         commands.DepositCommandHandler
	Withdraw        commands.WithdrawCommandHandler
	ShopPayout      commands.ShopPayoutCommandHandler

	Authenticate         queries.AuthenticateQueryHandler
	GetCustomerOrders    queries.GetCustomerOrdersQueryHandler
	GetShipperOrders     queries.GetShipperOrdersQueryHandler
	GetShopOrders        queries.GetShopOrdersQueryHandler
	GetOrdersReadyToShip queries.GetOrdersReadyToShipQueryHandler
	SearchShops          queries.SearchShopsQueryHandler
	GetCatalog           queries.GetCatalogQueryHandler
}

// Server handles the marketplace HTTP API.
type Server struct {
	handlers Handlers
	sessions *SessionStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, sessions *SessionStore) *Server {
	return &Server{
		handlers: handlers,
		sessions: sessions,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/users", s.register)
	api.POST("/sessions", s.login)
	api.DELETE("/sessions", s.logout)

	api.GET("/shops", s.searchShops)
	api.POST("/shops", s.createShop)
	api.GET("/shops/:shopID/orders", s.shopOrders)
	api.POST("/shops/:shopID/stock", s.addStockItem)
	api.DELETE("/shops/:shopID/stock/:itemID", s.removeStockItem)
	api.POST("/shops/:shopID/payout", s.shopPayout)

	api.GET("/catalog", s.catalog)

	api.POST("/cart/lines", s.addCartLine)
	api.DELETE("/cart/lines", s.removeCartLine)
	api.POST("/checkout", s.checkout)

	api.GET("/orders", s.customerOrders)
	api.GET("/orders/carrying", s.shipperOrders)
	api.GET("/orders/ready", s.ordersReadyToShip)
	api.POST("/orders/:orderID/accept", s.acceptOrder)
	api.POST("/orders/:orderID/claim", s.claimOrder)
	api.POST("/orders/:orderID/finish", s.finishOrder)
	api.POST("/orders/:orderID/confirm", s.confirmOrder)

	api.POST("/balance/deposit", s.deposit)
	api.POST("/balance/withdraw", s.withdraw)
}

func (s *Server) register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+req.Role)
	}

	address, err := parseAddress(req.Address)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	cmd, err := commands.NewRegisterUserCommand(req.Username, req.Password, req.Name, req.Phone, address, role)
	if err != nil {
		return badRequest(ctx, "Invalid registration data: "+err.Error())
	}

	id, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{ID: id})
}

func (s *Server) login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewAuthenticateQuery(req.Username, req.Password)
	if err != nil {
		return badRequest(ctx, "Invalid credentials payload")
	}

	account, err := s.handlers.Authenticate.Handle(ctx.Request().Context(), query)
	if errors.Is(err, queries.ErrInvalidCredentials) {
		return ctx.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid username or password",
		})
	}
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token: s.sessions.Issue(account.ID),
		ID:    account.ID,
		Name:  account.Name,
		Role:  account.Role,
	})
}

func (s *Server) logout(ctx echo.Context) error {
	if token := bearerToken(ctx); token != "" {
		s.sessions.Revoke(token)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) createShop(ctx echo.Context) error {
	actorID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req CreateShopRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address, err := parseAddress(req.Address)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	cmd, err := commands.NewCreateShopCommand(actorID, req.Name, address)
	if err != nil {
		return badRequest(ctx, "Invalid shop data: "+err.Error())
	}

	id, err := s.handlers.CreateShop.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateShopResponse{ID: id})
}

func (s *Server) searchShops(ctx echo.Context) error {
	query := queries.NewSearchShopsQuery(ctx.QueryParam("q"))

	shops, err := s.handlers.SearchShops.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]Shop, len(shops))
	for i, shop := range shops {
		response[i] = Shop{
			ID:      shop.ID,
			Name:    shop.Name,
			Address: shop.Address,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) shopOrders(ctx echo.Context) error {
	if _, ok := s.authenticated(ctx); !ok {
		return unauthorized(ctx)
	}

	shopID, err := pathID(ctx, "shopID")
	if err != nil {
		return badRequest(ctx, "Invalid shop id")
	}

	pendingOnly := ctx.QueryParam("pending") == "true"
	query, err := queries.NewGetShopOrdersQuery(shopID, pendingOnly)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.handlers.GetShopOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

func (s *Server) addStockItem(ctx echo.Context) error {
	actorID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	shopID, err := pathID(ctx, "shopID")
	if err != nil {
		return badRequest(ctx, "Invalid shop id")
	}

	var req AddStockItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddStockItemCommand(actorID, shopID, req.Name, req.Price, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid stock data: "+err.Error())
	}

	id, err := s.handlers.AddStockItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddStockItemResponse{ID: id})
}

func (s *Server) removeStockItem(ctx echo.Context) error {
	actorID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	shopID, err := pathID(ctx, "shopID")
	if err != nil {
		return badRequest(ctx, "Invalid shop id")
	}
	itemID, err := pathID(ctx, "itemID")
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	cmd, err := commands.NewRemoveStockItemCommand(actorID, shopID, itemID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.handlers.RemoveStockItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) shopPayout(ctx echo.Context) error {
	actorID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	shopID, err := pathID(ctx, "shopID")
	if err != nil {
		return badRequest(ctx, "Invalid shop id")
	}

	var req AmountRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewShopPayoutCommand(actorID, shopID, req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid payout request: "+err.Error())
	}

	paid, err := s.handlers.ShopPayout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, AmountResponse{Amount: paid})
}

func (s *Server) catalog(ctx echo.Context) error {
	var shopID uint64
	if raw := ctx.QueryParam("shopId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return badRequest(ctx, "Invalid shop id")
		}
		shopID = parsed
	}

	items, err := s.handlers.GetCatalog.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery(shopID))
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]StockItem, len(items))
	for i, item := range items {
		response[i] = StockItem{
			ID:       item.ID,
			ShopID:   item.ShopID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) addCartLine(ctx echo.Context) error {
	customerID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req CartLineRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddCartLineCommand(customerID, req.StockItemID, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid cart line: "+err.Error())
	}

	if err = s.handlers.AddCartLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) removeCartLine(ctx echo.Context) error {
	customerID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req CartLineRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRemoveCartLineCommand(customerID, req.StockItemID, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid cart line: "+err.Error())
	}

	if err = s.handlers.RemoveCartLine.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) checkout(ctx echo.Context) error {
	customerID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	cmd, err := commands.NewCheckoutCommand(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	orderIDs, err := s.handlers.Checkout.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderIDs: orderIDs})
}

func (s *Server) customerOrders(ctx echo.Context) error {
	customerID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

func (s *Server) shipperOrders(ctx echo.Context) error {
	shipperID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetShipperOrdersQuery(shipperID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.handlers.GetShipperOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

func (s *Server) ordersReadyToShip(ctx echo.Context) error {
	if _, ok := s.authenticated(ctx); !ok {
		return unauthorized(ctx)
	}

	city, err := kernel.CityFromString(ctx.QueryParam("city"))
	if err != nil {
		return badRequest(ctx, "Invalid city")
	}

	query, err := queries.NewGetOrdersReadyToShipQuery(city)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.handlers.GetOrdersReadyToShip.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

func (s *Server) acceptOrder(ctx echo.Context) error {
	actorID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAcceptOrderCommand(actorID, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.handlers.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) claimOrder(ctx echo.Context) error {
	shipperID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewClaimOrderCommand(shipperID, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if err = s.handlers.ClaimOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) finishOrder(ctx echo.Context) error {
	shipperID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewFinishOrderCommand(shipperID, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	delivered, err := s.handlers.FinishOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, FinishOrderResponse{Delivered: delivered})
}

func (s *Server) confirmOrder(ctx echo.Context) error {
	customerID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewConfirmOrderCommand(customerID, orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	confirmed, err := s.handlers.ConfirmOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ConfirmOrderResponse{Confirmed: confirmed})
}

func (s *Server) deposit(ctx echo.Context) error {
	userID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req AmountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDepositCommand(userID, req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid amount: "+err.Error())
	}

	if err = s.handlers.Deposit.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) withdraw(ctx echo.Context) error {
	userID, ok := s.authenticated(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var req AmountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewWithdrawCommand(userID, req.Amount)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	withdrawn, err := s.handlers.Withdraw.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, AmountResponse{Amount: withdrawn})
}

func (s *Server) authenticated(ctx echo.Context) (uint64, bool) {
	token := bearerToken(ctx)
	if token == "" {
		return 0, false
	}
	return s.sessions.Resolve(token)
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

func pathID(ctx echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(ctx.Param(name), 10, 64)
}

func parseAddress(a Address) (kernel.Address, error) {
	city, err := kernel.CityFromString(a.City)
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(a.Line, city)
}

func toOrders(orders []queries.OrderResponse) []Order {
	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = Order{
			ID:         o.ID,
			OrderedAt:  o.OrderedAt,
			CustomerID: o.CustomerID,
			ShopID:     o.ShopID,
			ShipperID:  o.ShipperID,
			Status:     o.Status,
			Location:   o.Location,
			TotalPrice: o.TotalPrice,
		}
	}
	return response
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "Missing or invalid session token",
	})
}

// fail maps domain and application errors to HTTP status codes.
// Not-found maps to 404, business-rule rejections to 409, validation
// failures to 400, anything else to 500.
func fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, user.ErrInsufficientBalance),
		errors.Is(err, user.ErrNotACustomer),
		errors.Is(err, user.ErrAlreadyOwnsShop),
		errors.Is(err, order.ErrNotClaimable),
		errors.Is(err, order.ErrNotOrderShipper),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, shop.ErrNotEnoughStock),
		errors.Is(err, commands.ErrEmptyCart),
		errors.Is(err, commands.ErrUsernameTaken),
		errors.Is(err, commands.ErrNotShopOwner),
		errors.Is(err, commands.ErrNotAShipper):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
