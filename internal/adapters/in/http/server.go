// Package http exposes the application over a JSON API. Handlers are thin:
// they bind and validate the wire format, resolve the bearer token, and
// delegate every decision to the command and query handlers.
package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/auth"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the HTTP routes to the application use cases.
type Server struct {
	tokens    *auth.TokenIssuer
	documents ports.DocumentStore

	registerUserHandler    commands.RegisterUserCommandHandler
	registerCourierHandler commands.RegisterCourierCommandHandler
	setAvailabilityHandler commands.SetAvailabilityCommandHandler
	approveCourierHandler  commands.ApproveCourierCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	acceptOrderHandler     commands.AcceptOrderCommandHandler
	assignOrderHandler     commands.AssignOrderCommandHandler
	editOrderHandler       commands.EditOrderCommandHandler
	setOrderStatusHandler  commands.SetOrderStatusCommandHandler

	loginHandler              queries.LoginQueryHandler
	getOrdersHandler          queries.GetOrdersQueryHandler
	getCouriersHandler        queries.GetCouriersQueryHandler
	getAllCouriersHandler     queries.GetAllCouriersQueryHandler
	getPendingCouriersHandler queries.GetPendingCouriersQueryHandler
}

// Dependencies collects everything the server needs.
type Dependencies struct {
	Tokens    *auth.TokenIssuer
	Documents ports.DocumentStore

	RegisterUser    commands.RegisterUserCommandHandler
	RegisterCourier commands.RegisterCourierCommandHandler
	SetAvailability commands.SetAvailabilityCommandHandler
	ApproveCourier  commands.ApproveCourierCommandHandler
	CreateOrder     commands.CreateOrderCommandHandler
	AcceptOrder     commands.AcceptOrderCommandHandler
	AssignOrder     commands.AssignOrderCommandHandler
	EditOrder       commands.EditOrderCommandHandler
	SetOrderStatus  commands.SetOrderStatusCommandHandler

	Login              queries.LoginQueryHandler
	GetOrders          queries.GetOrdersQueryHandler
	GetCouriers        queries.GetCouriersQueryHandler
	GetAllCouriers     queries.GetAllCouriersQueryHandler
	GetPendingCouriers queries.GetPendingCouriersQueryHandler
}

// NewServer creates the HTTP server.
func NewServer(deps Dependencies) *Server {
	return &Server{
		tokens:                    deps.Tokens,
		documents:                 deps.Documents,
		registerUserHandler:       deps.RegisterUser,
		registerCourierHandler:    deps.RegisterCourier,
		setAvailabilityHandler:    deps.SetAvailability,
		approveCourierHandler:     deps.ApproveCourier,
		createOrderHandler:        deps.CreateOrder,
		acceptOrderHandler:        deps.AcceptOrder,
		assignOrderHandler:        deps.AssignOrder,
		editOrderHandler:          deps.EditOrder,
		setOrderStatusHandler:     deps.SetOrderStatus,
		loginHandler:              deps.Login,
		getOrdersHandler:          deps.GetOrders,
		getCouriersHandler:        deps.GetCouriers,
		getAllCouriersHandler:     deps.GetAllCouriers,
		getPendingCouriersHandler: deps.GetPendingCouriers,
	}
}

// RegisterRoutes attaches every route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/users", s.RegisterUser)
	e.POST("/users/courier", s.RegisterCourier)
	e.POST("/login/:role", s.Login)

	e.GET("/couriers", s.GetCouriers)
	e.PUT("/couriers/:id/availability", s.SetAvailability)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.GetOrders)
	e.PUT("/orders/:id/accept", s.AcceptOrder)
	e.PUT("/orders/:id/assign", s.AssignOrder)
	e.PUT("/orders/:id/status", s.SetOrderStatus)
	e.PUT("/orders/:id", s.EditOrder)

	e.GET("/admin/couriers", s.GetAllCouriers)
	e.GET("/admin/couriers/pending", s.GetPendingCouriers)
	e.PUT("/admin/couriers/:id/approval", s.ApproveCourier)

	e.GET("/images/:key", s.GetImage)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterUser handles POST /users. The courier role is rejected here;
// couriers register through POST /users/courier with their documents.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request RegisterUserRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	if request.Role == "" {
		request.Role = user.RoleCustomer.String()
	}
	role, err := user.RoleFromString(request.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(
		request.Login, request.Email, request.Phone, request.Password, role)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userToResponse(created))
}

// RegisterCourier handles POST /users/courier. Expects a multipart form with
// the credential fields plus the three document images.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	addressProof, closeAddressProof, err := formUpload(ctx, "address_proof")
	if err != nil {
		return writeError(ctx, err)
	}
	defer closeAddressProof()

	vehicleDoc, closeVehicleDoc, err := formUpload(ctx, "vehicle_doc")
	if err != nil {
		return writeError(ctx, err)
	}
	defer closeVehicleDoc()

	idPhoto, closeIDPhoto, err := formUpload(ctx, "id_photo")
	if err != nil {
		return writeError(ctx, err)
	}
	defer closeIDPhoto()

	cmd, err := commands.NewRegisterCourierCommand(
		ctx.FormValue("login"),
		ctx.FormValue("email"),
		ctx.FormValue("phone"),
		ctx.FormValue("password"),
		addressProof,
		vehicleDoc,
		idPhoto,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.registerCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, userToResponse(created))
}

// Login handles POST /login/:role. The role in the path selects the login
// surface; an account only authenticates through its own role's path.
func (s *Server) Login(ctx echo.Context) error {
	role, err := user.RoleFromString(ctx.Param("role"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	query, err := queries.NewLoginQuery(request.Email, request.Password, role)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:  response.Token,
		UserID: response.UserID.String(),
		Login:  response.Login,
		Email:  response.Email,
		Role:   response.Role.String(),
	})
}

// GetCouriers handles GET /couriers. Supports email and available filters.
func (s *Server) GetCouriers(ctx echo.Context) error {
	availableOnly := ctx.QueryParam("available") == "true"
	query := queries.NewGetCouriersQuery(ctx.QueryParam("email"), availableOnly)

	couriers, err := s.getCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CourierResponse, len(couriers))
	for i, row := range couriers {
		response[i] = courierToResponse(row)
	}
	return ctx.JSON(http.StatusOK, response)
}

// SetAvailability handles PUT /couriers/:id/availability.
func (s *Server) SetAvailability(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request SetAvailabilityRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetAvailabilityCommand(principal.UserID, courierID, request.Available)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userToResponse(updated))
}

// CreateOrder handles POST /orders. The authenticated caller becomes the
// order's owner.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(
		principal.UserID,
		request.Code,
		request.ObjectType,
		request.Company,
		request.Address,
		request.Notes,
		request.MobileDelivery,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetOrders handles GET /orders. Customers see their own orders and
// couriers their assigned ones; managers and admins may filter freely via
// the customer_id and courier_id query parameters. With available_only=true
// the listing switches to the pool of orders a courier could self-accept,
// regardless of who asks.
func (s *Server) GetOrders(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	// Couriers stay pinned to their own courier_id, but the query drops
	// that filter under available_only, so the pool stays browsable.
	availableOnly := ctx.QueryParam("available_only") == "true"

	var customerID, courierID *kernel.UUID
	switch principal.Role {
	case user.RoleCustomer:
		customerID = &principal.UserID
	case user.RoleCourier:
		courierID = &principal.UserID
	default:
		if raw := ctx.QueryParam("customer_id"); raw != "" {
			id, idErr := kernel.UUIDFromString(raw)
			if idErr != nil {
				return writeError(ctx, idErr)
			}
			customerID = &id
		}
		if raw := ctx.QueryParam("courier_id"); raw != "" {
			id, idErr := kernel.UUIDFromString(raw)
			if idErr != nil {
				return writeError(ctx, idErr)
			}
			courierID = &id
		}
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(customerID, courierID, status, availableOnly)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, row := range orders {
		response[i] = orderRowToResponse(row)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AcceptOrder handles PUT /orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(principal.UserID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	accepted, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(accepted))
}

// AssignOrder handles PUT /orders/:id/assign.
func (s *Server) AssignOrder(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request AssignOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("courier_id", err))
	}

	cmd, err := commands.NewAssignOrderCommand(principal.UserID, orderID, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	assigned, err := s.assignOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(assigned))
}

// EditOrder handles PUT /orders/:id.
func (s *Server) EditOrder(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request EditOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewEditOrderCommand(principal.UserID, orderID, order.FieldChanges{
		Code:       request.Code,
		ObjectType: request.ObjectType,
		Company:    request.Company,
		Address:    request.Address,
		Notes:      request.Notes,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	edited, err := s.editOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(edited))
}

// SetOrderStatus handles PUT /orders/:id/status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request SetOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(principal.UserID, orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	moved, err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(moved))
}

// GetAllCouriers handles GET /admin/couriers, the overview of every courier
// account regardless of status.
func (s *Server) GetAllCouriers(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if principal.Role != user.RoleAdmin {
		return writeError(ctx, errs.NewAccessForbiddenError("operation requires the admin role"))
	}

	couriers, err := s.getAllCouriersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AdminCourierResponse, len(couriers))
	for i, row := range couriers {
		response[i] = adminCourierToResponse(row)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPendingCouriers handles GET /admin/couriers/pending. The token gate here only
// keeps obvious non-admins out; the approval command itself re-checks the
// admin's account state.
func (s *Server) GetPendingCouriers(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if principal.Role != user.RoleAdmin {
		return writeError(ctx, errs.NewAccessForbiddenError("operation requires the admin role"))
	}

	couriers, err := s.getPendingCouriersHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingCouriersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PendingCourierResponse, len(couriers))
	for i, row := range couriers {
		response[i] = pendingCourierToResponse(row)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ApproveCourier handles PUT /admin/couriers/:id/approval.
func (s *Server) ApproveCourier(ctx echo.Context) error {
	principal, err := s.principal(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request ApproveCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewApproveCourierCommand(
		principal.UserID, courierID, request.Approved, request.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.approveCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userToResponse(updated))
}

// GetImage handles GET /images/:key, streaming a stored document image.
// Keys are immutable once written, so responses are cached for a year.
func (s *Server) GetImage(ctx echo.Context) error {
	key := ctx.Param("key")
	if key == "" {
		return writeBadRequest(ctx, "image key is required")
	}

	document, err := s.documents.Get(ctx.Request().Context(), key)
	if err != nil {
		return writeError(ctx, err)
	}
	defer document.Body.Close()

	ctx.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	return ctx.Stream(http.StatusOK, document.ContentType, document.Body)
}

// formUpload opens one uploaded file from the multipart form. The returned
// closer must run after the command handler consumed the body.
func formUpload(ctx echo.Context, field string) (commands.DocumentUpload, func(), error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return commands.DocumentUpload{}, nil,
			errs.NewValueIsRequiredErrorWithCause(field+" image", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return commands.DocumentUpload{}, nil,
			errs.NewValueIsInvalidErrorWithCause(field+" image", err)
	}

	upload := commands.DocumentUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        file,
	}
	return upload, func() { _ = file.Close() }, nil
}
