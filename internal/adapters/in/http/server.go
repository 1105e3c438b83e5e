// Package http exposes the procurement use cases over a JSON API built on
// echo.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/domain/model/rfq"
	"procurement/internal/core/ports"
	"procurement/internal/generated/servers"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/retry"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/samber/lo"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Use case contracts, satisfied by the handlers in the commands and queries
// packages.
type (
	LoginHandler interface {
		Handle(ctx context.Context, cmd commands.LoginCommand) (string, error)
	}
	LogoutHandler interface {
		Handle(ctx context.Context, cmd commands.LogoutCommand) error
	}
	CreatePurchaseOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePurchaseOrderCommand) (string, error)
	}
	TransitionPurchaseOrderHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionPurchaseOrderCommand) (purchaseorder.Status, error)
	}
	PostGoodsReceiptHandler interface {
		Handle(ctx context.Context, cmd commands.PostGoodsReceiptCommand) (commands.ReconcileOutcome, error)
	}
	CancelReceiptLineHandler interface {
		Handle(ctx context.Context, cmd commands.CancelReceiptLineCommand) (commands.ReconcileOutcome, error)
	}
	RecomputeFulfillmentHandler interface {
		Handle(ctx context.Context, cmd commands.RecomputeFulfillmentCommand) (commands.ReconcileOutcome, error)
	}
	CreateRfqHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRfqCommand) (string, error)
	}
	UpdateRfqVendorsHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateRfqVendorsCommand) ([]string, error)
	}
	SendRfqHandler interface {
		Handle(ctx context.Context, cmd commands.SendRfqCommand) (rfq.Status, error)
	}
	TransitionRfqHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionRfqCommand) (rfq.Status, error)
	}
	RespondToRfqHandler interface {
		Handle(ctx context.Context, cmd commands.RespondToRfqCommand) (rfq.VendorStatus, error)
	}
	PurchaseOrderFulfillmentHandler interface {
		Handle(ctx context.Context, query queries.GetPurchaseOrderFulfillmentQuery) (queries.GetPurchaseOrderFulfillmentQueryResponse, error)
	}
	OpenPurchaseOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOpenPurchaseOrdersQuery) ([]queries.GetOpenPurchaseOrdersQueryResponse, error)
	}
)

// Handlers groups every use case the server exposes.
type Handlers struct {
	Login                    LoginHandler
	Logout                   LogoutHandler
	CreatePurchaseOrder      CreatePurchaseOrderHandler
	TransitionPurchaseOrder  TransitionPurchaseOrderHandler
	PostGoodsReceipt         PostGoodsReceiptHandler
	CancelReceiptLine        CancelReceiptLineHandler
	RecomputeFulfillment     RecomputeFulfillmentHandler
	CreateRfq                CreateRfqHandler
	UpdateRfqVendors         UpdateRfqVendorsHandler
	SendRfq                  SendRfqHandler
	TransitionRfq            TransitionRfqHandler
	RespondToRfq             RespondToRfqHandler
	PurchaseOrderFulfillment PurchaseOrderFulfillmentHandler
	OpenPurchaseOrders       OpenPurchaseOrdersHandler
}

// Server implements servers.ServerInterface on top of the application use
// cases. Mutating use cases that fail with lock contention are retried under
// the configured policy before the client sees 503.
//
// Example:
//
//	server := http.NewServer(handlers, registry, activity, retry.DefaultPolicy(), logger)
//	e := http.NewEcho(logger)
//	if err := server.RegisterRoutes(e); err != nil {
//		return err
//	}
type Server struct {
	handlers Handlers
	registry ports.SessionRegistry
	activity ports.SessionActivity
	// policy retries postings that failed on lock contention
	policy retry.Policy
	// now supplies the business date when a request omits it
	now    func() time.Time
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer wires the use case handlers and the session ports into a Server.
// The logger is tagged with component=http.
func NewServer(
	handlers Handlers,
	registry ports.SessionRegistry,
	activity ports.SessionActivity,
	policy retry.Policy,
	logger *slog.Logger,
) *Server {
	return &Server{
		handlers: handlers,
		registry: registry,
		activity: activity,
		policy:   policy,
		now:      time.Now,
		logger:   logger.With("component", "http"),
	}
}

// RegisterRoutes mounts the API described by the embedded document on e,
// together with the swagger UI under /swagger/. Every operation goes through
// the session check, except the ones the document marks public, and then
// through request validation.
func (s *Server) RegisterRoutes(e *echo.Echo) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load api document: %w", err)
	}
	validator, err := RequestValidator(swagger)
	if err != nil {
		return fmt.Errorf("build request validator: %w", err)
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	sessions := SessionMiddleware(s.registry, s.activity, publicSkipper(publicOperations(swagger)))
	servers.RegisterHandlers(e.Group("", sessions, validator), s)
	return nil
}

// retried runs op under the contention retry policy.
func (s *Server) retried(c echo.Context, op func(ctx context.Context) error) error {
	return retry.OnContention(c.Request().Context(), s.policy, op)
}

// Health answers GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// Login answers POST /api/v1/sessions. Unknown users and wrong passwords
// both answer 401 INVALID_CREDENTIALS.
func (s *Server) Login(c echo.Context) error {
	var req servers.LoginJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.UserId, req.Password)
	if err != nil {
		return s.fail(c, err)
	}

	sessionID, err := s.handlers.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrValueIsInvalid) {
			return unauthorized(c, ReasonInvalidCredentials, "unknown user or wrong password")
		}
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, servers.LoginResponse{SessionId: sessionID})
}

// Logout answers DELETE /api/v1/sessions/current.
func (s *Server) Logout(c echo.Context) error {
	cmd, err := commands.NewLogoutCommand(sessionOf(c))
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.Logout.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CreatePurchaseOrder answers POST /api/v1/purchase-orders. The caller
// becomes the controlling user.
func (s *Server) CreatePurchaseOrder(c echo.Context) error {
	var req servers.CreatePurchaseOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	date, err := parseBusinessDate(req.BusinessDate, s.now)
	if err != nil {
		return badRequest(c, "businessDate must be YYYY-MM-DD")
	}

	cmd, err := commands.NewCreatePurchaseOrderCommand(actorOf(c), req.VendorId, date, toLineInputs(req.Lines))
	if err != nil {
		return s.fail(c, err)
	}

	var number string
	err = s.retried(c, func(ctx context.Context) error {
		number, err = s.handlers.CreatePurchaseOrder.Handle(ctx, cmd)
		return err
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, servers.CreatedResponse{Number: number})
}

// TransitionPurchaseOrder answers POST /api/v1/purchase-orders/{number}/transitions.
func (s *Server) TransitionPurchaseOrder(c echo.Context, number servers.Number) error {
	var req servers.TransitionPurchaseOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	next, err := purchaseorder.ParseStatus(string(req.Status))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewTransitionPurchaseOrderCommand(number, next, actorOf(c))
	if err != nil {
		return s.fail(c, err)
	}

	var status purchaseorder.Status
	err = s.retried(c, func(ctx context.Context) error {
		status, err = s.handlers.TransitionPurchaseOrder.Handle(ctx, cmd)
		return err
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, servers.StatusResponse{Number: number, Status: status.String()})
}

// PostGoodsReceipt answers POST /api/v1/purchase-orders/{number}/receipts.
func (s *Server) PostGoodsReceipt(c echo.Context, number servers.Number) error {
	var req servers.PostGoodsReceiptJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	date, err := parseBusinessDate(req.BusinessDate, s.now)
	if err != nil {
		return badRequest(c, "businessDate must be YYYY-MM-DD")
	}

	cmd, err := commands.NewPostGoodsReceiptCommand(number, actorOf(c), date, toLineInputs(req.Lines))
	if err != nil {
		return s.fail(c, err)
	}

	var outcome commands.ReconcileOutcome
	err = s.retried(c, func(ctx context.Context) error {
		outcome, err = s.handlers.PostGoodsReceipt.Handle(ctx, cmd)
		return err
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toReconcileResponse(outcome))
}

// RecomputeFulfillment answers POST /api/v1/purchase-orders/{number}/recompute.
func (s *Server) RecomputeFulfillment(c echo.Context, number servers.Number) error {
	cmd, err := commands.NewRecomputeFulfillmentCommand(number)
	if err != nil {
		return s.fail(c, err)
	}

	var outcome commands.ReconcileOutcome
	err = s.retried(c, func(ctx context.Context) error {
		outcome, err = s.handlers.RecomputeFulfillment.Handle(ctx, cmd)
		return err
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toReconcileResponse(outcome))
}

// CancelReceiptLine answers POST /api/v1/receipts/{number}/lines/{lineId}/cancel.
func (s *Server) CancelReceiptLine(c echo.Context, number servers.Number, lineId openapi_types.UUID) error {
	lineID, err := kernel.UUIDFromBytes(lineId[:])
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("lineId", err))
	}

	cmd, err := commands.NewCancelReceiptLineCommand(number, lineID, actorOf(c))
	if err != nil {
		return s.fail(c, err)
	}

	var outcome commands.ReconcileOutcome
	err = s.retried(c, func(ctx context.Context) error {
		outcome, err = s.handlers.CancelReceiptLine.Handle(ctx, cmd)
		return err
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toReconcileResponse(outcome))
}

// GetPurchaseOrderFulfillment answers GET /api/v1/purchase-orders/{number}/fulfillment.
func (s *Server) GetPurchaseOrderFulfillment(c echo.Context, number servers.Number) error {
	query, err := queries.NewGetPurchaseOrderFulfillmentQuery(number)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.PurchaseOrderFulfillment.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toFulfillmentResponse(view))
}

// GetOpenPurchaseOrders answers GET /api/v1/purchase-orders/open, optionally
// narrowed to one vendor.
func (s *Server) GetOpenPurchaseOrders(c echo.Context, params servers.GetOpenPurchaseOrdersParams) error {
	query := queries.NewGetOpenPurchaseOrdersQuery(lo.FromPtr(params.VendorId))

	orders, err := s.handlers.OpenPurchaseOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOpenPurchaseOrders(orders))
}

// CreateRfq answers POST /api/v1/rfqs. The caller becomes the requester.
func (s *Server) CreateRfq(c echo.Context) error {
	var req servers.CreateRfqJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	date, err := parseBusinessDate(req.BusinessDate, s.now)
	if err != nil {
		return badRequest(c, "businessDate must be YYYY-MM-DD")
	}

	cmd, err := commands.NewCreateRfqCommand(actorOf(c), req.Title, req.VendorIds, date)
	if err != nil {
		return s.fail(c, err)
	}

	var number string
	err = s.retried(c, func(ctx context.Context) error {
		number, err = s.handlers.CreateRfq.Handle(ctx, cmd)
		return err
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, servers.CreatedResponse{Number: number})
}

// UpdateRfqVendors answers PUT /api/v1/rfqs/{number}/vendors.
func (s *Server) UpdateRfqVendors(c echo.Context, number servers.Number) error {
	var req servers.UpdateRfqVendorsJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateRfqVendorsCommand(number, actorOf(c), req.VendorIds)
	if err != nil {
		return s.fail(c, err)
	}

	var vendorIDs []string
	err = s.retried(c, func(ctx context.Context) error {
		vendorIDs, err = s.handlers.UpdateRfqVendors.Handle(ctx, cmd)
		return err
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, servers.VendorsResponse{Number: number, VendorIds: vendorIDs})
}

// SendRfq answers POST /api/v1/rfqs/{number}/send. The body carries the
// vendor list the client last saw.
func (s *Server) SendRfq(c echo.Context, number servers.Number) error {
	var req servers.SendRfqJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSendRfqCommand(number, actorOf(c), req.VendorIds)
	if err != nil {
		return s.fail(c, err)
	}

	var status rfq.Status
	err = s.retried(c, func(ctx context.Context) error {
		status, err = s.handlers.SendRfq.Handle(ctx, cmd)
		return err
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, servers.StatusResponse{Number: number, Status: status.String()})
}

// TransitionRfq answers POST /api/v1/rfqs/{number}/transitions. Selecting a
// vendor needs vendorId in the body.
func (s *Server) TransitionRfq(c echo.Context, number servers.Number) error {
	var req servers.TransitionRfqJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	next, err := rfq.ParseStatus(string(req.Status))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewTransitionRfqCommand(number, actorOf(c), next, lo.FromPtr(req.VendorId))
	if err != nil {
		return s.fail(c, err)
	}

	var status rfq.Status
	err = s.retried(c, func(ctx context.Context) error {
		status, err = s.handlers.TransitionRfq.Handle(ctx, cmd)
		return err
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, servers.StatusResponse{Number: number, Status: status.String()})
}

// RespondToRfq answers POST /api/v1/rfqs/{number}/vendors/{vendorId}/response.
func (s *Server) RespondToRfq(c echo.Context, number servers.Number, vendorId string) error {
	var req servers.RespondToRfqJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	next, err := rfq.ParseVendorStatus(string(req.Status))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRespondToRfqCommand(number, actorOf(c), vendorId, next)
	if err != nil {
		return s.fail(c, err)
	}

	var status rfq.VendorStatus
	err = s.retried(c, func(ctx context.Context) error {
		status, err = s.handlers.RespondToRfq.Handle(ctx, cmd)
		return err
	})
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, servers.StatusResponse{Number: number, Status: status.String()})
}
