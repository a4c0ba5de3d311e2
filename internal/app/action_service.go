// Package app provides application services that resolve inbound requests to
// registered actions and run them through the pipeline controller.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/action-pipeline/internal/app/context"
	"github.com/jsamuelsen11/action-pipeline/internal/app/pipeline"
	"github.com/jsamuelsen11/action-pipeline/internal/domain"
	"github.com/jsamuelsen11/action-pipeline/internal/ports"
)

// Compile-time checks that ActionService implements both inbound ports.
var (
	_ ports.ActionService      = (*ActionService)(nil)
	_ ports.BackgroundExecutor = (*ActionService)(nil)
)

const msgPrincipal = "error occurred resolving principal"

// ActionService implements ports.ActionService for the request path and
// ports.BackgroundExecutor for the worker. It looks actions up in the
// registry, decodes their parameters, resolves the caller and hands the
// invocation to the controller. It contains no business logic.
type ActionService struct {
	registry   *Registry
	controller *pipeline.Controller
	principals ports.PrincipalSource
	logger     *slog.Logger
}

// NewActionService creates an ActionService. A nil logger discards output.
func NewActionService(
	registry *Registry,
	controller *pipeline.Controller,
	principals ports.PrincipalSource,
	logger *slog.Logger,
) *ActionService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ActionService{
		registry:   registry,
		controller: controller,
		principals: principals,
		logger:     logger,
	}
}

// Execute runs the service action registered under req.Action on behalf of
// the account in req.AccountID.
func (s *ActionService) Execute(ctx context.Context, req ports.ActionRequest) (any, error) {
	s.logger.InfoContext(ctx, "executing action",
		slog.String("action", req.Action),
		slog.String("client_id", req.ClientID),
	)

	// Background actions are invisible to callers.
	e, ok := s.registry.lookup(req.Action)
	if !ok || e.flavor() != pipeline.FlavorService {
		return nil, fmt.Errorf("action %q: %w", req.Action, domain.ErrNotFound)
	}

	params, err := e.decode(req.Params)
	if err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"params": "must be a valid JSON object for " + req.Action + ": " + err.Error(),
		}}
	}

	principal, err := s.principal(ctx, req.Action, req.AccountID)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, &domain.AuthorizationError{Reason: "caller identity required"}
	}

	ac := appctx.New(ctx, params,
		appctx.WithPrincipal(principal),
		appctx.WithClientID(req.ClientID),
		appctx.WithActionID(req.Action),
	)
	return e.run(s.controller, ac)
}

// ExecuteBackground runs the background action named by req.Action. The
// principal is resolved when the item carries an account id.
func (s *ActionService) ExecuteBackground(ctx context.Context, req domain.UserActionRequest) (any, error) {
	s.logger.DebugContext(ctx, "executing background action",
		slog.String("action", req.Action),
		slog.String("request_id", req.ID),
	)

	e, ok := s.registry.lookup(req.Action)
	if !ok {
		return nil, fmt.Errorf("action %q: %w", req.Action, domain.ErrNotFound)
	}
	if e.flavor() != pipeline.FlavorBackground {
		return nil, domain.NewGeneralError("action "+req.Action+" cannot run in the background", nil)
	}

	params, err := e.decode(req.Params)
	if err != nil {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"params": "must be a valid JSON object for " + req.Action + ": " + err.Error(),
		}}
	}

	principal, err := s.principal(ctx, req.Action, req.AccountID)
	if err != nil {
		return nil, err
	}

	ac := appctx.New(ctx, params,
		appctx.WithPrincipal(principal),
		appctx.WithActionID(req.Action),
	)
	return e.run(s.controller, ac)
}

// Actions lists the service actions callers may run, sorted by key.
func (s *ActionService) Actions() []ports.ActionInfo {
	return s.registry.List(pipeline.FlavorService)
}

// principal resolves accountID. An empty id yields a nil principal; an
// unknown account is an authorization failure.
func (s *ActionService) principal(ctx context.Context, action, accountID string) (*domain.Principal, error) {
	if accountID == "" {
		return nil, nil
	}

	p, err := s.principals.Principal(ctx, accountID)
	if errors.Is(err, domain.ErrNotFound) {
		s.logger.WarnContext(ctx, "unknown caller account",
			slog.String("action", action),
			slog.String("account_id", accountID),
		)
		return nil, &domain.AuthorizationError{Reason: "unknown account " + accountID}
	}
	if err != nil {
		s.logger.ErrorContext(ctx, msgPrincipal,
			slog.String("operation", "ActionService.principal"),
			slog.String("action", action),
			slog.Any("error", err),
		)
		return nil, domain.NewGeneralError(msgPrincipal, err)
	}
	return p, nil
}
