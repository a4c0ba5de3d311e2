// Package pipeline runs actions: immutable bundles of validation,
// authorization and execution stages executed inside one transaction.
//
// Two flavors exist. Service actions run Validate, Authorize and Execute on
// behalf of a caller; background actions skip Authorize and run work that was
// authorized upstream, typically follow-up items pulled from a task queue.
// Either flavor may be built as a task action, whose Execute stage queues
// follow-up work that the Controller submits to a task handler after the
// transaction commits.
//
//	list := pipeline.NewServiceAction("getGalleryItems",
//	    pipeline.ValidateFunc(validateQuery),
//	    pipeline.AuthorizeFunc(requirePrincipal),
//	    pipeline.ExecuteFunc(listItems),
//	    pipeline.WithReadOnly(),
//	)
//
//	result, err := controller.Execute(appctx.New(ctx, query, appctx.WithPrincipal(p)), list)
//
// Every error returned by the Controller is a *domain.ValidationError,
// *domain.AuthorizationError, *domain.ExecutionError or *domain.GeneralError.
package pipeline
