// Package errors provides the structured error type shared by the map
// generators, the run orchestrator, the run store and the CLI.
//
// An Error carries a Code, a user-facing Message, an optional Cause, an
// optional Reason used for sentinel matching, and free-form metadata.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("generator not found")
//	err := errors.InvalidArgumentf("seed count must be positive: %d", n)
//
// Adding metadata:
//
//	err := errors.NotFound("run not found").
//	    WithMeta("run_id", runID)
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to store run")
//	}
//
// # Sentinels
//
// Errors built with a Reason match each other through errors.Is, so a caller
// can test for a specific failure without comparing messages:
//
//	if errors.Is(err, errors.ErrPlacementNotFound) {
//	    // fall back to another prefab
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("generator", input.Generator, vb)
//	errors.ValidateRange("seeds", len(input.Seeds), 1, 64, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Generators:
//   - Return FailedPrecondition when the grid cannot support the request
//     (no walkable cell to anchor a start point)
//   - Return ErrPlacementNotFound when a bounded search gives up
//
// Repository layer:
//   - Return NotFound for missing or expired runs
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap generator and repository errors with business context
package errors
