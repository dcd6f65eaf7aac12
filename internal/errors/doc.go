// Package errors provides structured errors for the sheet editor.
//
// Every error carries a Code, a user-facing message, an optional cause and
// optional metadata. The CLI shell and any other front end report these as
// recoverable notifications; none of them end the editing session.
//
// # Basic Usage
//
//	err := errors.NotFound("sheet not found").WithMeta("location", path)
//
//	if err := repo.Put(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save sheet")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // offer Save-As instead
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("location", input.Location, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer Guidelines
//
// Repositories return NotFound for missing sheets and wrap storage failures
// with context. Orchestrators validate inputs (InvalidArgument) and check
// preconditions such as a sheet having a save location (FailedPrecondition).
// Malformed field values are never errors: they degrade to defaults.
package errors
