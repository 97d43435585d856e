// Package errors provides coded errors for the planner.
//
// Every error carries a Code that survives wrapping, so a repository can
// report NotFound and the CLI can still pick the matching exit status after
// the service and command layers have added their own context:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrapf(err, "failed to load character %s", id)
//	}
//
//	if errors.IsNotFound(err) {
//	    // offer to create it
//	}
//
// Config validation collects every problem before failing:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
package errors
