// Package errors is the error taxonomy shared by the fetch client and the
// aggregation engines.
//
// Every failure carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. The fetch client produces four kinds the engines branch on:
//
//	errors.NotFoundf("pokemon %q not found", id).WithMeta("status", 404)
//	errors.Unavailablef("fetching %s", link)        // transport failure
//	errors.DeadlineExceededf("fetching %s", link)   // per-fetch timeout
//	errors.PartialResolutionf("species %s", name)   // one member of a batch
//
// KindOf maps any error onto that taxonomy. Engines surface only
// GetMessage(err) to their callers; codes stay internal.
//
// # Wrapping
//
// Wrap keeps the code of an existing *Error and adds context:
//
//	if err := c.getByLink(ctx, link, &raw); err != nil {
//	    return nil, errors.Wrapf(err, "evolution chain %s", link)
//	}
//
// # gRPC
//
// ToGRPCError converts at the handler boundary. Meta is carried as a
// structpb.Struct detail and FromGRPCError restores it on the client side.
//
// # Validation
//
// Config and input structs validate through ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("BaseURL", cfg.BaseURL, vb)
//	errors.ValidateRange("PageSize", cfg.PageSize, 1, 500, vb)
//	return vb.Build()
package errors
