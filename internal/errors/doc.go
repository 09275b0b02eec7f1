// Package errors provides the structured error type used throughout special-api.
//
// Errors carry a Code, a message, an optional cause and metadata:
//
//	err := errors.NotFoundf("actor %s not found", id)
//	err := errors.OutOfRangef("hit points %g exceed maximum %g", value, max)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load actor")
//	}
//
// Field validation is collected with a ValidationBuilder, which builds an
// InvalidArgument error carrying every message under MetaValidationErrors:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", actor.Name, vb)
//	errors.ValidateRange("leveling.specials.luck", points, 1, 10, vb)
//	return vb.Build()
//
// Handlers convert with ToGRPCError; validation messages are attached as a
// google.rpc.BadRequest detail so clients can recover them with FromGRPCError.
package errors
