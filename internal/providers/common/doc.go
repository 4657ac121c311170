// Package common holds helpers shared by the evaluator service providers.
//
// Providers receive loosely typed parameters (decoded JSON) and answer with a
// types.Result envelope. This package covers both sides:
//   - Param extraction: GetNumber and GetNumbers coerce any Go numeric type;
//     GetString accepts strings only
//   - Results: Success, Failure, FailureFrom
//
// Example Usage:
//
//	numbers, ok := common.GetNumbers(params, "numbers")
//	if !ok {
//	    return common.FailureFrom(evalerr.New(evalerr.CodeInvalidArgument, "add", "numbers array required"))
//	}
package common
