// Package service provides the registry that exposes the evaluators as
// generic, discoverable tools.
//
// Components:
//   - Registry: catalog of providers keyed by service ID
//   - Provider: interface implemented by calculator and formatter
//
// Discovery scores each service against a free-text intent:
//   - service ID or name in the intent
//   - description words present in the intent
//   - capability and tool names present in the intent
//   - category named in the intent
//
// Example Usage:
//
//	registry := service.NewRegistry()
//	registry.Register(calculator.NewProvider(calc))
//	services := registry.Discover("square root of a number", 5)
//	result, err := registry.Execute(ctx, "calculator.sqrt", params, appCtx)
package service
