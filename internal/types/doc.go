// Package types provides shared data structures for the utilkit backend.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool definition
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - DiscoverRequest, ExecuteRequest: generic service access
//
// Evaluator form input lives in the presentation package.
package types
