// Package runtime holds the process-level collaborators of the contract
// package: the external error reporter, the production-mode switch that
// redacts stack traces, and the process termination primitive.
package runtime
