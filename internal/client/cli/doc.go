// Package cli implements the interactive REPL front end of userkeeper.
//
// The REPL is a thin caller of the user store: it reads intents, forwards
// them to services.UserService and renders the returned values. Validation
// errors are printed next to the offending field name; persistence failures
// come back as plain error messages. No store error terminates the loop.
package cli
