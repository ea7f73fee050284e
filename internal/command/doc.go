// Package command is the scaffold's orchestrator. It composes an option
// collection, an argument parser, and an event host around a single
// user-supplied entry point, and sequences them through a fixed lifecycle:
// declare options, register the built-in help flag, parse and populate,
// short-circuit on help, invoke the entry point, shut down. The sequence
// is not overridable; applications customize only the content of their
// options and the body of Main.
//
// Named lifecycle events fire at every stage so listeners can observe a
// run without the application wiring anything by hand.
package command
