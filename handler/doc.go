// Package handler provides the Handler interface and its built-in
// implementations for dispatching log entries to their destinations.
//
// All handlers are synchronous: a record is formatted and written
// before Handle returns, with no buffering beyond what the underlying
// stream provides. The only blocking concern is the write itself,
// which may stall on a full OS pipe.
//
// Built-in handlers:
//
//   - DualStreamHandler routes records below a WARNING threshold to
//     stdout and everything else to stderr, preserving conventional
//     stream separation so redirecting stdout alone does not swallow
//     errors.
//   - ZapHandler forwards entries into an existing zapcore.Core so a
//     host application's zap pipeline keeps working behind the tree.
//
// DetermineColorEnabled implements the color gate shared by handlers:
// NO_COLOR always suppresses, FORCE_COLOR always forces, and
// otherwise color is used only on an interactive terminal.
package handler
