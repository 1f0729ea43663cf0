// Package logger is the public API of alog. Most users only need to
// import this package.
//
// Loggers form a tree addressed by dot-separated names, with the root
// at "". Nodes are created lazily on first lookup and live for the
// process lifetime in a shared registry. A logger without an explicit
// level inherits from its nearest ancestor that has one; the root
// always has a concrete level, resolved at creation from the
// registered environment variables (LOG_LEVEL by default) and the
// registered default:
//
//	log, _ := logger.GetLogger("app.db")
//	log.Info("connected")
//
// The severity scale is wider than usual — TEST, TRACE, DEBUG, DETAIL,
// INFO, BRIEF, WARNING, ERROR, CRITICAL, SILENT — and open: custom
// levels register with RegisterLevel and resolve by name everywhere a
// level is accepted. Records below WARNING go to stdout, the rest to
// stderr, so redirecting stdout alone never swallows errors.
//
// Hosts that built their own root node can hand it to the tree and
// upgrade it in place:
//
//	reg := logger.Default()
//	reg.Install(myRoot)          // foreign node, name ""
//	root, migrated := reg.Extend() // now a *Logger, state ported
//
// Level checks on the emission path are a couple of atomic loads plus
// at most one ancestor walk, with no locking.
package logger
