// Package parse turns the textual valve description into a core.Graph.
//
// Grammar (one valve per line, blank lines ignored):
//
//	[Valve ]<id> has flow rate=<rate>; tunnel(s) lead(s) to valve(s) <id>[, <id>...]
//
// Both the singular ("tunnel leads to valve") and plural forms are accepted,
// in any mix. Parsing is two-phase: every line is matched first and every
// valve registered, then tunnels are added, so a tunnel may reference a valve
// defined further down. A tunnel to a valve that is never defined is an
// error.
//
// Every failure is a *ParseError carrying the 1-based line number and the
// offending text; it unwraps to ErrSyntax so callers can test with errors.Is.
package parse
