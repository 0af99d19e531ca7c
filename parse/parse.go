package parse

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/valveflow/core"
)

var lineRE = regexp.MustCompile(
	`^(?:Valve\s+)?(\S+)\s+has flow rate=(-?\d+);\s*tunnels?\s+leads?\s+to\s+valves?\s+(.+)$`,
)

// definition is one matched line awaiting the tunnel phase.
type definition struct {
	line    int
	text    string
	id      string
	tunnels []string
}

// String parses a valve description held in memory.
func String(s string) (*core.Graph, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a valve description and returns the corresponding graph.
//
// Errors: a *ParseError for any malformed line, duplicate valve, self
// tunnel, tunnel to an undefined valve, or empty input; read errors from r
// are returned unwrapped.
func Parse(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	defs := make([]definition, 0, 64)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		def, rate, err := matchLine(lineNo, text)
		if err != nil {
			return nil, err
		}
		if err = g.AddVertex(def.id, rate); err != nil {
			reason := "invalid valve"
			if errors.Is(err, core.ErrDuplicateVertex) {
				reason = "duplicate valve " + def.id
			}
			return nil, &ParseError{Line: lineNo, Text: text, Reason: reason, Err: err}
		}
		defs = append(defs, def)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, &ParseError{Reason: "no valves defined"}
	}

	for _, def := range defs {
		for _, to := range def.tunnels {
			if err := g.AddEdge(def.id, to); err != nil {
				reason := "invalid tunnel to " + to
				switch {
				case errors.Is(err, core.ErrVertexNotFound):
					reason = "tunnel to undefined valve " + to
				case errors.Is(err, core.ErrLoopNotAllowed):
					reason = "tunnel from " + to + " to itself"
				}
				return nil, &ParseError{Line: def.line, Text: def.text, Reason: reason, Err: err}
			}
		}
	}

	return g, nil
}

// matchLine applies the grammar to a single non-blank line.
func matchLine(lineNo int, text string) (definition, int, error) {
	m := lineRE.FindStringSubmatch(text)
	if m == nil {
		return definition{}, 0, &ParseError{Line: lineNo, Text: text, Reason: "does not match valve grammar"}
	}
	rate, err := strconv.Atoi(m[2])
	if err != nil {
		return definition{}, 0, &ParseError{Line: lineNo, Text: text, Reason: "bad flow rate", Err: err}
	}
	if rate < 0 {
		return definition{}, 0, &ParseError{Line: lineNo, Text: text, Reason: "negative flow rate", Err: core.ErrNegativeRate}
	}

	parts := strings.Split(m[3], ",")
	tunnels := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || strings.ContainsAny(p, " \t") {
			return definition{}, 0, &ParseError{Line: lineNo, Text: text, Reason: "malformed tunnel list"}
		}
		tunnels = append(tunnels, p)
	}

	return definition{line: lineNo, text: text, id: m[1], tunnels: tunnels}, rate, nil
}
