package schedule

import (
	"fmt"
	"strings"
)

// FormatAction renders a using valve names, e.g. "travelling(AA→DD,2)".
func (p *Problem) FormatAction(a Action) string {
	switch a.Kind {
	case Travelling:
		return fmt.Sprintf("%s(%s→%s,%d)", a.Kind, p.sites[a.At], p.sites[a.To], a.Remaining)
	default:
		return fmt.Sprintf("%s(%s)", a.Kind, p.sites[a.At])
	}
}

// Format renders s on one line for logs and diagnostics.
func (p *Problem) Format(s State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "t=%d/%d rate=%d released=%d open=[%s] agents=[",
		s.Time, p.maxTime, s.Rate, s.Released, strings.Join(p.OpenNames(s.Open), " "))
	for i, a := range s.Actions {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.FormatAction(a))
	}
	sb.WriteByte(']')

	return sb.String()
}
