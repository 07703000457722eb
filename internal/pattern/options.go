package pattern

import "strings"

// MatchOptions selects the matching semantics for one highlighting request.
// The zero value is case-sensitive, single-line, and '.' does not match '\n'.
type MatchOptions struct {
	IgnoreCase bool `toml:"ignore_case" yaml:"ignore_case" json:"ignore_case"` // case-insensitive matching
	Multiline  bool `toml:"multiline" yaml:"multiline" json:"multiline"`       // ^ and $ also match at line boundaries
	DotAll     bool `toml:"dot_all" yaml:"dot_all" json:"dot_all"`             // . also matches '\n'
}

// Flags returns the inline flag letters for the enabled options, in "ims" order.
func (o MatchOptions) Flags() string {
	var b strings.Builder
	if o.IgnoreCase {
		b.WriteByte('i')
	}
	if o.Multiline {
		b.WriteByte('m')
	}
	if o.DotAll {
		b.WriteByte('s')
	}
	return b.String()
}

// String renders the options as an inline flag group such as "(?im)", or "" when none are set.
func (o MatchOptions) String() string {
	flags := o.Flags()
	if flags == "" {
		return ""
	}
	return "(?" + flags + ")"
}
