package cli

import (
	"fmt"
	"strings"

	"github.com/saylorsolutions/multilevelcli/typespec"
)

var groupClosers = map[byte]byte{'[': ']', '{': '}'}

// Split breaks a whole command line into raw tokens with grouping, quoting, and escaping
// support. A balanced bracket/brace group is always one token, spaces included, so
// "info [6, 9] --cred { user = me }" splits into four tokens. Quoted text ('...' or
// "...") is one token outside groups, and a backslash keeps the next character literal.
//
// Unbalanced groups or quoting fail with [typespec.ErrMalformed].
func Split(line string) ([]string, error) {
	var (
		tokens []string
		buf    strings.Builder
		groups []byte // pending close delimiters, one per open group
		quote  byte
		escape bool
	)
	flush := func() {
		token := strings.TrimSpace(buf.String())
		if len(token) > 0 {
			tokens = append(tokens, token)
		}
		buf.Reset()
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escape:
			buf.WriteByte(c)
			escape = false
		case c == '\\':
			buf.WriteByte(c)
			escape = true
		case (c == '\'' || c == '"') && len(groups) == 0:
			// quote toggling only applies outside groups; the literal parser
			// handles quoting within them
			if quote == c {
				quote = 0
			} else if quote == 0 {
				quote = c
			}
			buf.WriteByte(c)
		case quote != 0:
			buf.WriteByte(c)
		case c == '[' || c == '{':
			groups = append(groups, groupClosers[c])
			buf.WriteByte(c)
		case len(groups) > 0 && c == groups[len(groups)-1]:
			groups = groups[:len(groups)-1]
			buf.WriteByte(c)
		case len(groups) == 0 && (c == ' ' || c == '\t' || c == '\n' || c == '\r'):
			flush()
		default:
			buf.WriteByte(c)
		}
	}
	flush()
	if len(groups) > 0 {
		return nil, fmt.Errorf("%w: %q has unbalanced group delimiters", typespec.ErrMalformed, line)
	}
	if quote != 0 {
		return nil, fmt.Errorf("%w: %q has unbalanced quoting", typespec.ErrMalformed, line)
	}
	return tokens, nil
}
