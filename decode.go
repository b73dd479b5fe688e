package utf7

import (
	"strings"
)

// Decode converts a modified UTF-7 mailbox name back into Unicode text.
// Characters outside "&...-" shift sequences are copied through unchanged,
// the escape "&-" becomes a literal "&", and every other shift sequence has
// its payload decoded from modified Base64 into big-endian UTF-16 code units
// and from there into characters, combining surrogate pairs along the way.
//
// Decode never fails. Recovery from malformed input follows the lenient
// reading described in the package documentation: a missing closing "-" is
// supplied at end of input, a payload containing a symbol outside the
// modified Base64 alphabet decodes to nothing, an unpaired surrogate becomes
// U+FFFD, and a trailing partial code unit is dropped.
func Decode(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); {
		c := s[i]
		if c != '&' {
			out.WriteByte(c)
			i++
			continue
		}

		var payload string
		if end := strings.IndexByte(s[i+1:], '-'); end >= 0 {
			payload = s[i+1 : i+1+end]
			i += end + 2
		} else {
			// Unterminated shift sequence. Decode the remainder as though
			// the terminator appeared at end of input.
			payload = s[i+1:]
			i = len(s)
		}

		if payload == "" {
			out.WriteByte('&')
			continue
		}
		out.WriteString(decodePayload(payload))
	}

	return out.String()
}

// decodePayload converts one shift sequence payload, minus its "&" and "-"
// delimiters, into Unicode text.
func decodePayload(payload string) string {
	units, err := modifiedBase64.DecodeString(payload)
	if err != nil {
		// Not modified Base64 at all. A corrupt payload contributes nothing.
		return ""
	}

	// A final odd byte cannot complete a 16-bit code unit and carries only
	// the zero bits that padded the last Base64 group.
	units = units[:len(units)&^1]

	decoded, err := utf16be.NewDecoder().Bytes(units)
	if err != nil {
		return ""
	}
	return string(decoded)
}
