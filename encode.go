package utf7

import (
	"strings"
)

// isDirect reports whether a code point represents itself in modified UTF-7.
// RFC 3501 permits all printable US-ASCII except "&", which is always the
// shift character and so always encodes inside a shift sequence.
func isDirect(r rune) bool {
	return r >= 0x20 && r <= 0x7e && r != '&'
}

// Encode converts a Unicode string into the modified UTF-7 form IMAP expects
// for mailbox names. Printable US-ASCII other than "&" passes through
// unchanged. Each maximal run of anything else, "&" included, becomes a
// single "&...-" shift sequence containing the modified Base64 encoding of
// the run's UTF-16BE code units. A run consisting of a lone "&" becomes the
// shorter escape "&-" that RFC 3501 mandates.
//
// Encode succeeds on every input and the result always decodes back to an
// equivalent string. Bytes that are not valid UTF-8 are carried into the
// shift sequence as U+FFFD, which is the one case where the round trip is
// equivalent rather than identical.
func Encode(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	var run []byte
	flush := func() {
		if len(run) == 0 {
			return
		}
		if len(run) == 1 && run[0] == '&' {
			// The escape is the same shift syntax with an empty payload.
			out.WriteString("&-")
			run = run[:0]
			return
		}

		// The run is built rune by rune, so it is always valid UTF-8, and
		// UTF-16 can represent every Unicode scalar value. The conversion
		// cannot fail.
		units, _ := utf16be.NewEncoder().Bytes(run)

		out.WriteByte('&')
		out.WriteString(modifiedBase64.EncodeToString(units))
		out.WriteByte('-')
		run = run[:0]
	}

	for _, r := range s {
		if isDirect(r) {
			flush()
			out.WriteRune(r)
			continue
		}

		// Invalid input bytes arrive here as RuneError from the range loop
		// and join the run as such.
		run = append(run, string(r)...)
	}
	flush()

	return out.String()
}
