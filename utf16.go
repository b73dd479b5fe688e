package utf7

import (
	"golang.org/x/text/encoding/unicode"
)

// utf16be converts between UTF-8 and the big-endian UTF-16 code units that
// shift sequence payloads carry. Mailbox names never carry a BOM. The
// encoding itself is stateless and shared; each call constructs its own
// encoder or decoder, which is what keeps Encode and Decode safe to call
// concurrently.
var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
