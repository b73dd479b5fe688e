package utf7

import (
	"encoding/base64"
)

// ModifiedBase64Alphabet is the 64-symbol alphabet used inside shift
// sequences. It differs from the standard Base64 alphabet only in the final
// symbol, "," in place of "/", because "/" is the conventional IMAP mailbox
// hierarchy delimiter.
const ModifiedBase64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+,"

// modifiedBase64 encodes and decodes shift sequence payloads. Modified UTF-7
// never pads; the closing "-" of the shift sequence marks the end of the
// payload instead.
var modifiedBase64 = base64.NewEncoding(ModifiedBase64Alphabet).WithPadding(base64.NoPadding)
