package utf7_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	utf7 "github.com/zostay/go-imap-utf7"
)

func TestDecodeASCII(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", utf7.Decode(""))
	assert.Equal(t, "Hello", utf7.Decode("Hello"))

	// Anything without an ampersand passes through untouched.
	assert.Equal(t, "INBOX.Sent Messages", utf7.Decode("INBOX.Sent Messages"))
	assert.Equal(t, "~peter/mail/\\work", utf7.Decode("~peter/mail/\\work"))
}

func TestDecodeShifted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Отправленные", utf7.Decode("&BB4EQgQ,BEAEMAQyBDsENQQ9BD0ESwQ1-"))
	assert.Equal(t, "日本語", utf7.Decode("&ZeVnLIqe-"))
	assert.Equal(t, "ä", utf7.Decode("&AOQ-"))
	assert.Equal(t, "a Отправленные b", utf7.Decode("a &BB4EQgQ,BEAEMAQyBDsENQQ9BD0ESwQ1- b"))
}

func TestDecodeAmpersand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&", utf7.Decode("&-"))
	assert.Equal(t, "&&", utf7.Decode("&-&-"))
	assert.Equal(t, "a&b", utf7.Decode("a&-b"))
	assert.Equal(t, "日&本", utf7.Decode("&ZeUAJmcs-"))
}

func TestDecodeSupplementary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "😀", utf7.Decode("&2D3eAA-"))
}

func TestDecodeUnterminated(t *testing.T) {
	t.Parallel()

	// End of input acts as an implicit terminator.
	assert.Equal(t, "Отправленные", utf7.Decode("&BB4EQgQ,BEAEMAQyBDsENQQ9BD0ESwQ1"))
	assert.Equal(t, "日本語", utf7.Decode("&ZeVnLIqe"))
	assert.Equal(t, "&", utf7.Decode("&"))
	assert.Equal(t, "ab&", utf7.Decode("ab&"))
}

func TestDecodeBadPayload(t *testing.T) {
	t.Parallel()

	// A payload with a symbol outside the modified Base64 alphabet
	// contributes nothing, and decoding continues after the sequence.
	assert.Equal(t, "xy", utf7.Decode("x&f*o-y"))
	assert.Equal(t, "xy", utf7.Decode("x&ZeVnL/qe-y"))

	// A payload that leaves a dangling Base64 group decodes to nothing.
	assert.Equal(t, "", utf7.Decode("&B-"))

	// A payload whose bytes end mid code unit drops the partial unit.
	assert.Equal(t, "", utf7.Decode("&AA-"))
	assert.Equal(t, "xy", utf7.Decode("x&AA-y"))
}

func TestDecodeUnpairedSurrogate(t *testing.T) {
	t.Parallel()

	// A high surrogate with no partner becomes the replacement character.
	assert.Equal(t, "�", utf7.Decode("&2D0-"))
}
