// Package utf7 implements the modified UTF-7 encoding that IMAP uses for
// international mailbox names, as defined in RFC 3501 section 5.1.3. This is
// a constrained variant of the UTF-7 of RFC 2152: the shift character is "&"
// rather than "+", the Base64 alphabet substitutes "," for "/", no padding is
// ever written, and printable US-ASCII other than "&" always represents
// itself. The optional direct characters that general UTF-7 permits are not
// honored here because IMAP does not permit them.
//
// The entire public surface is the pair Encode and Decode. Encode is total
// over any Go string and always produces pure ASCII. Decode is deliberately
// permissive about malformed input. Real-world IMAP servers emit some fairly
// creative mailbox names and failing hard on a bad shift sequence mostly just
// means the user cannot see that mailbox at all, so a shift sequence that is
// missing its closing "-" is decoded as if the terminator appeared at the end
// of the input, a payload that is not valid modified Base64 decodes to
// nothing, and a trailing partial UTF-16 code unit is discarded. If you need
// strict validation you should perform it before calling Decode.
//
// Both functions are pure and keep no state between calls, so they may be
// called concurrently without synchronization.
package utf7
