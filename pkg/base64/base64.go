package base64

import "fmt"

// Variant selects the alphabet and padding rules.
type Variant int

const (
	// Standard uses "+" and "/" and pads output with "=".
	Standard Variant = iota
	// URLSafe uses "-" and "_" and never pads output.
	URLSafe
)

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case URLSafe:
		return "url-safe"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Valid reports whether v is one of the known variants.
func (v Variant) Valid() bool {
	return v == Standard || v == URLSafe
}

func (v Variant) alphabet() string {
	if v == URLSafe {
		return urlAlphabet
	}
	return stdAlphabet
}

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	padChar = '='
)

// sextet is a reverse table entry. ok is false for bytes outside both
// alphabets.
type sextet struct {
	value byte
	ok    bool
}

// reverse maps every byte to its 6-bit value in the union of both
// alphabets. Variant exclusivity is enforced by Decode.
var reverse = func() (t [256]sextet) {
	for i := 0; i < 64; i++ {
		t[stdAlphabet[i]] = sextet{value: byte(i), ok: true}
		t[urlAlphabet[i]] = sextet{value: byte(i), ok: true}
	}
	return t
}()

// EncodedLen returns the length of the text Encode produces for n input
// bytes.
func EncodedLen(n int, v Variant) int {
	if v == URLSafe {
		return (n*8 + 5) / 6
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum number of bytes Decode produces for n
// characters of input.
func DecodedLen(n int, v Variant) int {
	if v == URLSafe {
		return n * 6 / 8
	}
	return n / 4 * 3
}

// Encode returns the base64 encoding of src in the given variant.
//
// An empty src is rejected with ErrInvalidInput; callers that need to
// represent zero-length data must handle it themselves.
func Encode(src []byte, v Variant) (string, error) {
	if len(src) == 0 {
		return "", newInputError("input is empty")
	}
	if !v.Valid() {
		return "", newInputError(fmt.Sprintf("unknown variant %v", v))
	}

	alphabet := v.alphabet()
	dst := make([]byte, EncodedLen(len(src), v))

	di, si := 0, 0
	n := len(src) / 3 * 3
	for si < n {
		val := uint(src[si])<<16 | uint(src[si+1])<<8 | uint(src[si+2])

		dst[di+0] = alphabet[val>>18&0x3f]
		dst[di+1] = alphabet[val>>12&0x3f]
		dst[di+2] = alphabet[val>>6&0x3f]
		dst[di+3] = alphabet[val&0x3f]

		si += 3
		di += 4
	}

	switch len(src) - si {
	case 1:
		val := uint(src[si]) << 16
		dst[di+0] = alphabet[val>>18&0x3f]
		dst[di+1] = alphabet[val>>12&0x3f]
		if v == Standard {
			dst[di+2] = padChar
			dst[di+3] = padChar
		}
	case 2:
		val := uint(src[si])<<16 | uint(src[si+1])<<8
		dst[di+0] = alphabet[val>>18&0x3f]
		dst[di+1] = alphabet[val>>12&0x3f]
		dst[di+2] = alphabet[val>>6&0x3f]
		if v == Standard {
			dst[di+3] = padChar
		}
	}

	return string(dst), nil
}

// Decode returns the bytes represented by the base64 text s in the given
// variant.
//
// Standard input must be a multiple of four characters long; URLSafe
// input may be unpadded. Decoding stops at the first "=". A character
// that belongs only to the other variant's alphabet is rejected.
func Decode(s string, v Variant) ([]byte, error) {
	if len(s) == 0 {
		return nil, newInputError("input is empty")
	}
	if !v.Valid() {
		return nil, newInputError(fmt.Sprintf("unknown variant %v", v))
	}
	if v == Standard && len(s)%4 != 0 {
		return nil, newInputError("input length is not a multiple of 4")
	}

	dst := make([]byte, DecodedLen(len(s), v)+3)

	var (
		packed uint32
		shift  int
		n      int
	)

scan:
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case padChar:
			break scan
		case '+', '/':
			if v != Standard {
				return nil, newCharError(c, i)
			}
		case '-', '_':
			if v != URLSafe {
				return nil, newCharError(c, i)
			}
		}

		e := reverse[c]
		if !e.ok {
			return nil, newCharError(c, i)
		}

		packed |= uint32(e.value) << (18 - 6*shift)
		shift++

		if shift == 4 {
			dst[n+0] = byte(packed >> 16)
			dst[n+1] = byte(packed >> 8)
			dst[n+2] = byte(packed)
			n += 3
			packed, shift = 0, 0
		}
	}

	switch shift {
	case 0:
	case 2:
		dst[n] = byte(packed >> 16)
		n++
	case 3:
		dst[n+0] = byte(packed >> 16)
		dst[n+1] = byte(packed >> 8)
		n += 2
	default:
		// 1 sextet cannot hold a byte; 4 is flushed inside the loop.
		return nil, newInputError("invalid shift value")
	}

	return dst[:n:n], nil
}

// EncodeURL returns the unpadded base64url encoding of src, as used for
// each segment of a JOSE compact serialization (RFC 7515 Section 2).
func EncodeURL(src []byte) (string, error) {
	return Encode(src, URLSafe)
}

// DecodeURL is the inverse of EncodeURL.
func DecodeURL(s string) ([]byte, error) {
	return Decode(s, URLSafe)
}

// MustEncode is like Encode but panics if src cannot be encoded.
func MustEncode(src []byte, v Variant) string {
	s, err := Encode(src, v)
	if err != nil {
		panic(err)
	}
	return s
}
