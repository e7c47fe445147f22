package jwa

// Algorithm is the value of the "alg" header parameter. For JWE it names
// the key management algorithm, for JWS the signature or MAC algorithm.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.1
// https://datatracker.ietf.org/doc/html/rfc7518#section-4.1
type Algorithm = string

// Encryption is the value of the JWE "enc" header parameter.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-5.1
type Encryption = string

// Key management algorithms.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-4.1
const (
	RSA1_5  Algorithm = "RSA1_5"
	RSAOAEP Algorithm = "RSA-OAEP"
	A128KW  Algorithm = "A128KW"
	A192KW  Algorithm = "A192KW"
	A256KW  Algorithm = "A256KW"
	Direct  Algorithm = "dir"
	ECDHES  Algorithm = "ECDH-ES"
)

// HMAC with SHA-2 Functions
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.2
const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
)

// RSASSA-PKCS1-v1_5
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.3
const (
	RS256 Algorithm = "RS256"
	RS384 Algorithm = "RS384"
	RS512 Algorithm = "RS512"
)

// ECDSA
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.4
const (
	ES256 Algorithm = "ES256"
	ES384 Algorithm = "ES384"
	ES512 Algorithm = "ES512"
)

// RSASSA-PSS
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.5
const (
	PS256 Algorithm = "PS256"
	PS384 Algorithm = "PS384"
	PS512 Algorithm = "PS512"
)

// No signature or MAC performed.
//
// # Warning
//
// Only recognized so headers carrying it can be represented; nothing in
// this module treats it as a valid protection.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.6
const None Algorithm = "none"

// Content encryption algorithms.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-5.1
const (
	A128CBCHS256 Encryption = "A128CBC-HS256"
	A192CBCHS384 Encryption = "A192CBC-HS384"
	A256CBCHS512 Encryption = "A256CBC-HS512"
	A256GCM      Encryption = "A256GCM"
)

// KeyManagement reports whether alg is a JWE key management algorithm.
func KeyManagement(alg Algorithm) bool {
	switch alg {
	case RSA1_5, RSAOAEP, A128KW, A192KW, A256KW, Direct, ECDHES:
		return true
	}
	return false
}

// Signature reports whether alg is a JWS signature or MAC algorithm.
// None is not.
func Signature(alg Algorithm) bool {
	switch alg {
	case HS256, HS384, HS512,
		RS256, RS384, RS512,
		ES256, ES384, ES512,
		PS256, PS384, PS512:
		return true
	}
	return false
}

// ValidEncryption reports whether enc is a known content encryption
// algorithm.
func ValidEncryption(enc Encryption) bool {
	switch enc {
	case A128CBCHS256, A192CBCHS384, A256CBCHS512, A256GCM:
		return true
	}
	return false
}

// DefaultAllowedAlgorithms returns the key management algorithms accepted
// when no explicit list is given.
func DefaultAllowedAlgorithms() []Algorithm {
	return []Algorithm{
		RSAOAEP, ECDHES,
	}
}
