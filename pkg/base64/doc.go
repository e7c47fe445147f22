// Package base64 implements the base64 encoding defined in RFC 4648, in
// the two variants used by JOSE:
//
//   - Standard: the "+" and "/" alphabet, padded with "=" to a multiple
//     of four characters (RFC 4648 Section 4).
//   - URLSafe: the "-" and "_" alphabet, never padded (RFC 4648 Section 5),
//     which is the form JWS and JWE compact serializations use (RFC 7515).
//
// Decoding is strict about the alphabet: a character that belongs only to
// the other variant is rejected rather than silently accepted. Empty input
// is rejected in both directions.
//
// All functions are pure and safe for concurrent use.
//
// http://www.rfc-editor.org/rfc/rfc4648
package base64
