// Package jose implements the encoding building blocks of JavaScript Object
// Signing and Encryption (JOSE).
//
// Packages:
//  - base64: RFC 4648 standard and URL-safe base64 codec
//  - header: JWE protected header record
//  - jwa: algorithm and content encryption identifiers
//
// Related RFCs:
//  - RFC4648 https://datatracker.ietf.org/doc/html/rfc4648 Base16, Base32, and Base64 Data Encodings
//  - RFC7515 https://datatracker.ietf.org/doc/html/rfc7515 JWS, JSON Web Signature
//  - RFC7516 https://datatracker.ietf.org/doc/html/rfc7516 JWE, JSON Web Encryption
//  - RFC7518 https://datatracker.ietf.org/doc/html/rfc7518 JWA, JSON Web Algorithms
//
// Related Information:
//  - https://datatracker.ietf.org/wg/jose/charter/
package jose
