// Package base64url provides the URL and filename safe base64 encoding
// as defined in RFC 4648 Section 5, without padding characters.
//
// The encoded form uses the alphabet A-Z, a-z, 0-9, '-' and '_' and is
// suitable for URLs, file names and JSON Web Token segments. Besides the
// byte and string primitives the package offers JSON convenience wrappers
// which serialize a value before encoding and parse it after decoding.
//
// Decoding is strict: characters outside of the alphabet, padding
// characters, the standard alphabet characters '+' and '/', lengths with
// a remainder of one and non-zero trailing bits are rejected with an error
// of the errors.Decode kind.
//
// All functions are free of shared state and safe for concurrent use.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-5
package base64url
