// Package checksum provides content digests for files rewritten by the
// whitespace normalizer, so a report can show exactly which bytes changed.
//
// The SHA-256 calculator is the default and a zero-size value type.
package checksum
