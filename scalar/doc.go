// Package scalar provides leaf generators for primitive fixture values: numbers, strings, emails,
// IP and MAC addresses, Luhn-valid card numbers, passwords, phone numbers, times, durations,
// UUIDs, enumeration members and booleans.
//
// Every generator draws from the shared random source returned by Rand. The source is safe
// for concurrent use; Seed replaces it with a deterministic one.
package scalar
