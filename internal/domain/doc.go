// Package domain contains shared domain types used across entity sub-packages.
// The planning engine lives in domain/protocol and reference records in
// domain/country. This root package holds the sentinel errors and the
// validation types that every layer maps to transport-level responses.
package domain
