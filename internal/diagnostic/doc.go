// Package diagnostic records the decisions made while populating a value:
// cycles that were cut, fields left at zero, overrides that failed to resolve.
//
// Key capabilities:
//   - Severity-grouped diagnostics with stable codes
//   - Field paths such as "Order.Items[].Product"
//   - "did you mean" suggestions attached to unresolved names
package diagnostic
