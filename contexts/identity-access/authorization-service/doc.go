// Package authorization implements the access-control rule engine for tokentab.
//
// Layering:
// - domain: decision entities, pure rule evaluation, errors
// - application: guard use-cases consuming resolved identity snapshots via explicit ports
// - adapters/transport: HTTP check endpoint and its DTOs
//
// Boundary notes:
// - Keep this module self-contained under identity-access context.
// - The service holds no state and never re-authenticates; it only
//   evaluates the session snapshot it is handed.
// - Denied decisions are written to the audit trail through the
//   AuditTrail port; audit failures never fail the caller.
package authorization
