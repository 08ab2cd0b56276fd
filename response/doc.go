// Package response converts service-level failures into uniform client-facing
// JSON error responses while preserving richer diagnostic context for operators.
//
// Domain errors implement the ServiceError capability (Category plus optional
// text overrides); handlers call Error exactly once per failure. Transport
// status is always derived from the error category, never set independently.
// The symmetric success envelope lives in the same package so both top-level
// response shapes are defined in one place.
package response
