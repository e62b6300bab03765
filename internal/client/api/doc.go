// Package api is the HTTP client for the blogging backend.
//
// Client describes the REST contract (signup, OTP verification, sign-in,
// current user, profile update, post listing and deletion); HTTPClient
// implements it over JSON.
//
// # Error Handling
//
// Non-2xx responses carrying {"error": {"message": ..., <field>: ...}} are
// returned as *Error. Anything else that goes wrong (transport failures,
// unexpected bodies) wraps ErrUnexpected. A 401 response also matches
// ErrUnauthorized via errors.Is.
package api
