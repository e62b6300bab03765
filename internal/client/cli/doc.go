// Package cli provides the interactive scribe command-line client.
//
// It wires configuration, the local token store, the API client and the
// page services into a REPL. Typical flow: restore a persisted session,
// then read commands until the user exits.
//
// Commands:
//   - signup / otp   two-stage registration with OTP verification
//   - signin / logout / whoami
//   - profile        edit the signed-in user's profile
//   - feed [next|prev|N], delete N
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// ctx is cancelled.
package cli
