// Package forms holds the editable state of the client's forms and the
// per-field error state shown next to them.
//
// Field errors are tagged results (Ok or Invalid with a reason) rather than
// empty-string sentinels. Errors is reset at every submit attempt and filled
// either by local validation or from the server's structured error payload.
package forms
