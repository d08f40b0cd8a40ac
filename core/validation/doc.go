// Package validation checks a prediction payload before it is submitted. The
// checks are pure: they read the request and the current year only and report
// every violated rule, in a fixed order, as a human readable message.
package validation
