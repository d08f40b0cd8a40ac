// Package form drives the price prediction form. The Loader fills the location
// option list once at startup and the Controller handles one submission at a
// time: it extracts the raw field values, validates them and, when they pass,
// posts them to the backend and renders the estimate. Both talk to the outside
// world only through the ports declared in ports.go, so front-ends (terminal,
// tests) plug in their own display and option list.
package form
