// Package console is the terminal front-end of clubsctl.
//
// It reads one command per line, dispatches it to the resource services and
// the dashboard model, and prints results as plain text. Interactive forms
// prompt field by field; on edit, a blank answer keeps the current value.
package console
