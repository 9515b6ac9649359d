// Copyright 2017, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"io"

	"github.com/fatih/color"
)

// Reporter writes the fixed console diagnostics. Alerts are colored only
// when the output is a terminal.
type Reporter struct {
	out   io.Writer
	alert *color.Color
}

// NewReporter creates a Reporter that writes to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:   out,
		alert: color.New(color.FgRed),
	}
}

// Alert prints a failure message.
func (r *Reporter) Alert(msg string) {
	r.alert.Fprintln(r.out, msg)
}

// Println prints a plain line, such as a driver info log.
func (r *Reporter) Println(msg string) {
	io.WriteString(r.out, msg+"\n")
}
