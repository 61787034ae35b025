/*
Package styled implements text styles for pretty-printed documents.

A Style is a small comparable value: a set of attributes (bold, italic, …)
together with optional foreground and background colors. Colors are the
16 standard terminal colors, as defined by package github.com/fatih/color.
Styles paint text with ANSI escape sequences and are able to express
themselves as CSS declarations for HTML output.

	keyword := styled.Plain.Add(styled.Bold).Foreground(color.FgBlue)
	doc := pretty.From("lambda").WithStyle(keyword)

Styles of nested spans cascade: colors of the inner style win, attributes
accumulate.

	s, err := styled.Parse("bold red on white")

Status

Work in progress. 256-color and true-color styles are out of scope; clients
needing them may implement interface pretty.Style themselves.

_________________________________________________________________________

# BSD 3-Clause License
# Copyright (c) 2020–21, Norbert Pillmayer
For details please refer to the LICENSE file.
*/
package styled

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pretty'
func tracer() tracing.Trace {
	return tracing.Select("pretty")
}

// StyleError is an error type for the styled package.
type StyleError string

func (e StyleError) Error() string {
	return string(e)
}

// ErrUnknownStyle is flagged whenever a style specification contains a word
// which is neither an attribute nor a color.
const ErrUnknownStyle = StyleError("unknown style")
