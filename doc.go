/*
Package pretty lays out structured text to fit a target column width.

Documents

A document (type Doc) is an immutable tree describing text together with
the places where it may be broken into lines. Documents are built from a
small set of combinators:

	doc := pretty.Join(pretty.Space(),
	    pretty.From("foo"), pretty.From("bar"), pretty.From("baz"),
	).Bracket("(", ")")

Rendering a document picks, for every group, either its single-line form
or its broken form:

	doc.Display(80, false).String()   // "(foo bar baz)"
	doc.Display(8, false).String()    // "(\n    foo\n    bar\n    baz\n)"

The layout algorithm follows Philip Wadler's paper

	A prettier printer (https://homepages.inf.ed.ac.uk/wadler/papers/prettier/prettier.pdf)

extended with styled spans of text. Groups are decided greedily, outermost
first: a group is rendered flat whenever its flat form fits on the remainder of
the current line, otherwise it is broken and its inner groups get the same
choice at their own positions. The look-ahead needed for this decision never
extends beyond the end of the current line.

Styles

Package pretty does not know about colors. A Style is any value which is able
to paint a run of text. Package styled offers a concrete implementation on top
of terminal escape sequences, and package formatter offers output drivers for
consoles and HTML.

Documents carry no mutable state, therefore a single document may be rendered
any number of times, with different widths, from concurrent goroutines.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package pretty

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pretty'
func tracer() tracing.Trace {
	return tracing.Select("pretty")
}

// PrettyError is an error type for the pretty module
type PrettyError string

func (e PrettyError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = PrettyError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
