/*
Package formatter outputs pretty-printed documents on output devices with
fixed-width fonts. It is intended for situations where the application is
responsible for the visual representation, e.g. consoles, and for HTML
pages showing program text.

Output of a document differs from simple string output in two aspects: the
layout depends on the width of the output device, and styles have to be
mapped to what the device is able to display. This package helps performing
the following tasks:

▪︎ Select a formatter for a given (monospaced) output device

▪︎ Create a suitable configuration, e.g. from the properties of the current terminal

▪︎ Lay out a document and output it to the device

API

Clients select an implementation of interface pretty.Format and possibly
configure it to their needs:

	doc := pretty.From("lambda").WithStyle(styled.MustParse("bold blue"))

	console := formatter.NewConsoleFixedWidthFormat(nil, nil)
	console.Print(doc, nil)   // config from terminal

This package offers two formats, one for console output (like in the example
above) and one for HTML output.

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
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pretty'
func tracer() tracing.Trace {
	return tracing.Select("pretty")
}
