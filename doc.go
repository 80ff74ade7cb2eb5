/*
Package braille transcribes Spanish text to six-dot Braille cells and back.

The package builds two lookup tables once: a symbol table mapping characters to
cells, derived from the ten cells of the first Braille series by adding dot 3
(second series) and dots 3 and 6 (third series), plus literal cells for ñ, ü,
accented vowels and punctuation; and a reverse table mapping cells back to
characters. Several characters share a cell (for example '!', '¡' and '+'),
the reverse table resolves these collisions with a fixed priority ranking.

Two transducers work on top of the tables. TextToCells emits a number prefix
in front of a run of digits and a capital prefix in front of every uppercase
letter. CellsToText reads those prefixes back. Unknown characters are dropped,
unknown cells read as '?'. Neither direction ever fails.

Tables are immutable after construction, so a Transcoder may be shared by any
number of goroutines.

Further Reading

	https://www.once.es/servicios-sociales/braille/comision-braille-espanola/documentos-tecnicos
	https://en.wikipedia.org/wiki/Spanish_Braille

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package braille

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'braille'
func tracer() tracing.Trace {
	return tracing.Select("braille")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
