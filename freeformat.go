// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import "strings"

// LexRecord folds the free-format data of a Global or Parameter Data
// record into a flat token stream (spec.md §4.3 "Free-format parser").
// data must already have the section-suffix columns stripped and the
// physical lines belonging to the record concatenated in order.
//
// Each token is the raw lexeme text (a Hollerith token includes its
// `NH` prefix). Lexing honors the length prefix of String tokens so
// that delimiter bytes inside a payload are not mistaken for
// delimiters. Bytes following the record delimiter are dropped as a
// permitted trailing comment.
func LexRecord(data string, paramDelim, recordDelim byte) ([]string, error) {
	var tokens []string
	i := 0
	for {
		total, err := stringTokenLength(data[i:])
		if err != nil {
			return nil, err
		}
		if total >= 0 {
			tokens = append(tokens, data[i:i+total])
			i += total
		} else {
			j := i
			for j < len(data) && data[j] != paramDelim && data[j] != recordDelim {
				j++
			}
			if j == len(data) {
				return nil, &SectionFormatError{Message: "record delimiter missing: input exhausted"}
			}
			tokens = append(tokens, data[i:j])
			i = j
		}

		// A token, even an empty one, has just been appended for the
		// current field; only now is it safe to check for the record
		// delimiter without silently dropping a trailing blank field.
		if i >= len(data) {
			return nil, &SectionFormatError{Message: "record delimiter missing: input exhausted"}
		}
		if data[i] == recordDelim {
			return tokens, nil
		}
		if data[i] != paramDelim {
			return nil, &SectionFormatError{Message: "expected parameter delimiter"}
		}
		i++ // consume the parameter delimiter and start the next field.
	}
}

// isHollerithToken reports whether token begins with a digit-run
// followed by 'H'/'h' (i.e. is a String lexeme), and returns the index
// just past the 'H'.
func isHollerithToken(token string) (int, bool) {
	i := 0
	for i < len(token) && isDigitByte(token[i]) {
		i++
	}
	if i == 0 || i >= len(token) || (token[i] != 'H' && token[i] != 'h') {
		return 0, false
	}
	return i + 1, true
}

// EmitFreeFormat wraps tokens, joined by paramDelim and terminated by a
// single recordDelim, into lines of exactly dataWidth bytes, right
// padded with ASCII spaces (spec.md §4.3). A line break never falls
// between a String token's length-prefix digits and its 'H'; it may
// fall anywhere within the payload that follows.
func EmitFreeFormat(tokens []string, paramDelim, recordDelim byte, dataWidth int) []string {
	var lines []string
	var cur strings.Builder

	flush := func() {
		pad := dataWidth - cur.Len()
		for i := 0; i < pad; i++ {
			cur.WriteByte(' ')
		}
		lines = append(lines, cur.String())
		cur.Reset()
	}

	writePiece := func(piece string) {
		for len(piece) > 0 {
			room := dataWidth - cur.Len()
			if room <= 0 {
				flush()
				room = dataWidth
			}
			n := len(piece)
			if n > room {
				n = room
			}
			cur.WriteString(piece[:n])
			piece = piece[n:]
			if len(piece) > 0 {
				flush()
			}
		}
	}

	for idx, tok := range tokens {
		delim := paramDelim
		if idx == len(tokens)-1 {
			delim = recordDelim
		}

		if hIdx, ok := isHollerithToken(tok); ok {
			room := dataWidth - cur.Len()
			if room < hIdx {
				// The "NH" prefix itself doesn't fit: start fresh so it's
				// never split across the boundary.
				flush()
			}
			writePiece(tok)
		} else {
			if cur.Len()+len(tok) > dataWidth && cur.Len() > 0 {
				flush()
			}
			writePiece(tok)
		}
		writePiece(string(delim))
	}

	flush()
	return lines
}
