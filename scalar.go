// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import (
	"math"
	"strconv"
	"strings"
)

// ParamType tags the six IGES scalar datatypes (spec.md §3 "Scalar
// value").
type ParamType int

// The six lexical datatypes a parameter token can carry.
const (
	TypeLogical ParamType = iota
	TypeInteger
	TypeReal
	TypePointer
	TypeString
	TypeLanguage
)

func (t ParamType) String() string {
	switch t {
	case TypeLogical:
		return "Logical"
	case TypeInteger:
		return "Integer"
	case TypeReal:
		return "Real"
	case TypePointer:
		return "Pointer"
	case TypeString:
		return "String"
	case TypeLanguage:
		return "LanguageStatement"
	default:
		return "Unknown"
	}
}

// MaxPointerMagnitude is the largest absolute value a Pointer scalar may
// carry (spec.md §3).
const MaxPointerMagnitude = 99_999_999

// Value is a tagged scalar: exactly one of the fields below is
// meaningful, selected by Type.
type Value struct {
	Type ParamType
	Bool bool    // TypeLogical
	Int  int32   // TypeInteger, TypePointer
	Real float64 // TypeReal
	Str  string  // TypeString, TypeLanguage
}

// ValueFormat is the companion record preserving how a Value was
// lexically written, so conformance-preserving formatting can be
// reconstructed on emit (spec.md §3 "Value format").
type ValueFormat struct {
	Type ParamType

	// IsDefault is set when the source field was blank and a spec
	// default applied.
	IsDefault bool

	// HasPlusSign is set when the token had an explicit leading '+'.
	HasPlusSign bool

	// The following apply only to TypeReal.
	HasIntegerPart  bool
	HasFractionPart bool
	HasExponent     bool
	SinglePrecision bool // true: 'E' marker; false: 'D' marker. Meaningless if !HasExponent.
}

// Equal reports whether f and other are equivalent for round-trip
// purposes, ignoring fields the type doesn't use (spec.md §3: "Equality
// ignores fields irrelevant to the type").
func (f ValueFormat) Equal(other ValueFormat) bool {
	if f.Type != other.Type {
		return false
	}
	switch f.Type {
	case TypeLogical:
		return f.IsDefault == other.IsDefault
	case TypeInteger, TypePointer:
		return f.IsDefault == other.IsDefault && f.HasPlusSign == other.HasPlusSign
	case TypeReal:
		if f.IsDefault != other.IsDefault || f.HasPlusSign != other.HasPlusSign {
			return false
		}
		if f.HasIntegerPart != other.HasIntegerPart || f.HasFractionPart != other.HasFractionPart {
			return false
		}
		if f.HasExponent != other.HasExponent {
			return false
		}
		if f.HasExponent && f.SinglePrecision != other.SinglePrecision {
			return false
		}
		return true
	case TypeString, TypeLanguage:
		return f.IsDefault == other.IsDefault
	default:
		return false
	}
}

func isASCIISpace(b byte) bool { return b == ' ' }

func trimASCIISpaces(s string) string {
	start, end := 0, len(s)
	for start < end && isASCIISpace(s[start]) {
		start++
	}
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// ParseInteger converts an Integer lexeme. An empty (after trimming)
// token yields defaultVal with IsDefault set when hasDefault is true;
// otherwise it's a TypeConversionError.
func ParseInteger(token string, hasDefault bool, defaultVal int32) (Value, ValueFormat, error) {
	trimmed := trimASCIISpaces(token)
	if trimmed == "" {
		if hasDefault {
			return Value{Type: TypeInteger, Int: defaultVal},
				ValueFormat{Type: TypeInteger, IsDefault: true}, nil
		}
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "blank Integer field has no default"}
	}
	if strings.IndexFunc(token, func(r rune) bool { return r > 0x7f }) >= 0 {
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "non-ASCII byte in Integer token"}
	}

	body := trimmed
	hasPlus := false
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		hasPlus = body[0] == '+'
		body = body[1:]
	}
	if body == "" {
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "Integer token has no digits: " + token}
	}
	for i := 0; i < len(body); i++ {
		if !isDigitByte(body[i]) {
			return Value{}, ValueFormat{}, &TypeConversionError{Message: "invalid Integer token: " + token}
		}
	}
	n, err := strconv.ParseInt(trimmed, 10, 32)
	if err != nil {
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "Integer overflow: " + token}
	}
	return Value{Type: TypeInteger, Int: int32(n)},
		ValueFormat{Type: TypeInteger, HasPlusSign: hasPlus}, nil
}

// ParsePointer converts a Pointer lexeme: same lexical syntax as
// Integer, with an absolute-value bound (spec.md §3).
func ParsePointer(token string, hasDefault bool, defaultVal int32) (Value, ValueFormat, error) {
	v, f, err := ParseInteger(token, hasDefault, defaultVal)
	if err != nil {
		return Value{}, ValueFormat{}, err
	}
	if v.Int > MaxPointerMagnitude || v.Int < -MaxPointerMagnitude {
		return Value{}, ValueFormat{}, &TypeConversionError{
			Message: "Pointer magnitude exceeds " + strconv.Itoa(MaxPointerMagnitude) + ": " + token,
		}
	}
	v.Type, f.Type = TypePointer, TypePointer
	return v, f, nil
}

// ParseReal converts a Real lexeme, matching
// `[+-]?([0-9]+\.[0-9]*|\.[0-9]+)([DE][+-]?[0-9]+)?` and detecting
// lossless underflow (spec.md §4.2).
func ParseReal(token string, hasDefault bool, defaultVal float64) (Value, ValueFormat, error) {
	trimmed := trimASCIISpaces(token)
	if trimmed == "" {
		if hasDefault {
			return Value{Type: TypeReal, Real: defaultVal},
				ValueFormat{Type: TypeReal, IsDefault: true}, nil
		}
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "blank Real field has no default"}
	}

	s := trimmed
	f := ValueFormat{Type: TypeReal}
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		f.HasPlusSign = s[i] == '+'
		i++
	}

	intStart := i
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}
	f.HasIntegerPart = i > intStart

	if i >= len(s) || s[i] != '.' {
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "Real token missing decimal point: " + token}
	}
	i++ // consume '.'

	fracStart := i
	for i < len(s) && isDigitByte(s[i]) {
		i++
	}
	f.HasFractionPart = i > fracStart

	if !f.HasIntegerPart && !f.HasFractionPart {
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "Real token has no digits: " + token}
	}

	mantissaDigits := s[intStart:fracStart-1] + s[fracStart:i]

	normalized := s[:i]
	if i < len(s) {
		marker := s[i]
		if marker == 'D' || marker == 'd' || marker == 'E' || marker == 'e' {
			f.HasExponent = true
			f.SinglePrecision = marker == 'E' || marker == 'e'
			expStart := i
			i++
			if i < len(s) && (s[i] == '+' || s[i] == '-') {
				i++
			}
			digStart := i
			for i < len(s) && isDigitByte(s[i]) {
				i++
			}
			if i == digStart {
				return Value{}, ValueFormat{}, &TypeConversionError{Message: "Real token has malformed exponent: " + token}
			}
			normalized = s[:expStart] + "e" + s[expStart+1:i]
		}
	}
	if i != len(s) {
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "trailing garbage in Real token: " + token}
	}

	val, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "invalid Real token: " + token}
	}

	if val == 0 {
		nonzeroMantissa := false
		for _, c := range mantissaDigits {
			if c != '0' {
				nonzeroMantissa = true
				break
			}
		}
		if nonzeroMantissa {
			return Value{}, ValueFormat{}, &TypeConversionError{
				Message: "Real token underflows float64: " + token,
			}
		}
	} else if math.IsInf(val, 0) {
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "Real token overflows float64: " + token}
	}

	return Value{Type: TypeReal, Real: val}, f, nil
}

// ParseString converts a Hollerith `NH<chars>` lexeme. It requires the
// entire token (the length prefix and exactly N payload bytes) to be
// passed in; the caller is responsible for locating the boundary (see
// freeformat.go), since a String payload may itself contain delimiter
// bytes.
func ParseString(token string) (Value, ValueFormat, error) {
	if token == "" {
		return Value{Type: TypeString}, ValueFormat{Type: TypeString, IsDefault: true}, nil
	}
	idx := strings.IndexAny(token, "Hh")
	if idx <= 0 {
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "malformed String token: " + token}
	}
	n, err := strconv.Atoi(token[:idx])
	if err != nil {
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "malformed String length prefix: " + token}
	}
	payload := token[idx+1:]
	if len(payload) != n {
		return Value{}, ValueFormat{}, &TypeConversionError{
			Message: "String length mismatch: declared " + strconv.Itoa(n) + " got " + strconv.Itoa(len(payload)),
		}
	}
	return Value{Type: TypeString, Str: payload}, ValueFormat{Type: TypeString}, nil
}

// stringTokenLength returns the total byte length of the Hollerith token
// `NH<chars>` beginning at data[0:], or -1 if data does not begin with a
// valid length-prefix, or an error if the declared length exceeds the
// remaining bytes.
func stringTokenLength(data string) (int, error) {
	i := 0
	for i < len(data) && isDigitByte(data[i]) {
		i++
	}
	if i == 0 || i >= len(data) || (data[i] != 'H' && data[i] != 'h') {
		return -1, nil
	}
	n, err := strconv.Atoi(data[:i])
	if err != nil {
		return -1, nil
	}
	total := i + 1 + n
	if total > len(data) {
		return 0, &SectionFormatError{Message: "String token length exceeds remaining bytes"}
	}
	return total, nil
}

// ParseLogical converts a Logical lexeme: canonical '0'/'1', tolerating
// 'TRUE'/'FALSE' on input (spec.md §4.2).
func ParseLogical(token string, hasDefault bool, defaultVal bool) (Value, ValueFormat, error) {
	trimmed := trimASCIISpaces(token)
	if trimmed == "" {
		if hasDefault {
			return Value{Type: TypeLogical, Bool: defaultVal},
				ValueFormat{Type: TypeLogical, IsDefault: true}, nil
		}
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "blank Logical field has no default"}
	}
	switch strings.ToUpper(trimmed) {
	case "0", "FALSE":
		return Value{Type: TypeLogical, Bool: false}, ValueFormat{Type: TypeLogical}, nil
	case "1", "TRUE":
		return Value{Type: TypeLogical, Bool: true}, ValueFormat{Type: TypeLogical}, nil
	default:
		return Value{}, ValueFormat{}, &TypeConversionError{Message: "invalid Logical token: " + token}
	}
}

// ParseLanguageStatement passes an opaque MACRO-definition lexeme
// through unchanged.
func ParseLanguageStatement(token string) (Value, ValueFormat, error) {
	return Value{Type: TypeLanguage, Str: token}, ValueFormat{Type: TypeLanguage, IsDefault: token == ""}, nil
}

// EmitInteger renders v/f as an Integer lexeme, or "" when IsDefault is
// set (the caller omits the default check for literal-zero-default
// fields upstream; EmitInteger always honors f.IsDefault).
func EmitInteger(v Value, f ValueFormat) string {
	if f.IsDefault {
		return ""
	}
	s := strconv.FormatInt(int64(v.Int), 10)
	if f.HasPlusSign && v.Int >= 0 {
		s = "+" + s
	}
	return s
}

// EmitPointer renders a Pointer lexeme; identical wire format to
// EmitInteger.
func EmitPointer(v Value, f ValueFormat) string { return EmitInteger(v, f) }

// EmitReal renders v/f as a Real lexeme honoring the stored format
// (spec.md §4.2: always re-emit with the stored 'D'/'E' precision
// marker; "N." form when there is no fraction or exponent part).
func EmitReal(v Value, f ValueFormat) string {
	if f.IsDefault {
		return ""
	}

	var mantissa string
	var exponent int
	if f.HasExponent {
		// Go's 'e' verb always yields a signed, >=2-digit exponent and a
		// single leading mantissa digit; split it back into IGES's
		// "digits.digits" + marker + signed-exponent shape.
		sci := strconv.FormatFloat(v.Real, 'e', -1, 64)
		eIdx := strings.IndexByte(sci, 'e')
		mantissa = sci[:eIdx]
		exp, err := strconv.Atoi(sci[eIdx+1:])
		if err == nil {
			exponent = exp
		}
	} else {
		mantissa = strconv.FormatFloat(v.Real, 'f', -1, 64)
	}

	neg := strings.HasPrefix(mantissa, "-")
	if neg {
		mantissa = mantissa[1:]
	}
	intPart, fracPart := mantissa, ""
	if idx := strings.IndexByte(mantissa, '.'); idx >= 0 {
		intPart, fracPart = mantissa[:idx], mantissa[idx+1:]
	}
	if !f.HasIntegerPart {
		intPart = ""
	}
	if !f.HasFractionPart {
		fracPart = ""
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	} else if f.HasPlusSign {
		b.WriteByte('+')
	}
	b.WriteString(intPart)
	b.WriteByte('.')
	b.WriteString(fracPart)
	if f.HasExponent {
		if f.SinglePrecision {
			b.WriteByte('E')
		} else {
			b.WriteByte('D')
		}
		if exponent >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(exponent))
	}
	return b.String()
}

// EmitString renders v as a Hollerith `NH<chars>` lexeme, or "" when
// f.IsDefault is set.
func EmitString(v Value, f ValueFormat) string {
	if f.IsDefault {
		return ""
	}
	return strconv.Itoa(len(v.Str)) + "H" + v.Str
}

// EmitLogical renders the canonical '0'/'1' encoding, or "" when
// f.IsDefault is set.
func EmitLogical(v Value, f ValueFormat) string {
	if f.IsDefault {
		return ""
	}
	if v.Bool {
		return "1"
	}
	return "0"
}

// EmitLanguageStatement passes the payload through unchanged.
func EmitLanguageStatement(v Value, f ValueFormat) string {
	if f.IsDefault {
		return ""
	}
	return v.Str
}
