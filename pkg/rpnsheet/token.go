package rpnsheet

import (
	"regexp"
	"strconv"

	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/models"
	"github.com/xuri/excelize/v2"
)

// TokenKind classifies one token of a postfix expression.
type TokenKind uint8

const (
	// TokenUnknown is anything that is not a number, a reference or an operator.
	TokenUnknown TokenKind = iota
	// TokenNumber is a decimal literal such as "4", "-2.5" or ".5".
	TokenNumber
	// TokenReference names another cell, e.g. "B2".
	TokenReference
	// TokenOperator is one of + - * /.
	TokenOperator
)

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenReference:
		return "reference"
	case TokenOperator:
		return "operator"
	default:
		return "unknown"
	}
}

var (
	numberPattern    = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)$`)
	referencePattern = regexp.MustCompile(`^[A-Za-z]+[0-9]+$`)
)

// Token is one whitespace-delimited unit of an expression.
type Token struct {
	Kind   TokenKind
	Text   string
	Number float64 // set for TokenNumber
}

// IsNumeric reports whether s is a decimal literal with an optional sign and fraction.
func IsNumeric(s string) bool {
	if !numberPattern.MatchString(s) {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsCellReference reports whether s is letters followed by digits, e.g. "a1" or "B12".
func IsCellReference(s string) bool {
	return referencePattern.MatchString(s)
}

// IsOperator reports whether s is one of the four arithmetic operators.
func IsOperator(s string) bool {
	switch s {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

// Classify decides the kind of a token without looking at the grid.
func Classify(s string) Token {
	tok := Token{Kind: TokenUnknown, Text: s}
	switch {
	case IsNumeric(s):
		tok.Kind = TokenNumber
		tok.Number, _ = strconv.ParseFloat(s, 64)
	case IsCellReference(s):
		tok.Kind = TokenReference
	case IsOperator(s):
		tok.Kind = TokenOperator
	}
	return tok
}

// ParseReference converts a reference token to a zero-based (row, col) pair.
// It fails with ErrInvalidReference when the token is malformed or the
// coordinate lies outside the grid.
func ParseReference(ref string, grid models.Grid) (row, col int, err error) {
	if !IsCellReference(ref) {
		return 0, 0, NewEvalError(ref, ref, ErrInvalidReference)
	}
	c, r, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return 0, 0, NewEvalError(ref, ref, ErrInvalidReference)
	}
	row, col = r-1, c-1
	if _, ok := grid.Cell(row, col); !ok {
		return 0, 0, NewEvalError(ref, ref, ErrInvalidReference)
	}
	return row, col, nil
}
