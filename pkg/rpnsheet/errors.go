package rpnsheet

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrCircularReference indicates a reference chain revisits a cell that is still being resolved.
var ErrCircularReference = errors.New("circular reference")

// ErrInsufficientOperands indicates an operator found fewer than two values on the stack.
var ErrInsufficientOperands = errors.New("insufficient operands")

// ErrDivisionByZero indicates the right-hand operand of "/" is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrUnknownOperator indicates a token that is not a number, a reference or an operator.
var ErrUnknownOperator = errors.New("unknown operator")

// ErrMalformedExpression indicates the stack does not hold exactly one value at the end.
var ErrMalformedExpression = errors.New("malformed expression")

// ErrInvalidReference indicates a reference outside the grid.
var ErrInvalidReference = errors.New("invalid reference")

// errorCodes maps each evaluation error to its display code.
var errorCodes = []struct {
	err  error
	code string
}{
	{ErrCircularReference, "#CYCLE!"},
	{ErrInsufficientOperands, "#OPERANDS!"},
	{ErrDivisionByZero, "#DIV/0!"},
	{ErrUnknownOperator, "#NAME?"},
	{ErrMalformedExpression, "#VALUE!"},
	{ErrInvalidReference, "#REF!"},
}

// ErrorCode returns the display code for an evaluation error, or "#ERROR!"
// for anything outside the taxonomy.
func ErrorCode(err error) string {
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return "#ERROR!"
}

// EvalError represents a failure while evaluating one expression.
type EvalError struct {
	Expr  string // expression being evaluated
	Token string // offending token, if any
	Err   error
}

func (e *EvalError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("evaluating %q: %v", e.Expr, e.Err)
	}
	return fmt.Sprintf("evaluating %q at %q: %v", e.Expr, e.Token, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// NewEvalError creates a new EvalError.
func NewEvalError(expr, token string, err error) *EvalError {
	return &EvalError{
		Expr:  expr,
		Token: token,
		Err:   err,
	}
}

// CellError attaches a grid position to an evaluation failure.
type CellError struct {
	Ref string // cell name, e.g. "B2"
	Row int    // zero-based
	Col int    // zero-based
	Err error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %s: %v", e.Ref, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
