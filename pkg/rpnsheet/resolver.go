package rpnsheet

import (
	"strings"

	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/models"
)

// Stats counts resolver work during one pass.
type Stats struct {
	// Evaluated is the number of expressions tokenized and run.
	Evaluated int
	// CacheHits is the number of resolutions answered from the memo.
	CacheHits int
}

// Resolver evaluates cell expressions over one grid.
//
// Results are memoized by trimmed cell text, not by coordinate, so two
// cells holding identical text share one value. Failures are never
// memoized. A Resolver is not safe for concurrent use.
type Resolver struct {
	grid     models.Grid
	memo     map[string]float64
	inFlight map[string]struct{}
	stats    Stats
}

// NewResolver creates a Resolver with an empty memo.
func NewResolver(grid models.Grid) *Resolver {
	return &Resolver{
		grid:     grid,
		memo:     make(map[string]float64),
		inFlight: make(map[string]struct{}),
	}
}

// Resolve evaluates one top-level cell expression. Each call starts with
// a fresh in-flight set; the memo is shared across calls.
func (r *Resolver) Resolve(expr string) (float64, error) {
	r.inFlight = make(map[string]struct{})
	return r.resolve(strings.TrimSpace(expr))
}

// Cached returns the memoized value for expr, if any.
func (r *Resolver) Cached(expr string) (float64, bool) {
	v, ok := r.memo[strings.TrimSpace(expr)]
	return v, ok
}

// Stats returns the work done so far.
func (r *Resolver) Stats() Stats {
	return r.stats
}

func (r *Resolver) resolve(expr string) (float64, error) {
	if v, ok := r.memo[expr]; ok {
		r.stats.CacheHits++
		return v, nil
	}
	if _, ok := r.inFlight[expr]; ok {
		return 0, NewEvalError(expr, "", ErrCircularReference)
	}

	r.inFlight[expr] = struct{}{}
	defer delete(r.inFlight, expr)

	v, err := r.evaluate(expr)
	if err != nil {
		return 0, err
	}
	r.memo[expr] = v
	return v, nil
}

// evaluate runs the postfix expression against an operand stack.
func (r *Resolver) evaluate(expr string) (float64, error) {
	r.stats.Evaluated++

	fields := strings.Fields(expr)
	stack := make([]float64, 0, len(fields))
	for _, field := range fields {
		tok := Classify(field)
		switch tok.Kind {
		case TokenNumber:
			stack = append(stack, tok.Number)

		case TokenReference:
			row, col, err := ParseReference(tok.Text, r.grid)
			if err != nil {
				return 0, NewEvalError(expr, tok.Text, ErrInvalidReference)
			}
			target, _ := r.grid.Cell(row, col)
			v, err := r.resolve(strings.TrimSpace(target))
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)

		case TokenOperator:
			if len(stack) < 2 {
				return 0, NewEvalError(expr, tok.Text, ErrInsufficientOperands)
			}
			rhs, lhs := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			v, err := apply(tok.Text, lhs, rhs)
			if err != nil {
				return 0, NewEvalError(expr, tok.Text, err)
			}
			stack = append(stack, v)

		default:
			return 0, NewEvalError(expr, tok.Text, ErrUnknownOperator)
		}
	}

	if len(stack) != 1 {
		return 0, NewEvalError(expr, "", ErrMalformedExpression)
	}
	return stack[0], nil
}

func apply(op string, lhs, rhs float64) (float64, error) {
	switch op {
	case "+":
		return lhs + rhs, nil
	case "-":
		return lhs - rhs, nil
	case "*":
		return lhs * rhs, nil
	case "/":
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		return lhs / rhs, nil
	}
	return 0, ErrUnknownOperator
}
