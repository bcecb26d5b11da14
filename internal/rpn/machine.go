// Package rpn evaluates reverse-Polish token streams over bigint.Int.
package rpn

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/comalice/stlx/bigint"
	"github.com/comalice/stlx/hashset"
	"github.com/comalice/stlx/vector"
)

var (
	ErrStackUnderflow = errors.New("rpn: stack underflow")
	ErrUnknownToken   = errors.New("rpn: unknown token")
)

// TokenError reports a token that could not be evaluated.
type TokenError struct {
	Line  int
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Token, e.Err)
}

func (e *TokenError) Unwrap() error { return e.Err }

var words = hashset.Of(
	"+", "-", "*", "/", "%",
	"neg", "abs",
	"dup", "drop", "swap", "clear",
	"p", "f", "=",
)

// IsOperator reports whether tok names an operator rather than a number.
func IsOperator(tok string) bool { return words.Find(tok) }

// Option configures a Machine.
type Option func(*Machine)

// WithStackCapacity reserves room for n stack entries.
func WithStackCapacity(n int) Option {
	return func(m *Machine) {
		m.stack.Reserve(n)
	}
}

// WithPrompt writes p to the output before each input line is read.
func WithPrompt(p string) Option {
	return func(m *Machine) {
		m.prompt = p
	}
}

// WithEcho writes every input line to the output before evaluating it.
func WithEcho(on bool) Option {
	return func(m *Machine) {
		m.echo = on
	}
}

// WithErrorHandler is called for every token that fails in Run.
func WithErrorHandler(fn func(*TokenError)) Option {
	return func(m *Machine) {
		m.onError = fn
	}
}

// Machine is a stack calculator. A failing token leaves the stack unchanged.
type Machine struct {
	stack   *vector.Vector[bigint.Int]
	out     io.Writer
	prompt  string
	echo    bool
	onError func(*TokenError)
}

// New returns a Machine printing to out.
func New(out io.Writer, opts ...Option) *Machine {
	m := &Machine{stack: vector.New[bigint.Int](), out: out}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Stack returns the stack contents, bottom first.
func (m *Machine) Stack() []bigint.Int { return m.stack.Data() }

// Depth returns the number of stack entries.
func (m *Machine) Depth() int { return m.stack.Len() }

// Run evaluates every whitespace-separated token read from r and returns the
// number of tokens that failed. It stops early when ctx is done or r fails.
func (m *Machine) Run(ctx context.Context, r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	failed, line := 0, 0
	for {
		if m.prompt != "" {
			fmt.Fprint(m.out, m.prompt)
		}
		if !sc.Scan() {
			break
		}
		line++
		if m.echo {
			fmt.Fprintln(m.out, sc.Text())
		}
		for _, tok := range strings.Fields(sc.Text()) {
			if err := ctx.Err(); err != nil {
				return failed, err
			}
			if err := m.Exec(tok); err != nil {
				failed++
				if m.onError != nil {
					m.onError(&TokenError{Line: line, Token: tok, Err: err})
				}
			}
		}
	}
	if err := sc.Err(); err != nil {
		return failed, fmt.Errorf("read input: %w", err)
	}
	return failed, nil
}

// Exec evaluates one token.
func (m *Machine) Exec(tok string) error {
	if !IsOperator(tok) {
		x, err := bigint.Parse(tok)
		if err != nil {
			if errors.Is(err, bigint.ErrSyntax) {
				return fmt.Errorf("%w: %s", ErrUnknownToken, tok)
			}
			return err
		}
		m.stack.PushBack(x)
		return nil
	}

	switch tok {
	case "+":
		return m.binary(bigint.Int.Add)
	case "-":
		return m.binary(bigint.Int.Sub)
	case "*":
		return m.binary(bigint.Int.Mul)
	case "/":
		return m.binary(bigint.Int.Quo)
	case "%":
		return m.binary(bigint.Int.Rem)
	case "neg":
		return m.unary(bigint.Int.Neg)
	case "abs":
		return m.unary(bigint.Int.Abs)
	case "dup":
		x, err := m.peek(1)
		if err != nil {
			return err
		}
		m.stack.PushBack(x[0])
	case "drop":
		if err := m.need(1); err != nil {
			return err
		}
		m.stack.PopBack()
	case "swap":
		if err := m.need(2); err != nil {
			return err
		}
		n := m.stack.Len()
		a, b := m.stack.Index(n-2), m.stack.Index(n-1)
		m.stack.Set(n-2, b)
		m.stack.Set(n-1, a)
	case "clear":
		m.stack.Clear()
	case "p":
		x, err := m.peek(1)
		if err != nil {
			return err
		}
		fmt.Fprintln(m.out, x[0])
	case "f":
		for x := range m.stack.Values() {
			fmt.Fprintln(m.out, x)
		}
	case "=":
		x, err := m.peek(1)
		if err != nil {
			return err
		}
		fmt.Fprintln(m.out, x[0])
		m.stack.PopBack()
	}
	return nil
}

func (m *Machine) need(n int) error {
	if m.stack.Len() < n {
		return fmt.Errorf("%w: need %d, have %d", ErrStackUnderflow, n, m.stack.Len())
	}
	return nil
}

// peek returns the top n entries, deepest first, without popping them.
func (m *Machine) peek(n int) ([]bigint.Int, error) {
	if err := m.need(n); err != nil {
		return nil, err
	}
	data := m.stack.Data()
	return data[len(data)-n:], nil
}

func (m *Machine) binary(op func(bigint.Int, bigint.Int) (bigint.Int, error)) error {
	args, err := m.peek(2)
	if err != nil {
		return err
	}
	r, err := op(args[0], args[1])
	if err != nil {
		return err
	}
	m.stack.PopBack()
	m.stack.Set(m.stack.Len()-1, r)
	return nil
}

func (m *Machine) unary(op func(bigint.Int) bigint.Int) error {
	args, err := m.peek(1)
	if err != nil {
		return err
	}
	m.stack.Set(m.stack.Len()-1, op(args[0]))
	return nil
}
