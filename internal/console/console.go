// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package console is the line-based user interface of the grade book.

It reads one answer per line from an [io.Reader] and writes prompts, tables,
and messages to an [io.Writer], so a whole session can be scripted in tests.

Flow:

  - Top menu: register, log in, or exit.
  - Referent menu: create year groups, courses, students, and evaluations,
    show the analysis, a certificate, or the evaluations of a period.

Forms that fail validation print the message and continue at the failing
field; the answers before it are kept.
*/
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/taibuivan/gradebook/internal/gradebook"
	"github.com/taibuivan/gradebook/internal/platform/apperr"
	"github.com/taibuivan/gradebook/internal/platform/constants"
	"github.com/taibuivan/gradebook/internal/platform/ctxutil"
	"github.com/taibuivan/gradebook/internal/session"
)

// errQuit ends the session when the operator chooses exit.
var errQuit = errors.New("console: quit")

// Console drives one interactive session.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	service *session.Service

	// current is the logged-in referent, nil on the top menu.
	current *gradebook.Referent
}

// New returns a console reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, service *session.Service) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		service: service,
	}
}

// Run shows the menus until the operator exits, the input ends, or ctx is
// cancelled. End of input is not an error.
func (c *Console) Run(ctx context.Context) error {
	c.printf("%s %s\n", constants.AppName, constants.AppVersion)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		if c.current == nil {
			err = c.topMenu(ctx)
		} else {
			err = c.referentMenu(ctx)
		}

		switch {
		case err == nil:
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			c.printf("Goodbye!\n")
			return nil
		default:
			return err
		}
	}
}

// # Menus

func (c *Console) topMenu(ctx context.Context) error {
	c.printf("\n[R]egister  [L]ogin  e[X]it\n")
	choice, err := c.choice("Choice")
	if err != nil {
		return err
	}

	switch choice {
	case "R":
		return c.register(ctx)
	case "L":
		return c.login(ctx)
	case "X":
		return errQuit
	default:
		c.printf("Unknown choice %q.\n", choice)
		return nil
	}
}

func (c *Console) referentMenu(ctx context.Context) error {
	c.printf("\nLogged in as %s (%s)\n", c.current.FullName(), c.current.ID())
	c.printf("[Y]ear group  [C]ourse  [S]tudent  [E]valuation\n")
	c.printf("[1] Analysis  [2] Certificate  [3] Period  l[O]gout  e[X]it\n")
	choice, err := c.choice("Choice")
	if err != nil {
		return err
	}

	switch choice {
	case "Y":
		return c.createYearGroup(ctx)
	case "C":
		return c.createCourse(ctx)
	case "S":
		return c.createStudent(ctx)
	case "E":
		return c.createEvaluation(ctx)
	case "1":
		return c.analysis()
	case "2":
		return c.certificate()
	case "3":
		return c.period(ctx)
	case "O":
		c.current = nil
		return nil
	case "X":
		return errQuit
	default:
		c.printf("Unknown choice %q.\n", choice)
		return nil
	}
}

// # Input and Output

// readLine returns the next line without its line ending. It returns
// [io.EOF] when the input is exhausted.
func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("console: read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.scanner.Text(), "\r"), nil
}

// ask prints a prompt and returns the answer.
func (c *Console) ask(prompt string) (string, error) {
	c.printf("%s: ", prompt)
	return c.readLine()
}

// choice asks for a menu entry, trimmed and upper-cased.
func (c *Console) choice(prompt string) (string, error) {
	answer, err := c.ask(prompt)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.TrimSpace(answer)), nil
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// report prints an operator-safe message for err. Unexpected errors are
// logged with their cause.
func (c *Console) report(ctx context.Context, err error) {
	ae := apperr.As(err)
	if ae == nil || ae.Code == apperr.CodeInternal {
		ctxutil.GetLogger(ctx).ErrorContext(ctx, "console_operation_failed",
			slog.Any(constants.FieldError, err),
		)
		c.printf("Error: An unexpected error occurred\n")
		return
	}
	c.printf("Error: %s\n", ae.Message)
}
