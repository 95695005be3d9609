// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package console

import (
	"context"
	"slices"

	"github.com/taibuivan/gradebook/internal/platform/apperr"
)

// field is one prompt of a form.
type field struct {
	// id is the field identifier validation errors refer to.
	id     string
	prompt string
	value  *string

	// show prints the available choices before the prompt.
	show func()
	// fallback is used when the answer is empty.
	fallback func() string
}

// fill asks every field, then calls submit. On a field error the message is
// printed and the form continues at the failing field. Any other error is
// printed and the form is abandoned.
//
// The boolean reports whether submit succeeded. The error is non-nil only
// when reading input failed.
func (c *Console) fill(ctx context.Context, fields []field, submit func() error) (bool, error) {
	start := 0
	for {
		for _, f := range fields[start:] {
			if err := c.askField(f); err != nil {
				return false, err
			}
		}

		err := submit()
		if err == nil {
			return true, nil
		}
		c.report(ctx, err)

		failing := apperr.FieldOf(err)
		start = slices.IndexFunc(fields, func(f field) bool { return f.id == failing })
		if failing == "" || start < 0 {
			return false, nil
		}
	}
}

func (c *Console) askField(f field) error {
	if f.show != nil {
		f.show()
	}

	prompt, fallback := f.prompt, ""
	if f.fallback != nil {
		fallback = f.fallback()
	}
	if fallback != "" {
		prompt += " [" + fallback + "]"
	}

	answer, err := c.ask(prompt)
	if err != nil {
		return err
	}
	if answer == "" {
		answer = fallback
	}
	*f.value = answer
	return nil
}
