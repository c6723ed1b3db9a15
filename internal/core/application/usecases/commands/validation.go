package commands

import (
	"strings"
	"unicode/utf8"

	"forwarding/internal/pkg/errs"
)

func requiredString(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func maxLengthString(name, value string, maxLength int) error {
	if err := requiredString(name, value); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(value); n > maxLength {
		return errs.NewValueIsOutOfRangeError(name+" length", n, 1, maxLength)
	}
	return nil
}

func positiveInt(name string, value int) error {
	if value < 1 {
		return errs.NewValueIsOutOfRangeError(name, value, 1, "unbounded")
	}
	return nil
}
