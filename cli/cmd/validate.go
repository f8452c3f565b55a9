package cmd

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
)

var (
	namePattern          = regexp.MustCompile(`^[A-Za-z0-9_/-]+$`)
	componentNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
)

// requireName reports an error if the named option is empty.
func requireName(option, value, usage string) error {
	if value != "" {
		return nil
	}

	return ErrInvalidOption.
		With(slog.String("option", option)).
		Withf("Option '%s' is required. Please provide %s using --%s.", option, usage, option)
}

// checkName reports an error if value is set but does not match the name
// pattern.
func checkName(option, value string) error {
	if value == "" || namePattern.MatchString(value) {
		return nil
	}

	return ErrInvalidOption.
		With(slog.String("option", option), slog.String("value", value)).
		Withf("Option '%s' must contain only alphanumeric characters, '-', '_' or '/'.", option)
}

// checkSpriteName reports an error if value is not a valid sprite name.
// Sprites live directly in the sprite directory, so unlike icon names they
// cannot contain '/'.
func checkSpriteName(option, value string) error {
	if err := checkName(option, value); err != nil {
		return err
	}

	if !strings.Contains(value, "/") {
		return nil
	}

	return ErrInvalidOption.
		With(slog.String("option", option), slog.String("value", value)).
		Withf("Option '%s' must not contain '/', sprites cannot be nested.", option)
}

func validateSpritePath(publicDir string) func(string) error {
	return func(s string) error {
		if strings.HasPrefix(s, publicDir) {
			return nil
		}

		return errors.New("The path should be within the public directory.")
	}
}

func validateComponentPath(s string) error {
	if strings.HasPrefix(s, "./") {
		return nil
	}

	return errors.New("The path should be relative to the project root.")
}

func validateComponentName(s string) error {
	if componentNamePattern.MatchString(s) {
		return nil
	}

	msg := "The component name should start with an uppercase letter and contain only alphanumeric characters."

	if alt := strcase.ToCamel(s); alt != "" && componentNamePattern.MatchString(alt) {
		msg += " Try '" + alt + "'."
	}

	return errors.New(msg)
}
