// Package wizard authors a single apiprop property through interactive
// prompts.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-apiprop/internal/logger"
	"github.com/goliatone/go-apiprop/pkg/apiprop"
)

var (
	// ErrAborted signals the user aborted input (e.g. Ctrl+C).
	ErrAborted = errors.New("wizard: aborted")

	errFieldRequired = errors.New("field name is required")
	errNotANumber    = errors.New("value must be a number")
	errNotPositive   = errors.New("value must be greater than 0")
)

const noPreset = "(none)"

var flagOptions = []string{"array", "nullable", "required"}

// Result is the authored property.
type Result struct {
	Field   string
	Builder apiprop.Builder
}

// Run walks the prompts and returns the resulting builder. Errors from the
// driver are returned wrapped with the step that failed.
func Run(ctx context.Context, driver PromptDriver) (Result, error) {
	if driver == nil {
		return Result{}, errors.New("wizard: prompt driver is nil")
	}

	field, err := driver.Input(ctx, InputConfig{
		Message:   "Field name",
		Validator: requireText,
	})
	if err != nil {
		return Result{}, fmt.Errorf("wizard: field name: %w", err)
	}

	b, err := askPreset(ctx, driver)
	if err != nil {
		return Result{}, err
	}
	if b, err = askText(ctx, driver, b); err != nil {
		return Result{}, err
	}

	switch b.Conf().Type {
	case apiprop.TypeNumber, apiprop.TypeInteger:
		if b, err = askBounds(ctx, driver, b); err != nil {
			return Result{}, err
		}
	case apiprop.TypeString:
		if b, err = askPattern(ctx, driver, b); err != nil {
			return Result{}, err
		}
	}

	if b, err = askEnum(ctx, driver, b); err != nil {
		return Result{}, err
	}
	if b, err = askFlags(ctx, driver, b); err != nil {
		return Result{}, err
	}

	conf := b.Conf()
	summary := fmt.Sprintf("%s: type=%s format=%s", strings.TrimSpace(field), orDash(string(conf.Type)), orDash(string(conf.Format)))
	if err := driver.Info(ctx, summary); err != nil {
		return Result{}, fmt.Errorf("wizard: summary: %w", err)
	}

	res := Result{Field: strings.TrimSpace(field), Builder: b}
	logger.FromContext(ctx).Debug().
		Str("field", res.Field).
		Strs("keys", keyNames(b.Conf().Keys())).
		Msg("property authored")
	return res, nil
}

func askPreset(ctx context.Context, driver PromptDriver) (apiprop.Builder, error) {
	options := append([]string{noPreset}, apiprop.Presets()...)
	idx, err := driver.Select(ctx, SelectConfig{
		Message:  "Preset",
		Options:  options,
		PageSize: 10,
	})
	if err != nil {
		return apiprop.Builder{}, fmt.Errorf("wizard: preset: %w", err)
	}
	b := apiprop.Api()
	if idx <= 0 || idx >= len(options) {
		return b, nil
	}
	preset, ok := apiprop.LookupPreset(options[idx])
	if !ok {
		return apiprop.Builder{}, fmt.Errorf("wizard: preset %q not found", options[idx])
	}
	return preset(b), nil
}

func askText(ctx context.Context, driver PromptDriver, b apiprop.Builder) (apiprop.Builder, error) {
	title, err := driver.Input(ctx, InputConfig{Message: "Title", Help: "Leave empty to skip"})
	if err != nil {
		return b, fmt.Errorf("wizard: title: %w", err)
	}
	if title = strings.TrimSpace(title); title != "" {
		b = b.Title(title)
	}

	description, err := driver.Input(ctx, InputConfig{Message: "Description", Help: "Leave empty to skip"})
	if err != nil {
		return b, fmt.Errorf("wizard: description: %w", err)
	}
	if description = strings.TrimSpace(description); description != "" {
		b = b.Description(description)
	}
	return b, nil
}

func askBounds(ctx context.Context, driver PromptDriver, b apiprop.Builder) (apiprop.Builder, error) {
	lower, ok, err := askNumber(ctx, driver, "Minimum", optionalNumber)
	if err != nil {
		return b, fmt.Errorf("wizard: minimum: %w", err)
	}
	if ok {
		exclusive, err := driver.Confirm(ctx, ConfirmConfig{Message: "Exclusive minimum?"})
		if err != nil {
			return b, fmt.Errorf("wizard: exclusive minimum: %w", err)
		}
		b = b.Min(lower, exclusive)
	}

	upper, ok, err := askNumber(ctx, driver, "Maximum", optionalNumber)
	if err != nil {
		return b, fmt.Errorf("wizard: maximum: %w", err)
	}
	if ok {
		exclusive, err := driver.Confirm(ctx, ConfirmConfig{Message: "Exclusive maximum?"})
		if err != nil {
			return b, fmt.Errorf("wizard: exclusive maximum: %w", err)
		}
		b = b.Max(upper, exclusive)
	}

	step, ok, err := askNumber(ctx, driver, "Multiple of", optionalPositive)
	if err != nil {
		return b, fmt.Errorf("wizard: multiple of: %w", err)
	}
	if ok {
		b = b.MultipleOf(step)
	}
	return b, nil
}

func askNumber(ctx context.Context, driver PromptDriver, message string, validate func(string) error) (float64, bool, error) {
	raw, err := driver.Input(ctx, InputConfig{Message: message, Help: "Leave empty to skip", Validator: validate})
	if err != nil {
		return 0, false, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	if err := validate(raw); err != nil {
		return 0, false, err
	}
	v, _ := strconv.ParseFloat(raw, 64)
	return v, true, nil
}

func askPattern(ctx context.Context, driver PromptDriver, b apiprop.Builder) (apiprop.Builder, error) {
	pattern, err := driver.Input(ctx, InputConfig{
		Message:   "Pattern",
		Help:      "Regular expression, leave empty to skip",
		Validator: optionalRegexp,
	})
	if err != nil {
		return b, fmt.Errorf("wizard: pattern: %w", err)
	}
	if pattern = strings.TrimSpace(pattern); pattern != "" {
		b = b.Pattern(pattern)
	}
	return b, nil
}

func askEnum(ctx context.Context, driver PromptDriver, b apiprop.Builder) (apiprop.Builder, error) {
	numeric := false
	switch b.Conf().Type {
	case apiprop.TypeNumber, apiprop.TypeInteger:
		numeric = true
	}

	validate := func(raw string) error {
		if !numeric {
			return nil
		}
		for _, part := range splitList(raw) {
			if err := optionalNumber(part); err != nil {
				return err
			}
		}
		return nil
	}
	raw, err := driver.Input(ctx, InputConfig{
		Message:   "Allowed values",
		Help:      "Comma separated, leave empty to skip",
		Validator: validate,
	})
	if err != nil {
		return b, fmt.Errorf("wizard: enum: %w", err)
	}
	if err := validate(raw); err != nil {
		return b, fmt.Errorf("wizard: enum: %w", err)
	}

	parts := splitList(raw)
	if len(parts) == 0 {
		return b, nil
	}
	values := make([]any, 0, len(parts))
	for _, part := range parts {
		if numeric {
			v, _ := strconv.ParseFloat(part, 64)
			values = append(values, v)
			continue
		}
		values = append(values, part)
	}
	return b.Enum(values...), nil
}

func askFlags(ctx context.Context, driver PromptDriver, b apiprop.Builder) (apiprop.Builder, error) {
	picked, err := driver.MultiSelect(ctx, SelectConfig{
		Message: "Flags",
		Options: flagOptions,
	})
	if err != nil {
		return b, fmt.Errorf("wizard: flags: %w", err)
	}
	for _, idx := range picked {
		switch flagOptions[idx] {
		case "array":
			b = b.IsArray()
		case "nullable":
			b = b.Null()
		case "required":
			b = b.Required()
		}
	}
	return b, nil
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errFieldRequired
	}
	return nil
}

func optionalNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errNotANumber
	}
	return nil
}

func optionalPositive(s string) error {
	if err := optionalNumber(s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if v, _ := strconv.ParseFloat(s, 64); v <= 0 {
		return errNotPositive
	}
	return nil
}

func optionalRegexp(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := regexp.Compile(s); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func keyNames(keys []apiprop.Key) []string {
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = string(key)
	}
	return names
}
