package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-apiprop/internal/config"
	"github.com/goliatone/go-apiprop/internal/wizard"
	"github.com/goliatone/go-apiprop/pkg/jsonschema"
	"github.com/goliatone/go-apiprop/pkg/openapi"
)

// newDriver is replaced in tests.
var newDriver = func(out io.Writer) wizard.PromptDriver {
	return wizard.NewSurveyDriver(out)
}

type wizardOutput struct {
	Field    string `json:"field"`
	Required bool   `json:"required"`
	Schema   any    `json:"schema"`
}

// Wizard returns the wizard command.
func Wizard(flags *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Author a property interactively and print its schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := resolve(cmd, flags)
			if err != nil {
				return err
			}

			res, err := wizard.Run(cmd.Context(), newDriver(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			out := wizardOutput{Field: res.Field}
			switch cfg.Dialect {
			case config.DialectJSONSchema:
				prop := jsonschema.Decorate(res.Builder)
				out.Schema, out.Required = prop.Schema, prop.Required
			default:
				prop := openapi.Decorate(res.Builder)
				out.Schema, out.Required = prop.Schema, prop.Required
			}

			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("wizard: encode: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
