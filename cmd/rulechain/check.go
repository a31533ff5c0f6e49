package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulechain/pkg/schema"
	"github.com/dmitrymomot/rulechain/pkg/validator"
)

func newCheckCmd(a *app) *cobra.Command {
	var schemaPath, schemaName, requestPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a JSON request against a schema",
		Long: `Validate a JSON request document against a schema and print the JSON result.

The schema is read from a YAML or JSON file (--schema) or from the configured
schema store (--name). Use "-" as the request path to read stdin.

Exit status is 0 when the request is valid, 1 when it is invalid and 2 when
the schema, the request or the configuration cannot be used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (schemaPath == "") == (schemaName == "") {
				return usageError(errors.New("exactly one of --schema and --name is required"))
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			log := a.newLogger(cfg)

			doc, err := func() (map[string]string, error) {
				if schemaPath != "" {
					data, err := os.ReadFile(schemaPath)
					if err != nil {
						return nil, err
					}
					return schema.Decode(data)
				}
				store, _, closeStore, err := openStore(cmd.Context(), cfg.Schemas, log)
				defer closeStore()
				if err != nil {
					return nil, err
				}
				return store.Get(cmd.Context(), schemaName)
			}()
			if err != nil {
				return usageError(err)
			}

			request, err := readRequest(a.stdin, requestPath)
			if err != nil {
				return usageError(err)
			}

			v := validator.New(validator.WithLogger(log), validator.WithCacheSize(0))
			res, err := v.Validate(request, doc)
			if err != nil {
				return usageError(err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return usageError(err)
			}
			if !res.OK {
				return &exitError{code: exitInvalid}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema document (YAML or JSON)")
	cmd.Flags().StringVarP(&schemaName, "name", "n", "", "name of a schema in the configured store")
	cmd.Flags().StringVarP(&requestPath, "request", "r", "", `request JSON document, "-" for stdin`)
	_ = cmd.MarkFlagRequired("request")
	return cmd
}

func readRequest(stdin io.Reader, path string) (map[string]any, error) {
	if path == "-" {
		return schema.DecodeRequest(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return schema.DecodeRequest(f)
}
