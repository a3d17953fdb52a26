package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/config"
)

var schemaOutDir string

var schemaCmd = &cobra.Command{
	Use:   "schema [config|layout]",
	Short: "Print the JSON schema of the config file or of layout documents",
	Long: `Print a JSON schema for editor completion and validation.

With --out, both schemas are written to the directory as
config.schema.json and layout.schema.json.

Examples:
  dockyard schema layout > layout.schema.json
  dockyard schema --out ~/.config/dockyard`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"config", "layout"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutDir, "out", "o", "", "write both schemas to this directory")
}

func runSchema(cmd *cobra.Command, args []string) error {
	if schemaOutDir != "" {
		if err := config.WriteSchemaFiles(schemaOutDir); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote schemas to %s\n", schemaOutDir)
		return nil
	}

	which := "config"
	if len(args) > 0 {
		which = args[0]
	}
	return writeSchema(cmd.OutOrStdout(), which)
}

func writeSchema(w io.Writer, which string) error {
	var schema *jsonschema.Schema
	switch which {
	case "config":
		schema = config.GenerateSchema()
	case "layout":
		schema = config.GenerateLayoutSchema()
	default:
		return fmt.Errorf("unknown schema %q (use: config, layout)", which)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(schema)
}
