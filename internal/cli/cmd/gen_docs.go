package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

// docFormat renders the command tree into dir.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(root *cobra.Command, dir string) error
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: userManDir,
		generate: func(root *cobra.Command, dir string) error {
			now := time.Now()
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   "DOCKYARD",
				Section: "1",
				Source:  "dockyard " + buildInfo.Version,
				Manual:  "Dockyard Manual",
				Date:    &now,
			}, dir)
		},
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "./docs", nil },
		generate:   doc.GenMarkdownTree,
	},
	"yaml": {
		ext:        ".yaml",
		defaultDir: func() (string, error) { return "./docs", nil },
		generate:   doc.GenYamlTree,
	},
}

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate reference docs for the layout commands",
	Long: `Generate man pages, markdown or YAML for every dockyard command.

Man pages go to $XDG_DATA_HOME/man/man1 (~/.local/share/man/man1) unless
--output is set; markdown and YAML go to ./docs.

Examples:
  dockyard gen-docs
  dockyard gen-docs --format markdown --output ./site/cli`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return generateDocs(cmd.OutOrStdout(), rootCmd, genDocsFormat, genDocsOutputDir)
	},
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown, yaml")
}

func generateDocs(w io.Writer, root *cobra.Command, format, dir string) error {
	f, ok := docFormats[format]
	if !ok {
		return fmt.Errorf("unsupported format %q (use: man, markdown, yaml)", format)
	}
	if dir == "" {
		var err error
		if dir, err = f.defaultDir(); err != nil {
			return fmt.Errorf("resolve %s directory: %w", format, err)
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Keeps output reproducible.
	root.DisableAutoGenTag = true
	if err := f.generate(root, dir); err != nil {
		return fmt.Errorf("generate %s docs: %w", format, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("list generated docs: %w", err)
	}
	fmt.Fprintf(w, "Generated %s docs in %s\n", format, dir)
	for _, e := range entries {
		if filepath.Ext(e.Name()) == f.ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
	if format == "man" {
		fmt.Fprintln(w, "Run 'mandb' if 'man dockyard' does not find them.")
	}
	return nil
}

// userManDir returns $XDG_DATA_HOME/man/man1, defaulting to ~/.local/share/man/man1.
func userManDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "man", "man1"), nil
}
