package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter"
	"github.com/benjaminschreck/go-docxwriter/pkg/docxwriter/model"
)

const version = "0.1.0"

// Configuration keys, shared by flags, environment and config file.
const (
	keyConfig       = "config"
	keyLogLevel     = "log-level"
	keyStrict       = "strict"
	keyListGrouping = "list-grouping"
	keyLockTimeout  = "lock-timeout"
)

var (
	pathStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	rangeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

type cli struct {
	v    *viper.Viper
	out  io.Writer
	root *cobra.Command
}

func newCLI(out io.Writer) *cli {
	c := &cli{v: viper.New(), out: out}
	c.root = &cobra.Command{
		Use:   "docxwriter",
		Short: "Write .docx documents from YAML models",
		Long: `docxwriter turns a YAML document model into a WordprocessingML package.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (DOCXWRITER_*)
3. Configuration file (--config, or ./docxwriter.yaml)
4. Defaults`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadConfig,
	}

	defaults := docxwriter.DefaultConfig()
	flags := c.root.PersistentFlags()
	flags.String(keyConfig, "", "Configuration file")
	flags.String(keyLogLevel, defaults.LogLevel, "Log level (debug|info|warn|error|off)")
	flags.Bool(keyStrict, defaults.StrictMode, "Fail on elements a writer cannot handle")
	flags.String(keyListGrouping, defaults.ListGrouping, "Grouping of reused list ids (merge|split)")
	flags.Duration(keyLockTimeout, defaults.LockTimeout, "How long to wait for the output file lock")

	c.root.AddCommand(c.renderCommand(), c.xmlCommand(), c.boundariesCommand(), c.versionCommand())
	return c
}

// loadConfig layers flags, environment and config file and installs the
// result as the global configuration.
func (c *cli) loadConfig(cmd *cobra.Command, args []string) error {
	if err := c.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	c.v.SetEnvPrefix("DOCXWRITER")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	_ = c.v.BindEnv(keyStrict, docxwriter.EnvStrictMode)

	if path := c.v.GetString(keyConfig); path != "" {
		c.v.SetConfigFile(path)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		c.v.SetConfigName("docxwriter")
		c.v.SetConfigType("yaml")
		c.v.AddConfigPath(".")
		// A missing default config file is fine
		_ = c.v.ReadInConfig()
	}

	config := &docxwriter.Config{
		LogLevel:     strings.ToLower(c.v.GetString(keyLogLevel)),
		StrictMode:   c.v.GetBool(keyStrict),
		ListGrouping: strings.ToLower(c.v.GetString(keyListGrouping)),
		LockTimeout:  c.v.GetDuration(keyLockTimeout),
	}
	if err := config.Validate(); err != nil {
		return err
	}
	docxwriter.SetGlobalConfig(config)
	docxwriter.Debug("configuration: %+v", *config)
	return nil
}

func (c *cli) renderCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render <model.yaml> [model.yaml...]",
		Short: "Write a .docx package for each model",
		Long: `Write a .docx package for each model. With a single model, --output names
the package; otherwise each package is written next to its model.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && len(args) > 1 {
				return fmt.Errorf("--output needs exactly one model, got %d", len(args))
			}
			errs := docxwriter.NewMultiError()
			for _, in := range args {
				out := output
				if out == "" {
					out = strings.TrimSuffix(in, filepath.Ext(in)) + ".docx"
				}
				doc, err := model.LoadFile(in)
				if err != nil {
					errs.Add(fmt.Errorf("%s: %w", in, err))
					continue
				}
				if err := docxwriter.NewWriter(doc, docxwriter.GetGlobalConfig()).Save(cmd.Context(), out); err != nil {
					errs.Add(fmt.Errorf("%s: %w", in, err))
					continue
				}
				fmt.Fprintf(c.out, "%s -> %s\n", in, out)
			}
			return errs.Err()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	return cmd
}

func (c *cli) xmlCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "xml <model.yaml>",
		Short: "Print word/document.xml for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := model.LoadFile(args[0])
			if err != nil {
				return err
			}
			out, err := docxwriter.NewWriter(doc, docxwriter.GetGlobalConfig()).DocumentXML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.out, string(out))
			return err
		},
	}
}

func (c *cli) boundariesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "boundaries <model.yaml>",
		Short: "Show the list groups found in each container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := model.LoadFile(args[0])
			if err != nil {
				return err
			}
			reports := docxwriter.ReportBoundaries(doc, docxwriter.GetGlobalConfig())
			if len(reports) == 0 {
				fmt.Fprintln(c.out, "no lists")
				return nil
			}
			for _, report := range reports {
				fmt.Fprintln(c.out, pathStyle.Render(report.Path))
				for _, g := range report.Groups {
					fmt.Fprintf(c.out, "  %s %s\n",
						keyStyle.Render(g.Key),
						rangeStyle.Render(fmt.Sprintf("first=%d last=%d", g.First, g.Last)))
				}
			}
			return nil
		},
	}
}

func (c *cli) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(c.out, "docxwriter version %s\n", version)
		},
	}
}
