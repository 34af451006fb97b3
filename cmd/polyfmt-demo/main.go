// polyfmt-demo exercises every polyfmt rendering style from one binary.
//
// Usage:
//
//	polyfmt-demo --format tree --debug
//	polyfmt-demo --config .polyfmt.yaml
//	polyfmt-demo choose
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkoosis/polyfmt/internal/logging"
	"github.com/dkoosis/polyfmt/pkg/choose"
	"github.com/dkoosis/polyfmt/polyfmt"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		formatName    string
		configPath    string
		debug         bool
		maxLineLength int
		padding       int
		verbosity     int
	)

	cmd := &cobra.Command{
		Use:           "polyfmt-demo",
		Short:         "Showcase polyfmt's rendering styles",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logging.Setup(verbosity)

			format := polyfmt.Plain
			opts := polyfmt.Options{}

			if configPath != "" {
				var err error
				format, opts, err = polyfmt.OptionsFromFile(configPath)
				if err != nil {
					return err
				}
			}

			// Explicit flags win over the config file.
			if cmd.Flags().Changed("format") {
				var err error
				format, err = polyfmt.ParseFormat(formatName)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("debug") {
				opts.Debug = debug
			}
			if cmd.Flags().Changed("max-line-length") {
				opts.MaxLineLength = maxLineLength
			}
			if cmd.Flags().Changed("padding") {
				opts.Padding = padding
			}

			f, err := polyfmt.New(format, opts)
			if err != nil {
				return err
			}
			showcase(f)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "plain", "output style: plain, tree, spinner, json, silent")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML options file")
	cmd.Flags().BoolVar(&debug, "debug", false, "render debug messages")
	cmd.Flags().IntVar(&maxLineLength, "max-line-length", 0, "wrap width (0 = terminal width)")
	cmd.Flags().IntVar(&padding, "padding", 0, "initial indentation")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase internal log verbosity")

	cmd.AddCommand(chooseCmd())
	return cmd
}

func showcase(f polyfmt.Formatter) {
	defer f.Finish()

	f.Println("Hello from polyfmt, look at how well it breaks up lines once they run past the configured width!")
	f.Error("Something that went wrong, with enough words attached to show continuation alignment.")

	guard := f.Indent()
	f.Success("A nested success message.")
	f.Warning("A nested warning message.")
	f.Debug("Only shown when --debug is set.")
	guard.Release()

	f.Spacer()
	f.Only(polyfmt.JSON).Println("machine users only")
	f.Only(polyfmt.Plain, polyfmt.Tree, polyfmt.Spinner).Println("human users only")
	f.Println("Demo complete.")
}

func chooseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "choose",
		Short: "Demo the interactive pickers",
		RunE: func(_ *cobra.Command, _ []string) error {
			fruit, err := choose.One(choose.FromMap(map[string]string{
				"Apples":   "apples",
				"Bananas":  "bananas",
				"Cherries": "cherries",
			}))
			if errors.Is(err, choose.ErrInterrupted) {
				polyfmt.Error("no fruit chosen")
				return nil
			}
			if err != nil {
				return err
			}
			polyfmt.Success(fmt.Sprintf("you picked %s (%s)", fruit.Label, fruit.Value))

			toggles, err := choose.Many([]choose.Item{
				{Label: "Laser Sharks"},
				{Label: "Hoverboards", Selected: true},
				{Label: "Time Travel"},
				{Label: "Jetpacks", Selected: true},
				{Label: "Teleporters"},
				{Label: "Gravity Boots"},
				{Label: "Moon Base", Selected: true},
				{Label: "Robot Sidekick"},
				{Label: "Invisibility Cloak"},
				{Label: "Unlimited Snacks", Selected: true},
			}, 4)
			if errors.Is(err, choose.ErrInterrupted) {
				polyfmt.Error("selection abandoned")
				return nil
			}
			if err != nil {
				return err
			}

			var picked []string
			for _, item := range toggles {
				if item.Selected {
					picked = append(picked, item.Label)
				}
			}
			polyfmt.Success("final selections: " + strings.Join(picked, ", "))
			polyfmt.Finish()
			return nil
		},
	}
}
