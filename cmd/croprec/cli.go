package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"cropRecommendation/business/catalog"
	"cropRecommendation/business/compatibility"
	"cropRecommendation/business/preset"
	"cropRecommendation/domain"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const usageLine = "croprec <N> <P> <K> <climate> <humidity> <ph> <rainfall> <soil_type> <topography> <water_availability>"

var argNames = []string{
	"N", "P", "K", "climate", "humidity", "ph", "rainfall",
	"soil_type", "topography", "water_availability",
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "An error occurred: %v\n", r)
			code = 1
		}
	}()

	root := newRootCmd(stdout)
	root.SetArgs(keepNumbersPositional(root, args))
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "Usage: %s\n", usageLine)
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	return 0
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var pretty bool
	var xlsxPath string

	scorer := compatibility.NewScorer(catalog.Default())

	cmd := &cobra.Command{
		Use:   usageLine,
		Short: "Rank reference crops by compatibility with field conditions",
		Long: `Score every reference crop against ten field measurements and print the
compatible and incompatible crops as JSON.

Example: croprec 75 45 40 Tropical 80 6.5 200 Clayey Flat High`,
		Args:          exactArgs(len(argNames)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := parseFeatures(args)
			if err != nil {
				return err
			}

			ranking := scorer.RankAll(features)

			if xlsxPath != "" {
				if err := writeRankingXLSX(xlsxPath, ranking); err != nil {
					return fmt.Errorf("failed to write workbook: %w", err)
				}
			}

			return writeJSON(stdout, ranking, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also write the ranking to an Excel workbook at this path")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Msg: err.Error()}
	})

	cmd.AddCommand(
		newCatalogCmd(stdout),
		newPresetsCmd(stdout),
		newExplainCmd(stdout, scorer),
	)

	return cmd
}

func newCatalogCmd(stdout io.Writer) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the reference crop profiles",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := catalog.Default().Profiles()

			switch format {
			case "yaml":
				enc := yaml.NewEncoder(stdout)
				enc.SetIndent(2)
				if err := enc.Encode(profiles); err != nil {
					return err
				}
				return enc.Close()
			case "json":
				return writeJSON(stdout, profiles, true)
			default:
				return &UsageError{Msg: fmt.Sprintf("unknown format %q: use yaml or json", format)}
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")

	return cmd
}

func newPresetsCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the named NPK fertilizer presets",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range preset.List() {
				marker := ""
				if p.Default {
					marker = " (default)"
				}
				if _, err := fmt.Fprintf(stdout, "%-28s N=%g P=%g K=%g  %s%s\n",
					p.Name, p.Nitrogen, p.Phosphorus, p.Potassium, p.Label, marker); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newExplainCmd(stdout io.Writer, scorer *compatibility.Scorer) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <crop> <N> <P> <K> <climate> <humidity> <ph> <rainfall> <soil_type> <topography> <water_availability>",
		Short: "Show how one crop's compatibility was reached",
		Args:  exactArgs(len(argNames) + 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := parseFeatures(args[1:])
			if err != nil {
				return err
			}

			breakdown, ok := scorer.Explain(args[0], features)
			if !ok {
				return fmt.Errorf("unknown crop %q", args[0])
			}

			return writeJSON(stdout, breakdown, true)
		},
	}
}

// keepNumbersPositional reorders args so that negative numbers such as -5
// reach the command as positional values. Flags move ahead of a "--"
// terminator and a leading subcommand name stays first so cobra can still
// resolve it.
func keepNumbersPositional(root *cobra.Command, args []string) []string {
	if !slices.ContainsFunc(args, isNegativeNumber) || slices.Contains(args, "--") {
		return args
	}

	cmd := root
	var head, flags, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if isNegativeNumber(arg) || !strings.HasPrefix(arg, "-") {
			if cmd == root && len(positional) == 0 {
				if sub := subcommand(root, arg); sub != nil {
					cmd = sub
					head = append(head, arg)
					continue
				}
			}
			positional = append(positional, arg)
			continue
		}

		flags = append(flags, arg)
		if flagTakesValue(cmd, arg) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	out := append(head, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

func isNegativeNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

func subcommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return c
		}
	}
	return nil
}

// flagTakesValue reports whether arg is a flag whose value is the next
// argument, as with "--xlsx out.xlsx".
func flagTakesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = cmd.Flags().Lookup(name)
	} else if name := strings.TrimPrefix(arg, "-"); len(name) == 1 {
		f = cmd.Flags().ShorthandLookup(name)
	}

	return f != nil && f.NoOptDefVal == ""
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{Msg: fmt.Sprintf("expected %d arguments, got %d", n, len(args))}
		}
		return nil
	}
}

// parseFeatures turns the ten positional arguments into a scoring input.
func parseFeatures(args []string) (domain.FeatureInput, error) {
	if len(args) != len(argNames) {
		return domain.FeatureInput{}, &UsageError{Msg: fmt.Sprintf("expected %d arguments, got %d", len(argNames), len(args))}
	}

	numbers := map[int]float64{}
	for _, i := range []int{0, 1, 2, 4, 5, 6} {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return domain.FeatureInput{}, &ParseError{Field: argNames[i], Value: args[i], Err: err}
		}
		numbers[i] = v
	}

	return domain.NewFeatureInput(
		numbers[0], numbers[1], numbers[2],
		args[3],
		numbers[4], numbers[5], numbers[6],
		args[7], args[8], args[9],
	), nil
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
