// Command layoutdump reads a JSON tree description, runs a layout pass
// over it, and prints the computed geometry, either as an indented text
// dump or as JSON.
//
// Example:
//
//	echo '{"width":100,"height":50,"children":[{"name":"a","grow":1},{"name":"b","grow":1}]}' | layoutdump
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/grindlemire/go-layout"
	"github.com/grindlemire/go-layout/arena"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "layoutdump [file]",
		Short:         "compute and print layout for a JSON tree description",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return run(cmd.OutOrStdout(), in, options{
				width:   float32(v.GetFloat64("width")),
				height:  float32(v.GetFloat64("height")),
				asJSON:  v.GetBool("json"),
				verbose: v.GetBool("verbose"),
			})
		},
	}

	flags := cmd.Flags()
	flags.Float64("width", 0, "available width in points (0 = unbounded)")
	flags.Float64("height", 0, "available height in points (0 = unbounded)")
	flags.Bool("json", false, "emit the computed geometry as JSON")
	flags.BoolP("verbose", "v", false, "trace the layout pass to stderr")

	v.SetEnvPrefix("LAYOUT")
	v.AutomaticEnv()
	cobra.CheckErr(v.BindPFlags(flags))
	return cmd
}

type options struct {
	width   float32
	height  float32
	asJSON  bool
	verbose bool
}

func run(out io.Writer, in io.Reader, opts options) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading tree description: %w", err)
	}
	var spec nodeSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("parsing tree description: %w", err)
	}

	tree := arena.New()
	names := make(map[layout.NodeID]string)
	root, err := spec.build(tree, names)
	if err != nil {
		return fmt.Errorf("building tree: %w", err)
	}

	available := layout.MaxContentSize()
	if opts.width > 0 {
		available.Width = layout.Definite(opts.width)
	}
	if opts.height > 0 {
		available.Height = layout.Definite(opts.height)
	}

	var computeOpts []layout.Option
	if opts.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
		computeOpts = append(computeOpts, layout.WithTrace(logger))
	}
	if err := tree.Compute(root, available, computeOpts...); err != nil {
		return fmt.Errorf("computing layout: %w", err)
	}

	if opts.asJSON {
		report := buildReport(tree, root, names)
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	dump(out, tree, root, names, 0)
	return nil
}

// nodeReport mirrors one node's computed geometry for JSON output.
type nodeReport struct {
	Name     string       `json:"name,omitempty"`
	Order    uint32       `json:"order"`
	X        float32      `json:"x"`
	Y        float32      `json:"y"`
	Width    float32      `json:"width"`
	Height   float32      `json:"height"`
	Children []nodeReport `json:"children,omitempty"`
}

func buildReport(tree *arena.Tree, node layout.NodeID, names map[layout.NodeID]string) nodeReport {
	l := tree.Layout(node)
	report := nodeReport{
		Name:   names[node],
		Order:  l.Order,
		X:      l.Location.X,
		Y:      l.Location.Y,
		Width:  l.Size.Width,
		Height: l.Size.Height,
	}
	for _, child := range tree.Children(node) {
		report.Children = append(report.Children, buildReport(tree, child, names))
	}
	return report
}

func dump(out io.Writer, tree *arena.Tree, node layout.NodeID, names map[layout.NodeID]string, depth int) {
	l := tree.Layout(node)
	name := names[node]
	if name == "" {
		name = "node"
	}
	fmt.Fprintf(out, "%s%s at (%g, %g) size %gx%g\n",
		strings.Repeat("  ", depth), name, l.Location.X, l.Location.Y, l.Size.Width, l.Size.Height)
	for _, child := range tree.Children(node) {
		dump(out, tree, child, names, depth+1)
	}
}
