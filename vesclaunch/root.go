package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xray-vehicle/vehicle-launch/ament"
	"github.com/xray-vehicle/vehicle-launch/launch"
	"github.com/xray-vehicle/vehicle-launch/vehicle"
)

type options struct {
	verbose    bool
	configPath string
	argsFile   string
	format     string

	cfg Config
	idx *ament.Index
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "vesclaunch",
		Short: "Resolve the vesc launch graph of the x-ray vehicle",
		Long: `vesclaunch resolves the vesc driver node and the vesc_interface inclusion
against the packages installed under AMENT_PREFIX_PATH.

Launch arguments are given as name:=value, e.g.
  vesclaunch describe vehicle_param_file:=/etc/xray/vehicle.param.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}
	root.SetOut(out)

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&opts.argsFile, "args-file", "", "JSON object of launch arguments")
	root.PersistentFlags().StringVar(&opts.format, "format", "text", "output format: text or json")

	root.AddCommand(
		newDescribeCmd(opts),
		newCommandsCmd(opts),
		newCheckCmd(opts),
		newPackagesCmd(opts),
	)
	return root
}

func (o *options) setup() error {
	if o.format != "text" && o.format != "json" {
		return errors.Errorf("unknown format %q", o.format)
	}
	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	level, _ := logrus.ParseLevel(cfg.LogLevel)
	if o.verbose {
		level = logrus.DebugLevel
	}
	launch.SetLogger(launch.NewLogger(level))

	o.idx = ament.NewIndexFromEnv()
	for pkg, share := range cfg.Packages {
		o.idx.Overrides[pkg] = share
	}
	launch.ModuleLogger("vesclaunch").Debugf("package prefixes: %v", o.idx.Prefixes)
	return nil
}

// context builds the launch context. Command line arguments win over the
// args file, which wins over the config file.
func (o *options) context(args []string) (*launch.Context, error) {
	ctx := launch.NewContext(o.idx)
	ctx.SetConfigurations(launch.NameMap(o.cfg.Arguments))

	if o.argsFile != "" {
		data, err := ioutil.ReadFile(o.argsFile)
		if err != nil {
			return nil, errors.Wrap(err, "read args file")
		}
		fileArgs, err := launch.ParseArgumentsJSON(data)
		if err != nil {
			return nil, errors.Wrapf(err, "args file %s", o.argsFile)
		}
		ctx.SetConfigurations(fileArgs)
	}

	cliArgs, rest, err := launch.ParseArguments(args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, errors.Errorf("unexpected arguments %v, launch arguments are name:=value", rest)
	}
	ctx.SetConfigurations(cliArgs)

	for _, name := range ctx.ConfigurationNames() {
		v, _ := ctx.Configuration(name)
		launch.ModuleLogger("vesclaunch").Debugf("launch argument %s=%s", name, v)
	}
	return ctx, nil
}

func (o *options) resolve(args []string) ([]launch.ResolvedAction, error) {
	ctx, err := o.context(args)
	if err != nil {
		return nil, err
	}
	return launch.Resolve(vehicle.VescDescription(), ctx)
}

func newDescribeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [name:=value ...]",
		Short: "Print the resolved launch actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := opts.resolve(args)
			if err != nil {
				return err
			}
			if opts.format == "json" {
				return writeJSON(cmd.OutOrStdout(), actions)
			}
			return writeText(cmd.OutOrStdout(), actions)
		},
	}
}

func newCommandsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "commands [name:=value ...]",
		Short: "Print the ros2 command line of each launch action",
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := opts.resolve(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.format == "json" {
				lines := make([][]string, 0, len(actions))
				for _, a := range actions {
					lines = append(lines, a.Command())
				}
				return json.NewEncoder(out).Encode(lines)
			}
			for _, a := range actions {
				fmt.Fprintln(out, shellJoin(a.Command()))
			}
			return nil
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [name:=value ...]",
		Short: "Resolve the launch graph and check every parameter file it references",
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := opts.resolve(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range parameterFiles(actions) {
				pf, err := launch.CheckParameterFile(path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(out, "ok   %s (%s)\n", pf.Path, strings.Join(pf.Nodes, ", "))
			}
			if failed > 0 {
				return errors.Errorf("%d parameter file(s) failed the check", failed)
			}
			return nil
		},
	}
}

func newPackagesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List the packages visible through AMENT_PREFIX_PATH and the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := opts.idx.Packages()
			if err != nil {
				return err
			}
			if opts.format == "json" {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(names)
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// parameterFiles collects node parameter files and every *_param_file
// argument forwarded to an inclusion, without duplicates.
func parameterFiles(actions []launch.ResolvedAction) []string {
	seen := map[string]bool{}
	var paths []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	for _, a := range actions {
		switch a := a.(type) {
		case launch.ResolvedNode:
			for _, p := range a.Parameters {
				add(p)
			}
		case launch.ResolvedInclusion:
			for _, arg := range a.Arguments {
				if strings.HasSuffix(arg.Name, "_param_file") {
					add(arg.Value)
				}
			}
		}
	}
	return paths
}

type jsonAction struct {
	Kind   string                `json:"kind"`
	Action launch.ResolvedAction `json:"action"`
}

func writeJSON(w io.Writer, actions []launch.ResolvedAction) error {
	out := make([]jsonAction, 0, len(actions))
	for _, a := range actions {
		out = append(out, jsonAction{Kind: a.Kind(), Action: a})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeText(w io.Writer, actions []launch.ResolvedAction) error {
	for _, a := range actions {
		switch a := a.(type) {
		case launch.ResolvedNode:
			fmt.Fprintf(w, "Node %s\n", a.Name)
			fmt.Fprintf(w, "  namespace:  %s\n", a.Namespace)
			fmt.Fprintf(w, "  package:    %s\n", a.Package)
			fmt.Fprintf(w, "  executable: %s\n", a.Executable)
			fmt.Fprintln(w, "  parameters:")
			for _, p := range a.Parameters {
				fmt.Fprintf(w, "    - %s\n", p)
			}
			fmt.Fprintln(w, "  remappings:")
			for _, r := range a.Remappings {
				fmt.Fprintf(w, "    - %s\n", r)
			}
		case launch.ResolvedInclusion:
			fmt.Fprintf(w, "IncludeLaunchDescription %s\n", a.Path)
			for _, arg := range a.Arguments {
				fmt.Fprintf(w, "  %s%s%s\n", arg.Name, launch.Remap, arg.Value)
			}
		default:
			return errors.Errorf("cannot print %s", a.Kind())
		}
	}
	return nil
}

func shellJoin(argv []string) string {
	quoted := make([]string, 0, len(argv))
	for _, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\n'\"\\$") {
			a = strconv.Quote(a)
		}
		quoted = append(quoted, a)
	}
	return strings.Join(quoted, " ")
}
