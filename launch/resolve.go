package launch

import (
	"strings"

	"github.com/pkg/errors"
)

const maxOpaqueDepth = 16

// ResolvedAction is an action with every substitution performed.
type ResolvedAction interface {
	Kind() string
	// Command is the ros2 command line equivalent to the action.
	Command() []string
}

type ResolvedNode struct {
	Name       string      `json:"name"`
	Namespace  string      `json:"namespace"`
	Package    string      `json:"package"`
	Executable string      `json:"executable"`
	Parameters []string    `json:"parameters"`
	Remappings []Remapping `json:"remappings"`
}

func (ResolvedNode) Kind() string { return "Node" }

func (n ResolvedNode) Command() []string {
	cmd := []string{"ros2", "run", n.Package, n.Executable, "--ros-args",
		"-r", "__node" + Remap + n.Name,
		"-r", "__ns" + Remap + n.Namespace,
	}
	for _, p := range n.Parameters {
		cmd = append(cmd, "--params-file", p)
	}
	for _, r := range n.Remappings {
		cmd = append(cmd, "-r", r.String())
	}
	return cmd
}

type ResolvedArgument struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ResolvedInclusion struct {
	Path      string             `json:"path"`
	Arguments []ResolvedArgument `json:"arguments"`
}

func (ResolvedInclusion) Kind() string { return "IncludeLaunchDescription" }

func (i ResolvedInclusion) Command() []string {
	cmd := []string{"ros2", "launch", i.Path}
	for _, a := range i.Arguments {
		cmd = append(cmd, a.Name+Remap+a.Value)
	}
	return cmd
}

// Argument returns the value forwarded under name.
func (i ResolvedInclusion) Argument(name string) (string, bool) {
	for _, a := range i.Arguments {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Resolve walks desc in order against ctx. Declared arguments without a
// value take their default or fail; opaque functions are expanded in
// place. The first error aborts resolution and nothing is returned;
// substitution and opaque function errors are returned as they are.
func Resolve(desc *Description, ctx *Context) ([]ResolvedAction, error) {
	if desc == nil {
		return nil, errors.New("nil launch description")
	}
	return resolveActions(desc.Actions, ctx, 0)
}

func resolveActions(actions []Action, ctx *Context, depth int) ([]ResolvedAction, error) {
	log := ModuleLogger("launch")
	var resolved []ResolvedAction
	for _, action := range actions {
		switch a := action.(type) {
		case DeclareLaunchArgument:
			if err := declare(a, ctx); err != nil {
				return nil, err
			}
		case OpaqueFunction:
			more, err := expand(a, ctx, depth)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, more...)
		case Node:
			n, err := resolveNode(a, ctx)
			if err != nil {
				return nil, err
			}
			log.Debugf("resolved node %s%s", joinNamespace(n.Namespace), n.Name)
			resolved = append(resolved, n)
		case IncludeLaunchDescription:
			inc, err := resolveInclusion(a, ctx)
			if err != nil {
				return nil, err
			}
			log.Debugf("resolved include %s", inc.Path)
			resolved = append(resolved, inc)
		default:
			return nil, errors.Errorf("unsupported launch action %T", action)
		}
	}
	return resolved, nil
}

func declare(a DeclareLaunchArgument, ctx *Context) error {
	if a.Name == "" {
		return errors.New("launch argument declared without a name")
	}
	if ctx.HasConfiguration(a.Name) {
		return nil
	}
	if a.Default == nil {
		return errors.Wrapf(ErrArgumentNotSet, "required launch argument %q was not provided", a.Name)
	}
	ctx.SetConfiguration(a.Name, *a.Default)
	return nil
}

func expand(a OpaqueFunction, ctx *Context, depth int) ([]ResolvedAction, error) {
	if a.Function == nil {
		return nil, errors.New("opaque function without a function")
	}
	if depth >= maxOpaqueDepth {
		return nil, errors.Errorf("opaque functions nested deeper than %d", maxOpaqueDepth)
	}
	actions, err := a.Function(ctx)
	if err != nil {
		return nil, err
	}
	return resolveActions(actions, ctx, depth+1)
}

func resolveNode(a Node, ctx *Context) (ResolvedNode, error) {
	if err := ValidateNodeName(a.Name); err != nil {
		return ResolvedNode{}, err
	}
	if a.Package == "" || a.Executable == "" {
		return ResolvedNode{}, errors.Errorf("node %q needs a package and an executable", a.Name)
	}
	ns, err := QualifyNamespace(a.Namespace)
	if err != nil {
		return ResolvedNode{}, errors.Wrapf(err, "node %q", a.Name)
	}
	params, err := Perform(ctx, a.Parameters)
	if err != nil {
		return ResolvedNode{}, err
	}
	remappings := make([]Remapping, 0, len(a.Remappings))
	for _, r := range a.Remappings {
		if err := r.Validate(); err != nil {
			return ResolvedNode{}, errors.Wrapf(err, "node %q", a.Name)
		}
		remappings = append(remappings, r)
	}
	return ResolvedNode{
		Name:       a.Name,
		Namespace:  ns,
		Package:    a.Package,
		Executable: a.Executable,
		Parameters: params,
		Remappings: remappings,
	}, nil
}

func resolveInclusion(a IncludeLaunchDescription, ctx *Context) (ResolvedInclusion, error) {
	if a.Source == nil {
		return ResolvedInclusion{}, errors.New("include without a launch file source")
	}
	path, err := a.Source.Perform(ctx)
	if err != nil {
		return ResolvedInclusion{}, err
	}
	args := make([]ResolvedArgument, 0, len(a.Arguments))
	for _, arg := range a.Arguments {
		if arg.Value == nil {
			return ResolvedInclusion{}, errors.Errorf("include %s: argument %q has no value", path, arg.Name)
		}
		v, err := arg.Value.Perform(ctx)
		if err != nil {
			return ResolvedInclusion{}, err
		}
		args = append(args, ResolvedArgument{Name: arg.Name, Value: v})
	}
	return ResolvedInclusion{Path: path, Arguments: args}, nil
}

func joinNamespace(ns string) string {
	if strings.HasSuffix(ns, Sep) {
		return ns
	}
	return ns + Sep
}
