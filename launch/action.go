package launch

import (
	"github.com/pkg/errors"
)

// Action is one entry of a launch description.
type Action interface {
	Kind() string
}

// Description is an ordered list of actions handed to Resolve.
type Description struct {
	Actions []Action
}

func NewDescription(actions ...Action) *Description {
	return &Description{Actions: actions}
}

// DeclareLaunchArgument declares an external input. An argument without a
// default must be set before the description is resolved.
type DeclareLaunchArgument struct {
	Name        string
	Default     *string
	Description string
}

func (DeclareLaunchArgument) Kind() string { return "DeclareLaunchArgument" }

// Remapping renames a topic between the node's own name and the system-wide one.
type Remapping struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (r Remapping) Validate() error {
	if r.From == "" || r.To == "" {
		return errors.Wrapf(ErrInvalidName, "remapping %s%s%s has an empty side", r.From, Remap, r.To)
	}
	if !isValidName(r.From) {
		return errors.Wrapf(ErrInvalidName, "remapping source %q", r.From)
	}
	if !isValidName(r.To) {
		return errors.Wrapf(ErrInvalidName, "remapping target %q", r.To)
	}
	return nil
}

func (r Remapping) String() string {
	return r.From + Remap + r.To
}

// Node describes one process to start.
type Node struct {
	Name       string
	Namespace  string
	Package    string
	Executable string
	Parameters []Substitution
	Remappings []Remapping
}

func (Node) Kind() string { return "Node" }

// Argument is a launch argument passed to an included description.
type Argument struct {
	Name  string
	Value Substitution
}

// IncludeLaunchDescription includes another launch file. The included
// file is never opened here; only its path and arguments are resolved.
type IncludeLaunchDescription struct {
	Source    Substitution
	Arguments []Argument
}

func (IncludeLaunchDescription) Kind() string { return "IncludeLaunchDescription" }

// OpaqueFunction defers building actions until a Context is available.
type OpaqueFunction struct {
	Function func(ctx *Context) ([]Action, error)
}

func (OpaqueFunction) Kind() string { return "OpaqueFunction" }
