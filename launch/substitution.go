package launch

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Substitution is a value that is only known once a Context is available.
type Substitution interface {
	Perform(ctx *Context) (string, error)
	String() string
}

// Text is a literal value.
type Text string

func (t Text) Perform(*Context) (string, error) {
	return string(t), nil
}

func (t Text) String() string {
	return fmt.Sprintf("'%s'", string(t))
}

// LaunchConfiguration reads a launch argument from the context.
type LaunchConfiguration struct {
	Name string
}

func (l LaunchConfiguration) Perform(ctx *Context) (string, error) {
	return ctx.Configuration(l.Name)
}

func (l LaunchConfiguration) String() string {
	return fmt.Sprintf("LaunchConfig('%s')", l.Name)
}

// FindPackageShare evaluates to the share directory of an installed package.
type FindPackageShare struct {
	Package string
}

func (f FindPackageShare) Perform(ctx *Context) (string, error) {
	return ctx.FindPackageShare(f.Package)
}

func (f FindPackageShare) String() string {
	return fmt.Sprintf("FindPackageShare('%s')", f.Package)
}

// PathJoin joins the results of its parts as filesystem path elements.
type PathJoin []Substitution

func (p PathJoin) Perform(ctx *Context) (string, error) {
	elems := make([]string, 0, len(p))
	for _, s := range p {
		v, err := s.Perform(ctx)
		if err != nil {
			return "", err
		}
		elems = append(elems, v)
	}
	return filepath.Join(elems...), nil
}

func (p PathJoin) String() string {
	parts := make([]string, 0, len(p))
	for _, s := range p {
		parts = append(parts, s.String())
	}
	return "PathJoin(" + strings.Join(parts, ", ") + ")"
}

// Perform evaluates all of subs, stopping at the first failure.
func Perform(ctx *Context, subs []Substitution) ([]string, error) {
	values := make([]string, 0, len(subs))
	for _, s := range subs {
		v, err := s.Perform(ctx)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
