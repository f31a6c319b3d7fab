package launch

import (
	"sort"

	"github.com/pkg/errors"
)

// PackageResolver finds the installed share directory of a package.
type PackageResolver interface {
	FindPackageShare(pkg string) (string, error)
}

// Context carries the values substitutions are performed against: the
// launch configurations set so far and the package resolver.
type Context struct {
	configurations NameMap
	resolver       PackageResolver
}

func NewContext(resolver PackageResolver) *Context {
	return &Context{
		configurations: make(NameMap),
		resolver:       resolver,
	}
}

// SetConfiguration sets a launch configuration, replacing any earlier value.
func (c *Context) SetConfiguration(name, value string) {
	c.configurations[name] = value
}

// SetConfigurations sets every entry of args.
func (c *Context) SetConfigurations(args NameMap) {
	for k, v := range args {
		c.configurations[k] = v
	}
}

// HasConfiguration reports whether name has a value.
func (c *Context) HasConfiguration(name string) bool {
	_, ok := c.configurations[name]
	return ok
}

func (c *Context) Configuration(name string) (string, error) {
	value, ok := c.configurations[name]
	if !ok {
		return "", errors.Wrapf(ErrArgumentNotSet, "%q", name)
	}
	return value, nil
}

// ConfigurationNames returns the names of all set configurations, sorted.
func (c *Context) ConfigurationNames() []string {
	names := make([]string, 0, len(c.configurations))
	for k := range c.configurations {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (c *Context) FindPackageShare(pkg string) (string, error) {
	if c.resolver == nil {
		return "", errors.Wrapf(ErrPackageNotFound, "%q: no package resolver", pkg)
	}
	return c.resolver.FindPackageShare(pkg)
}
