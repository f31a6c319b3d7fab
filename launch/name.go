package launch

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

const (
	Sep       = "/"
	GlobalNS  = "/"
	PrivateNS = "~"
	Remap     = ":="
)

// Tokens may start with a letter or underscore, never a digit. Private
// names are written "~/token"; "~" alone names the node itself.
var (
	validName      = regexp.MustCompile(`^(~|~(/[a-zA-Z_]\w*)+|/?[a-zA-Z_]\w*(/[a-zA-Z_]\w*)*)$`)
	validNamespace = regexp.MustCompile(`^/([a-zA-Z_]\w*/)*[a-zA-Z_]\w*$`)
)

// NameMap maps launch argument names to their values.
type NameMap map[string]string

// isValidName checks a ROS 2 topic name: no empty tokens, no trailing
// separator.
func isValidName(name string) bool {
	return validName.MatchString(name)
}

func isValidNamespace(name string) bool {
	if name == GlobalNS {
		return true
	}
	return validNamespace.MatchString(name)
}

func isGlobalName(name string) bool {
	return len(name) > 0 && name[0:1] == GlobalNS
}

func isPrivateName(name string) bool {
	return len(name) > 0 && name[0:1] == PrivateNS
}

// Remove sequential separators
func canonicalizeName(name string) string {
	if name == "" || name == GlobalNS {
		return name
	}
	components := []string{}
	for _, word := range strings.Split(name, Sep) {
		if len(word) > 0 {
			components = append(components, word)
		}
	}
	if isGlobalName(name) {
		return GlobalNS + strings.Join(components, Sep)
	}
	return strings.Join(components, Sep)
}

// QualifyNamespace turns a node namespace into its absolute form, so that
// "vesc" and "/vesc/" both become "/vesc". An empty namespace is the root.
func QualifyNamespace(namespace string) (string, error) {
	if namespace == "" {
		return GlobalNS, nil
	}
	if isPrivateName(namespace) {
		return "", errors.Wrapf(ErrInvalidName, "namespace %q must not be private", namespace)
	}
	ns := canonicalizeName(namespace)
	if !isGlobalName(ns) {
		ns = GlobalNS + ns
	}
	if !isValidNamespace(ns) {
		return "", errors.Wrapf(ErrInvalidName, "namespace %q", namespace)
	}
	return ns, nil
}

// ValidateNodeName checks a node name. Node names are a single token.
func ValidateNodeName(name string) error {
	if name == "" || strings.Contains(name, Sep) || isPrivateName(name) || !isValidName(name) {
		return errors.Wrapf(ErrInvalidName, "node name %q", name)
	}
	return nil
}

// ParseArguments splits command line tokens into name:=value launch
// arguments and everything else.
func ParseArguments(args []string) (NameMap, []string, error) {
	mapping := make(NameMap)
	rest := make([]string, 0)
	for _, arg := range args {
		components := strings.SplitN(arg, Remap, 2)
		if len(components) != 2 {
			rest = append(rest, arg)
			continue
		}
		key := components[0]
		if key == "" {
			return nil, nil, errors.Errorf("malformed launch argument %q", arg)
		}
		mapping[key] = components[1]
	}
	return mapping, rest, nil
}
