package launch

import (
	"io/ioutil"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const rosParametersKey = "ros__parameters"

// ParameterFile summarizes a checked ROS 2 parameter file.
type ParameterFile struct {
	Path string
	// Nodes are the node keys carrying a ros__parameters section, e.g. "/**".
	Nodes []string
}

// CheckParameterFile verifies that path is a YAML parameter file: a mapping
// of node names, each holding a ros__parameters mapping. Node names may be
// nested under namespace keys; Nodes reports them joined with "/".
func CheckParameterFile(path string) (*ParameterFile, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read parameter file")
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "parse parameter file %s", path)
	}
	if len(doc) == 0 {
		return nil, errors.Errorf("parameter file %s is empty", path)
	}
	pf := &ParameterFile{Path: path}
	if err := collectNodes(doc, "", &pf.Nodes); err != nil {
		return nil, errors.Wrapf(err, "parameter file %s", path)
	}
	sort.Strings(pf.Nodes)
	return pf, nil
}

// collectNodes walks namespace mappings down to the entries that carry
// ros__parameters.
func collectNodes(section map[string]interface{}, prefix string, nodes *[]string) error {
	for key, body := range section {
		name := joinKey(prefix, key)
		entry, ok := body.(map[string]interface{})
		if !ok {
			return errors.Errorf("entry %q is not a mapping", name)
		}
		if params, ok := entry[rosParametersKey]; ok {
			if _, ok := params.(map[string]interface{}); !ok && params != nil {
				return errors.Errorf("%q %s is not a mapping", name, rosParametersKey)
			}
			*nodes = append(*nodes, name)
			continue
		}
		if len(entry) == 0 {
			return errors.Errorf("entry %q has no %s", name, rosParametersKey)
		}
		if err := collectNodes(entry, name, nodes); err != nil {
			return err
		}
	}
	return nil
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return strings.TrimSuffix(prefix, Sep) + Sep + strings.TrimPrefix(key, Sep)
}
