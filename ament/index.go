// Package ament resolves installed ROS 2 packages through the ament
// resource index found under each prefix of AMENT_PREFIX_PATH.
package ament

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/xray-vehicle/vehicle-launch/launch"
)

const (
	// PrefixPathEnv lists install prefixes, highest priority first.
	PrefixPathEnv = "AMENT_PREFIX_PATH"

	packagesResource = "share/ament_index/resource_index/packages"
)

// Index looks packages up in a list of install prefixes. Overrides map a
// package name straight to its share directory and win over the prefixes.
type Index struct {
	Prefixes  []string
	Overrides map[string]string
}

func NewIndex(prefixes []string) *Index {
	var cleaned []string
	for _, p := range prefixes {
		if len(p) > 0 {
			cleaned = append(cleaned, p)
		}
	}
	return &Index{Prefixes: cleaned, Overrides: map[string]string{}}
}

// NewIndexFromEnv builds an index from AMENT_PREFIX_PATH.
func NewIndexFromEnv() *Index {
	return NewIndex(filepath.SplitList(os.Getenv(PrefixPathEnv)))
}

func isRegistered(prefix, pkg string) bool {
	info, err := os.Stat(filepath.Join(prefix, packagesResource, pkg))
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func validPackageName(pkg string) bool {
	return len(pkg) > 0 && !strings.ContainsAny(pkg, `/\`) && pkg != "." && pkg != ".."
}

// FindPackagePrefix returns the first prefix in which pkg is registered.
func (idx *Index) FindPackagePrefix(pkg string) (string, error) {
	if !validPackageName(pkg) {
		return "", errors.Wrapf(launch.ErrPackageNotFound, "invalid package name %q", pkg)
	}
	for _, prefix := range idx.Prefixes {
		if isRegistered(prefix, pkg) {
			return prefix, nil
		}
	}
	return "", errors.Wrapf(launch.ErrPackageNotFound, "%q in %s=%s", pkg, PrefixPathEnv, strings.Join(idx.Prefixes, string(os.PathListSeparator)))
}

// FindPackageShare returns the share directory of pkg.
func (idx *Index) FindPackageShare(pkg string) (string, error) {
	if share, ok := idx.Overrides[pkg]; ok {
		launch.ModuleLogger("ament").Debugf("package %s overridden to %s", pkg, share)
		return share, nil
	}
	prefix, err := idx.FindPackagePrefix(pkg)
	if err != nil {
		return "", err
	}
	return filepath.Join(prefix, "share", pkg), nil
}

// Packages lists every package registered under any prefix, plus overrides.
func (idx *Index) Packages() ([]string, error) {
	set := map[string]bool{}
	for name := range idx.Overrides {
		set[name] = true
	}
	for _, prefix := range idx.Prefixes {
		files, err := ioutil.ReadDir(filepath.Join(prefix, packagesResource))
		if err != nil {
			if os.IsNotExist(err) {
				// prefix without a resource index
				continue
			}
			return nil, errors.Wrapf(err, "read index under %s", prefix)
		}
		for _, f := range files {
			if !f.IsDir() {
				set[f.Name()] = true
			}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
