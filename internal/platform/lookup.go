package platform

import (
	"os"
	"strings"
)

// Injectable for testing. Defaults touch the real process environment
// and filesystem.
var (
	getenvFn = os.Getenv
	statFn   = os.Stat
)

// SearchPath returns the entries of the platform's path variable, in
// search order. Empty entries are dropped.
func (p Profile) SearchPath() []string {
	value := getenvFn(p.PathVar())
	if value == "" {
		return nil
	}
	var dirs []string
	for _, dir := range strings.Split(value, string(p.PathListSeparator())) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// FindInPath locates an executable on the platform's search path.
// The boolean is false when nothing was found; that is an expected
// outcome, not an error.
func (p Profile) FindInPath(name string) (string, bool) {
	return p.FindInDirs(name, p.SearchPath())
}

// FindInDirs locates an executable in an explicit directory list.
// The name is first run through ExecutableName; if the result contains a
// path separator it is treated as an explicit path and the directory list
// is not consulted.
func (p Profile) FindInDirs(name string, dirs []string) (string, bool) {
	matches := p.findInDirs(name, dirs, true)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// FindAllInDirs returns every match for an executable across the
// directory list, in search order. Explicit paths yield at most one match.
func (p Profile) FindAllInDirs(name string, dirs []string) []string {
	return p.findInDirs(name, dirs, false)
}

func (p Profile) findInDirs(name string, dirs []string, firstOnly bool) []string {
	exeName := p.ExecutableName(name)
	if strings.ContainsAny(exeName, p.separators()) {
		if isRegularFile(exeName) {
			return []string{exeName}
		}
		return nil
	}

	var matches []string
	sep := string(p.PathSeparator())
	for _, dir := range dirs {
		candidate := strings.TrimSuffix(dir, sep) + sep + exeName
		if isRegularFile(candidate) {
			matches = append(matches, candidate)
			if firstOnly {
				return matches
			}
		}
	}
	return matches
}

// separators returns the path-separator characters recognized in names.
// Windows accepts both slash directions.
func (p Profile) separators() string {
	if p.family == Windows {
		return `/\`
	}
	return "/"
}

func isRegularFile(path string) bool {
	info, err := statFn(path)
	return err == nil && info.Mode().IsRegular()
}
