// Package envinfo gathers the platform facts for the current process for
// display. All gathering is best-effort and read-only: no field ever
// produces an error.
package envinfo

import (
	"fmt"
	"strings"

	"osprofile/internal/platform"
)

// Snapshot holds the derived platform state.
type Snapshot struct {
	OSName       string
	Arch         string
	FamilyName   string
	NativePrefix string
	PathVar      string
	ExeSuffix    string   // "" outside Windows
	SharedSuffix string   // shared-library extension
	StaticSuffix string   // static-library extension
	SearchPath   []string // parsed path-variable entries
}

// Gather collects the snapshot for a profile.
func Gather(p platform.Profile) Snapshot {
	return Snapshot{
		OSName:       p.OSName(),
		Arch:         p.Arch(),
		FamilyName:   p.FamilyName(),
		NativePrefix: p.NativePrefix(),
		PathVar:      p.PathVar(),
		ExeSuffix:    p.ExecutableSuffix(),
		SharedSuffix: p.SharedLibrarySuffix(),
		StaticSuffix: p.StaticLibrarySuffix(),
		SearchPath:   p.SearchPath(),
	}
}

// Format renders the snapshot as a string for terminal output.
func (s Snapshot) Format() string {
	var b strings.Builder

	fmt.Fprintf(&b, "OS: %s (%s)\n", s.OSName, s.Arch)
	fmt.Fprintf(&b, "Family: %s\n", s.FamilyName)
	fmt.Fprintf(&b, "Native prefix: %s\n", s.NativePrefix)
	fmt.Fprintf(&b, "Path variable: %s\n", s.PathVar)

	if s.ExeSuffix != "" {
		fmt.Fprintf(&b, "Executable suffix: %s\n", s.ExeSuffix)
	}
	fmt.Fprintf(&b, "Shared library suffix: %s\n", s.SharedSuffix)
	fmt.Fprintf(&b, "Static library suffix: %s\n", s.StaticSuffix)

	if len(s.SearchPath) > 0 {
		fmt.Fprintf(&b, "Search path:\n")
		for _, dir := range s.SearchPath {
			fmt.Fprintf(&b, "  %s\n", dir)
		}
	}

	return b.String()
}
