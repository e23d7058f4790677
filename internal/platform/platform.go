// Package platform classifies the host operating system and derives
// platform-specific naming conventions: script names, executable names,
// shared/static library names, and native binary prefixes.
// All naming methods are pure functions of the profile and their input.
package platform

import (
	"runtime"
	"strings"
)

// Family is the coarse OS classification driving naming-rule selection.
type Family int

const (
	Unix Family = iota // generic fallback, not guaranteed accurate
	Windows
	MacOS
	Linux
	FreeBSD
	Solaris
)

// Injectable for testing. Defaults read the live process values.
var (
	osNameFn = func() string { return runtime.GOOS }
	archFn   = func() string { return runtime.GOARCH }
)

// Profile bundles a family with the OS name and architecture it was
// classified from. Profiles are immutable values; methods never mutate.
type Profile struct {
	family Family
	osName string
	arch   string
}

// classifyRules maps OS-name substrings to families, checked in order.
// The first matching rule wins, so macOS outranks Linux for inputs
// containing both "darwin" and "linux".
var classifyRules = []struct {
	substrings []string
	family     Family
}{
	{[]string{"windows"}, Windows},
	{[]string{"mac os x", "darwin", "osx"}, MacOS},
	{[]string{"sunos", "solaris"}, Solaris},
	{[]string{"linux"}, Linux},
	{[]string{"freebsd"}, FreeBSD},
}

// New classifies an OS name and builds a profile for the given architecture.
// Every input maps to a family; unrecognized names fall back to generic Unix.
func New(osName, arch string) Profile {
	lower := strings.ToLower(osName)
	for _, rule := range classifyRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return Profile{family: rule.family, osName: osName, arch: arch}
			}
		}
	}
	return Profile{family: Unix, osName: osName, arch: arch}
}

// Classify builds a profile for an OS name using the current architecture.
func Classify(osName string) Profile {
	return New(osName, archFn())
}

// Current returns the profile for the running process.
func Current() Profile {
	return New(osNameFn(), archFn())
}

// Family returns the profile's OS family.
func (p Profile) Family() Family {
	return p.family
}

// OSName returns the OS name the profile was classified from.
func (p Profile) OSName() string {
	return p.osName
}

// Arch returns the architecture string the profile carries.
func (p Profile) Arch() string {
	return p.arch
}

func (p Profile) String() string {
	return p.osName + " " + p.arch
}

// IsWindows reports whether the profile is the Windows family.
func (p Profile) IsWindows() bool {
	return p.family == Windows
}

// IsMacOS reports whether the profile is the macOS family.
func (p Profile) IsMacOS() bool {
	return p.family == MacOS
}

// IsLinux reports whether the profile is the Linux family.
func (p Profile) IsLinux() bool {
	return p.family == Linux
}

// IsUnix reports whether the profile is any Unix-like family.
func (p Profile) IsUnix() bool {
	return p.family != Windows
}

// FamilyName returns the human-readable family name. Generic Unix and
// FreeBSD report "unknown": the fallback family makes no accuracy claim.
func (p Profile) FamilyName() string {
	switch p.family {
	case Windows:
		return "windows"
	case MacOS:
		return "os x"
	case Linux:
		return "linux"
	case Solaris:
		return "solaris"
	default:
		return "unknown"
	}
}

// PathVar returns the name of the environment variable holding the
// executable search list.
func (p Profile) PathVar() string {
	if p.family == Windows {
		return "Path"
	}
	return "PATH"
}

// PathSeparator returns the character separating path components.
func (p Profile) PathSeparator() byte {
	if p.family == Windows {
		return '\\'
	}
	return '/'
}

// PathListSeparator returns the character separating search-list entries.
func (p Profile) PathListSeparator() byte {
	if p.family == Windows {
		return ';'
	}
	return ':'
}

// ScriptSuffix returns the platform's script extension, if any.
func (p Profile) ScriptSuffix() string {
	if p.family == Windows {
		return ".bat"
	}
	return ""
}

// ExecutableSuffix returns the platform's executable extension, if any.
func (p Profile) ExecutableSuffix() string {
	if p.family == Windows {
		return ".exe"
	}
	return ""
}

// SharedLibrarySuffix returns the platform's shared-library extension.
func (p Profile) SharedLibrarySuffix() string {
	switch p.family {
	case Windows:
		return ".dll"
	case MacOS:
		return ".dylib"
	default:
		return ".so"
	}
}

// StaticLibrarySuffix returns the platform's static-library extension.
func (p Profile) StaticLibrarySuffix() string {
	if p.family == Windows {
		return ".lib"
	}
	return ".a"
}

// ScriptName transforms a base name into the platform's script name.
func (p Profile) ScriptName(name string) string {
	if p.family == Windows {
		return withExtension(name, ".bat")
	}
	return name
}

// ExecutableName transforms a base name into the platform's executable name.
func (p Profile) ExecutableName(name string) string {
	if p.family == Windows {
		return withExtension(name, ".exe")
	}
	return name
}

// SharedLibraryName transforms a base name into the platform's
// shared-library file name, e.g. "foo" -> "libfoo.so" on Linux.
func (p Profile) SharedLibraryName(name string) string {
	if p.family == Windows {
		return withExtension(name, ".dll")
	}
	return libraryName(name, p.SharedLibrarySuffix())
}

// StaticLibraryName transforms a base name into the platform's
// static-library file name, e.g. "foo" -> "libfoo.a" on Linux.
func (p Profile) StaticLibraryName(name string) string {
	if p.family == Windows {
		return withExtension(name, ".lib")
	}
	return libraryName(name, p.StaticLibrarySuffix())
}

// NativePrefix returns the platform+architecture tag used to name
// platform-specific native binaries, e.g. "linux-amd64".
func (p Profile) NativePrefix() string {
	switch p.family {
	case Windows:
		arch := p.arch
		if arch == "i386" {
			arch = "x86"
		}
		return "win32-" + arch
	case MacOS:
		return "darwin"
	case Solaris:
		arch := p.arch
		switch arch {
		case "i386", "x86":
			arch = "x86"
		default:
			arch = unixArch(arch)
		}
		return "sunos-" + arch
	default:
		osPrefix, _, _ := strings.Cut(strings.ToLower(p.osName), " ")
		return osPrefix + "-" + unixArch(p.arch)
	}
}

// unixArch normalizes common architecture names to the Unix native-prefix
// convention. Unrecognized values pass through unchanged.
func unixArch(arch string) string {
	switch arch {
	case "x86":
		return "i386"
	case "x86_64":
		return "amd64"
	case "powerpc":
		return "ppc"
	}
	return arch
}

// withExtension appends ext unless the name already carries it
// (case-insensitive), replacing any existing extension after the last
// path separator.
func withExtension(name, ext string) string {
	if strings.HasSuffix(strings.ToLower(name), ext) {
		return name
	}
	return removeExtension(name) + ext
}

// removeExtension strips the extension, if any, from the final path
// component. A dot before the last separator is part of a directory name,
// not an extension.
func removeExtension(name string) string {
	sep := strings.LastIndexAny(name, `/\`)
	dot := strings.LastIndex(name, ".")
	if dot > sep {
		return name[:dot]
	}
	return name
}

// libraryName applies the Unix library convention: a "lib" prefix on the
// final path component plus the family's suffix. Names already carrying
// the suffix are returned unchanged.
func libraryName(name, suffix string) string {
	if strings.HasSuffix(name, suffix) {
		return name
	}
	if sep := strings.LastIndex(name, "/"); sep >= 0 {
		return name[:sep+1] + "lib" + name[sep+1:] + suffix
	}
	return "lib" + name + suffix
}
