//go:build windows

package platform

import "strings"

// executableExts are the extensions Windows treats as directly runnable.
var executableExts = []string{".exe", ".bat", ".cmd", ".com"}

// IsExecutable reports whether the file at path is runnable. Windows has
// no executable bit, so this goes by extension.
func IsExecutable(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range executableExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
