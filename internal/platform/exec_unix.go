//go:build !windows

package platform

import "golang.org/x/sys/unix"

// IsExecutable reports whether the current process may execute the file
// at path. On Unix this asks the kernel directly via access(2).
func IsExecutable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
