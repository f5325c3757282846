//go:build unix

package preflight

import "golang.org/x/sys/unix"

func platformAccess(path string, mode accessMode) error {
	switch mode {
	case accessWrite:
		return unix.Access(path, unix.W_OK|unix.X_OK)
	default:
		return unix.Access(path, unix.R_OK|unix.X_OK)
	}
}
