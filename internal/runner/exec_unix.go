//go:build unix

package runner

import "golang.org/x/sys/unix"

func execProcess(argv0 string, argv []string, envv []string) error {
	return unix.Exec(argv0, argv, envv)
}
