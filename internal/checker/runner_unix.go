//go:build !windows

package checker

import (
	"os/exec"
	"syscall"
)

func defaultShell() []string {
	return []string{"sh", "-c"}
}

// configureProcess starts the command in its own process group so that
// cancellation also stops the tools it spawned
func configureProcess(c *exec.Cmd, _ string) {
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	c.Cancel = func() error {
		return syscall.Kill(-c.Process.Pid, syscall.SIGKILL)
	}
}
