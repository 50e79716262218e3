//go:build windows

package checker

import (
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
)

func defaultShell() []string {
	return []string{"cmd", "/C"}
}

// configureProcess hands cmd.exe the command line untouched. cmd does not
// follow the argument quoting exec.Command applies, so lines containing
// quotes would otherwise break.
func configureProcess(c *exec.Cmd, line string) {
	if !isCmdExe(c.Path) {
		return
	}
	c.SysProcAttr = &syscall.SysProcAttr{CmdLine: cmdExeLine(c.Path, line)}
}

func isCmdExe(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	return name == "cmd" || name == "cmd.exe"
}

// cmdExeLine builds the full command line for cmd.exe. With /S cmd strips
// exactly the outer pair of quotes and runs the rest verbatim.
func cmdExeLine(path, line string) string {
	return syscall.EscapeArg(path) + ` /S /C "` + line + `"`
}
