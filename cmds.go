package minimake

import (
	"os"
	"os/exec"

	"shanhu.io/misc/osutil"
)

// Runner runs one command line under a shell, blocks until it exits, and
// reports its exit status. A zero status means success. The error return
// is for failures to run the command at all, not for non-zero exits.
type Runner interface {
	Run(line string) (int, error)
}

type execJob struct {
	dir   string
	shell string
	line  string
}

func (j *execJob) command() *exec.Cmd {
	cmd := exec.Command(j.shell, "-c", j.line)
	cmd.Dir = j.dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	osutil.CmdCopyEnv(cmd, "HOME")
	osutil.CmdCopyEnv(cmd, "PATH")
	return cmd
}

// shellRunner is the default Runner. It runs command lines under a POSIX
// shell with stdout and stderr inherited from the calling process.
type shellRunner struct {
	dir   string
	shell string
}

const defaultShell = "/bin/sh"

func newShellRunner(dir, shell string) *shellRunner {
	if shell == "" {
		shell = defaultShell
	}
	return &shellRunner{dir: dir, shell: shell}
}

func (r *shellRunner) Run(line string) (int, error) {
	j := &execJob{dir: r.dir, shell: r.shell, line: line}
	if err := j.command().Run(); err != nil {
		if err, ok := err.(*exec.ExitError); ok {
			return err.ExitCode(), nil
		}
		return 0, err
	}
	return 0, nil
}
