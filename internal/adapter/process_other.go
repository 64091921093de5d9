//go:build !unix

package adapter

import "os/exec"

// configureProcessGroup keeps the default behaviour: cancellation kills the
// direct child only.
func configureProcessGroup(_ *exec.Cmd) {}
