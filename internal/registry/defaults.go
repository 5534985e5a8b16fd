package registry

import (
	"os"
	"path/filepath"
)

// Default returns the tools bundled next to the launcher: the
// text-to-speech server and the GitHub CLI proxy. Script paths
// are resolved relative to baseDir.
func Default(baseDir string) Registry {
	return Registry{
		{
			Name: "tts-server",
			Argv: []string{"python3", filepath.Join(baseDir, "..", "tts-server", "tts-server.py")},
		},
		{
			Name: "gh-proxy",
			Argv: []string{"python3", filepath.Join(baseDir, "..", "gh-proxy", "gh-proxy.py")},
		},
	}
}

// ExecutableDir returns the directory of the running executable,
// with symlinks resolved. It falls back to the working directory.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe)
}
