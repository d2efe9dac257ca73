// Package preflight answers the questions sysupdate asks before it runs
// anything: is this the superuser, which tools are installed, which marker
// files exist.
package preflight

import (
	"os"
	"os/exec"

	"github.com/ajxudir/sysupdate/pkg/verbose"
)

// CommandResolutionHints maps command names to installation instructions.
//
// The hints are shown in verbose mode when a section is skipped because its
// tool is missing.
var CommandResolutionHints = map[string]string{
	"pacman":  "Arch Linux package manager, only available on Arch based systems",
	"yay":     "Install yay: https://github.com/Jguer/yay#installation",
	"nix-env": "Install Nix: https://nixos.org/download/",
	"pip":     "Install Python: https://python.org/downloads/",
	"pip3":    "Install Python: https://python.org/downloads/",
	"gem":     "Install Ruby: https://ruby-lang.org/en/downloads/",
	"npm":     "Install Node.js: https://nodejs.org/",
	"opam":    "Install opam: https://opam.ocaml.org/doc/Install.html",
	"go":      "Install Go: https://go.dev/dl/",
	"rustup":  "Install Rust: https://rustup.rs/",
	"cargo":   "Install Rust: https://rustup.rs/",
}

// GetResolutionHint returns the installation hint for a command, if available.
func GetResolutionHint(cmd string) string {
	return CommandResolutionHints[cmd]
}

// Probe discovers tools and files on the machine.
//
// Standard implementation: System. Tests substitute a fake.
type Probe interface {
	// LookPath resolves an executable through PATH.
	//
	// Returns:
	//   - string: Resolved path, empty when not found
	//   - bool: true if the executable was found
	LookPath(name string) (string, bool)

	// Exists reports whether a file or directory exists at path.
	Exists(path string) bool

	// HomeDir returns the invoking user's home directory, empty if unknown.
	HomeDir() string
}

// System probes the real filesystem and PATH.
type System struct{}

// LookPath resolves name with exec.LookPath.
func (System) LookPath(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		verbose.ToolMissing(name, GetResolutionHint(name))
		return "", false
	}
	verbose.Debugf("Preflight: %s found at %s", name, path)
	return path, true
}

// Exists stats path.
func (System) Exists(path string) bool {
	_, err := os.Stat(path)
	verbose.Debugf("Preflight: %s exists=%t", path, err == nil)
	return err == nil
}

// HomeDir returns os.UserHomeDir, or "" when it cannot be determined.
func (System) HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		verbose.Debugf("Preflight: home directory unknown: %v", err)
		return ""
	}
	return home
}
