// Package completion installs and removes shell completion scripts.
package completion

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentstation/streamscript/pkg/constants"
	"github.com/agentstation/streamscript/pkg/errors"
)

// Supported shells.
const (
	ShellBash = "bash"
	ShellZsh  = "zsh"
	ShellFish = "fish"
)

// Shells lists the shells install and uninstall manage.
var Shells = []string{ShellBash, ShellZsh, ShellFish}

// Installer writes completion scripts below a home directory or a
// Homebrew prefix.
type Installer struct {
	Fs     afero.Fs
	Home   string
	Prefix string // Homebrew prefix; empty uses Home
	Name   string // program name
}

// NewInstaller returns an installer for the current user.
func NewInstaller(fs afero.Fs, name string) (*Installer, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("locating home directory: %w", err)
	}
	return &Installer{
		Fs:     fs,
		Home:   home,
		Prefix: os.Getenv("HOMEBREW_PREFIX"),
		Name:   name,
	}, nil
}

// Path returns where the completion script for shell is installed.
func (i *Installer) Path(shell string) (string, error) {
	switch shell {
	case ShellBash:
		if i.Prefix != "" {
			return filepath.Join(i.Prefix, "etc", "bash_completion.d", i.Name), nil
		}
		return filepath.Join(i.Home, ".bash_completion.d", i.Name), nil
	case ShellZsh:
		if i.Prefix != "" {
			return filepath.Join(i.Prefix, "share", "zsh", "site-functions", "_"+i.Name), nil
		}
		return filepath.Join(i.Home, ".zsh", "completions", "_"+i.Name), nil
	case ShellFish:
		if i.Prefix != "" {
			return filepath.Join(i.Prefix, "share", "fish", "vendor_completions.d", i.Name+".fish"), nil
		}
		return filepath.Join(i.Home, ".config", "fish", "completions", i.Name+".fish"), nil
	default:
		return "", errors.NewValidationError("shell", shell, "unsupported shell")
	}
}

// Install generates root's completion script for shell and writes it,
// returning the path written.
func (i *Installer) Install(root *cobra.Command, shell string) (string, error) {
	path, err := i.Path(shell)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	switch shell {
	case ShellBash:
		err = root.GenBashCompletionV2(&buf, true)
	case ShellZsh:
		err = root.GenZshCompletion(&buf)
	case ShellFish:
		err = root.GenFishCompletion(&buf, true)
	}
	if err != nil {
		return "", fmt.Errorf("generating %s completion: %w", shell, err)
	}

	if err := i.Fs.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return "", errors.WrapIO("mkdir", path, err)
	}
	if err := afero.WriteFile(i.Fs, path, buf.Bytes(), constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}

// Uninstall removes the completion script for shell. It reports whether
// a script was found.
func (i *Installer) Uninstall(shell string) (string, bool, error) {
	path, err := i.Path(shell)
	if err != nil {
		return "", false, err
	}

	exists, err := afero.Exists(i.Fs, path)
	if err != nil || !exists {
		return path, false, nil
	}
	if err := i.Fs.Remove(path); err != nil {
		return path, true, errors.WrapIO("remove", path, err)
	}
	return path, true, nil
}
