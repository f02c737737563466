// Package completion provides shell completion management commands.
package completion

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/streamscript/cmd/application"
	"github.com/agentstation/streamscript/internal/cmd/completion"
	"github.com/agentstation/streamscript/internal/cmd/emoji"
)

// NewCommand creates the completion command with install/uninstall subcommands.
// It replaces cobra's generated completion command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate or install shell completions",
		Long: `Generate the completion script for a shell on stdout, or use the
install/uninstall subcommands to manage it in the usual location.

  source <(streamscript completion bash)
  streamscript completion install --shell zsh`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			root, w := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case completion.ShellBash:
				return root.GenBashCompletionV2(w, true)
			case completion.ShellZsh:
				return root.GenZshCompletion(w)
			case completion.ShellFish:
				return root.GenFishCompletion(w, true)
			default:
				return root.GenPowerShellCompletionWithDesc(w)
			}
		},
	}

	cmd.AddCommand(newInstallCommand(app))
	cmd.AddCommand(newUninstallCommand(app))

	return cmd
}

func newInstallCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install completion scripts",
		Long:  "Install completion scripts for bash, zsh and fish, or only the shell named by --shell.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			installer, shells, err := setup(cmd, app)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, shell := range shells {
				path, err := installer.Install(cmd.Root(), shell)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s %s completions installed to %s\n", emoji.Success, shell, path)
			}
			fmt.Fprintln(w, "Start a new shell session to enable completions.")
			return nil
		},
	}
	cmd.Flags().String("shell", "", "only this shell: bash, zsh, fish")
	return cmd
}

func newUninstallCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove installed completion scripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			installer, shells, err := setup(cmd, app)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, shell := range shells {
				path, found, err := installer.Uninstall(shell)
				if err != nil {
					return err
				}
				if found {
					fmt.Fprintf(w, "%s removed %s completions from %s\n", emoji.Success, shell, path)
				} else {
					fmt.Fprintf(w, "no %s completions at %s\n", shell, path)
				}
			}
			return nil
		},
	}
	cmd.Flags().String("shell", "", "only this shell: bash, zsh, fish")
	return cmd
}

func setup(cmd *cobra.Command, app application.Application) (*completion.Installer, []string, error) {
	installer, err := completion.NewInstaller(app.Fs(), cmd.Root().Name())
	if err != nil {
		return nil, nil, err
	}

	shell, _ := cmd.Flags().GetString("shell")
	if shell == "" {
		return installer, completion.Shells, nil
	}
	if _, err := installer.Path(shell); err != nil {
		return nil, nil, err
	}
	return installer, []string{shell}, nil
}
