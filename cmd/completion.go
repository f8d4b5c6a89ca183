package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for healthdash.

To load completions:

Bash:
  $ source <(healthdash completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ healthdash completion bash > /etc/bash_completion.d/healthdash
  # macOS:
  $ healthdash completion bash > $(brew --prefix)/etc/bash_completion.d/healthdash

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ healthdash completion zsh > "${fpath[1]}/_healthdash"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ healthdash completion fish | source

  # To load completions for each session, execute once:
  $ healthdash completion fish > ~/.config/fish/completions/healthdash.fish

PowerShell:
  PS> healthdash completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
