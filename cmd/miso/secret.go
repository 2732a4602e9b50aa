package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benaskins/miso/internal/vault"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var createCmd = &cobra.Command{
	Use:   "create <label> [password]",
	Short: "Create a new password for the given label",
	Long:  "Store a password under a label. If password is omitted, it is read from the terminal without echo, or from stdin when piped.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		label := args[0]

		var password string
		if len(args) == 2 {
			password = args[1]
		} else {
			p, err := readPassword(cmd)
			if err != nil {
				return err
			}
			password = p
		}

		v, done := openVault("cli")
		defer done()
		if err := v.Create(label, password, force); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Successfully created password for '%s'", label)))
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <label>",
	Short: "Retrieve the password for a given label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		copyFlag, _ := cmd.Flags().GetBool("copy")
		label := args[0]

		v, done := openVault("cli")
		defer done()
		password, err := v.Get(label)
		if err != nil {
			return err
		}

		if !copyFlag {
			fmt.Fprintln(cmd.OutOrStdout(), password)
			return nil
		}

		if err := clipboardWrite(password); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Password for '%s' copied to clipboard", label)))

		clearAfter, _ := cfg.ClearAfter()
		if clearAfter > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Clipboard will be cleared in %s\n", clearAfter)
			clearClipboardAfter(clearAfter, password)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all saved password labels",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, done := openVault("cli")
		defer done()
		labels, err := v.List()
		if err != nil {
			return err
		}

		if len(labels) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No passwords saved")
			return nil
		}
		printLabels(cmd.OutOrStdout(), "Saved passwords:", labels)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <label>",
	Short:   "Delete the password for a given label",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]

		v, done := openVault("cli")
		defer done()
		outcome, err := v.Delete(label)
		if err != nil {
			return err
		}

		switch outcome {
		case vault.DeleteAbsent:
			fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render(fmt.Sprintf("Password for '%s' does not exist.", label)))
		default:
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Successfully deleted password for '%s'", label)))
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search saved labels using a keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		v, done := openVault("cli")
		defer done()
		matches, err := v.Search(query)
		if err != nil {
			return err
		}

		if len(matches) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No labels match '%s'\n", query)
			return nil
		}
		printLabels(cmd.OutOrStdout(), fmt.Sprintf("Labels matching '%s':", query), matches)
		return nil
	},
}

func printLabels(w io.Writer, header string, labels []string) {
	fmt.Fprintln(w, headerStyle.Render(header))
	for _, l := range labels {
		fmt.Fprintf(w, "- %s\n", l)
	}
}

// readPassword prompts on a terminal, otherwise reads all of stdin.
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Enter password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	password := strings.TrimRight(string(b), "\r\n")
	if password == "" {
		return "", fmt.Errorf("no password given on stdin")
	}
	return password, nil
}

func init() {
	createCmd.Flags().BoolP("force", "f", false, "Overwrite the password if it already exists")
	getCmd.Flags().BoolP("copy", "c", false, "Copy the password to clipboard")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(searchCmd)
}
