package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report labels whose password is missing from the keychain",
	Long:  "Probe the keychain for every indexed label. Labels left behind by a failed create are listed with the commands that repair them. Nothing is modified.",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	v, done := openVault("check")
	defer done()
	report, err := v.Check()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if report.Consistent() {
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Checked %d labels, all have a stored password", report.Checked)))
		return nil
	}

	if len(report.Orphans) > 0 {
		fmt.Fprintln(out, warnStyle.Render("Labels with no stored password:"))
		for _, l := range report.Orphans {
			fmt.Fprintf(out, "- %s  (miso create --force %s <password>, or miso delete %s)\n", l, l, l)
		}
	}

	if len(report.Failed) > 0 {
		labels := make([]string, 0, len(report.Failed))
		for l := range report.Failed {
			labels = append(labels, l)
		}
		sort.Strings(labels)
		fmt.Fprintln(out, warnStyle.Render("Labels that could not be checked:"))
		for _, l := range labels {
			fmt.Fprintf(out, "- %s: %v\n", l, report.Failed[l])
		}
	}

	return fmt.Errorf("%d of %d labels inconsistent", len(report.Orphans)+len(report.Failed), report.Checked)
}
