package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formaria/pkg/aria"
)

var (
	idRoleColor  = color.New(color.FgCyan, color.Bold)
	idValueColor = color.New(color.FgGreen)
)

func newIDsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ids <fieldID> [option...]",
		Short: "Print every id derived from a field id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIDs(cmd.OutOrStdout(), args[0], args[1:])
		},
	}
}

func runIDs(out io.Writer, fieldID string, options []string) error {
	if err := aria.CheckFieldID(fieldID); err != nil {
		return err
	}
	for _, value := range options {
		if err := aria.CheckOptionValue(value); err != nil {
			return err
		}
	}

	rows := [][2]string{
		{"control", fieldID},
		{"label", aria.LabelID(fieldID)},
		{"legend", aria.GroupLabelID(fieldID)},
		{"hint", aria.HintID(fieldID)},
		{"error", aria.ErrorID(fieldID)},
	}
	for _, value := range options {
		rows = append(rows, [2]string{"option", aria.OptionID(fieldID, value)})
	}

	for _, row := range rows {
		role := idRoleColor.Sprintf("%-8s", row[0])
		if _, err := fmt.Fprintf(out, "%s %s\n", role, idValueColor.Sprint(row[1])); err != nil {
			return err
		}
	}
	return nil
}
