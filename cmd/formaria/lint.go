package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formaria/pkg/model"
)

var lintFailColor = color.New(color.FgRed, color.Bold)

type violation struct {
	file     string
	location string
	message  string
}

func newLintCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lint <definition>...",
		Short: "Validate form definitions and report every id or rule problem",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			violations := lintFiles(args)
			flags.logger.Debug().Int("files", len(args)).Int("violations", len(violations)).Msg("lint finished")
			return reportViolations(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, violations)
		},
	}
}

func lintFiles(paths []string) []violation {
	var violations []violation
	for _, path := range paths {
		violations = append(violations, lintFile(path)...)
	}
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].file == violations[j].file {
			if violations[i].location == violations[j].location {
				return violations[i].message < violations[j].message
			}
			return violations[i].location < violations[j].location
		}
		return violations[i].file < violations[j].file
	})
	return violations
}

func lintFile(path string) []violation {
	_, err := model.LoadFile(path)
	if err == nil {
		return nil
	}

	var invalid *model.ValidationError
	if !errors.As(err, &invalid) {
		return []violation{{file: path, location: "-", message: err.Error()}}
	}

	out := make([]violation, 0, len(invalid.Issues))
	for _, issue := range invalid.Issues {
		out = append(out, violation{file: path, location: issue.Path, message: issue.Message})
	}
	return out
}

func reportViolations(stdout, stderr io.Writer, paths []string, violations []violation) error {
	failed := make(map[string]struct{}, len(violations))
	for _, v := range violations {
		failed[v.file] = struct{}{}
		fmt.Fprintf(stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
	}
	for _, path := range paths {
		if _, bad := failed[path]; !bad {
			fmt.Fprintf(stdout, "%s: ok\n", path)
		}
	}
	if len(violations) > 0 {
		return fmt.Errorf("lint: %s", lintFailColor.Sprintf("%d problem(s) in %d file(s)", len(violations), len(failed)))
	}
	return nil
}
