// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package cli

import "github.com/spf13/cobra"

var cmdPages = []cobra.Command{
	{
		Use:   "get <url>",
		Short: "Get page",
		Long:  "Fetches the content of a URL, served from the cache when fresh",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			page, err := sdk.Page(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, page)
		},
	},
	{
		Use:   "accesses <url>",
		Short: "Get access count",
		Long:  "Prints how many times a URL has been fetched",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			accesses, err := sdk.Accesses(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, map[string]uint64{"accesses": accesses})
		},
	},
}

// NewPagesCmd returns pages command.
func NewPagesCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "pages [get | accesses]",
		Short: "Pages management",
		Long:  "Pages management: fetch pages and view access counts",
	}

	for i := range cmdPages {
		cmd.AddCommand(&cmdPages[i])
	}

	return &cmd
}
