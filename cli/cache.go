// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

package cli

import "github.com/spf13/cobra"

var cmdCache = []cobra.Command{
	{
		Use:   "store <value>",
		Short: "Store value",
		Long:  "Stores a value in the cache under a fresh random key and prints the key\n" +
			"Use the --kind flag to force a kind, otherwise it is inferred from the JSON type",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			key, err := sdk.Store(args[0], Kind)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logCreatedCmd(*cmd, key)
		},
	},
	{
		Use:   "get <key>",
		Short: "Get value",
		Long:  "Gets a stored value by key, decoded as the kind given with --kind",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			value, err := sdk.Value(args[0], Kind)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, value)
		},
	},
	{
		Use:   "delete <key>",
		Short: "Delete value",
		Long:  "Deletes a stored value by key",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if err := sdk.Remove(args[0]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	},
}

// NewCacheCmd returns cache command.
func NewCacheCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "cache [store | get | delete]",
		Short: "Cache management",
		Long:  "Cache management: store, get and delete values",
	}

	for i := range cmdCache {
		cmd.AddCommand(&cmdCache[i])
	}

	return &cmd
}
