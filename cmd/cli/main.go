// Copyright (c) StashKV
// SPDX-License-Identifier: Apache-2.0

// Package main contains cli main function to run the cli.
package main

import (
	"log"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/stashkv/stash/cli"
	"github.com/stashkv/stash/pkg/sdk"
)

func main() {
	sdkConf := sdk.Config{
		CacheURL:        "http://localhost:9008",
		PagesURL:        "http://localhost:9009",
		MsgContentType:  sdk.CTJSON,
		TLSVerification: false,
	}

	// Root
	rootCmd := &cobra.Command{
		Use: "stash-cli",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			s := sdk.NewSDK(sdkConf)
			cli.SetSDK(s)
		},
	}

	// API commands
	cacheCmd := cli.NewCacheCmd()
	pagesCmd := cli.NewPagesCmd()
	healthCmd := cli.NewHealthCmd()

	// Root Commands
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(healthCmd)

	// Root Flags
	rootCmd.PersistentFlags().StringVarP(
		&sdkConf.CacheURL,
		"cache-url",
		"c",
		sdkConf.CacheURL,
		"Cache service URL",
	)

	rootCmd.PersistentFlags().StringVarP(
		&sdkConf.PagesURL,
		"pages-url",
		"p",
		sdkConf.PagesURL,
		"Pages service URL",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.TLSVerification,
		"insecure",
		"i",
		sdkConf.TLSVerification,
		"Do not check for TLS cert",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Kind,
		"kind",
		"k",
		cli.Kind,
		"Value kind, one of string, bytes, integer or float",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		cli.RawOutput,
		"Enables raw output mode for easier parsing of output",
	)

	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
