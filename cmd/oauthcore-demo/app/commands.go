// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package app provides the entry point for the oauthcore demo server.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stacklok/oauthcore/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:               "oauthcore-demo",
	DisableAutoGenTag: true,
	Short:             "Demo OAuth 2.0 token server backed by the in-memory store",
	Long: `oauthcore-demo runs a small OAuth 2.0 authorization server wired to the
in-memory reference store. It exposes the token endpoint and a protected
resource, and is meant for exercising the grant flows locally; nothing it
issues survives a restart.`,
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			logger.Errorf("Error displaying help: %v", err)
		}
	},
}

// NewRootCmd creates a new root command for the demo server.
func NewRootCmd() *cobra.Command {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Fatalf("Failed to bind debug flag: %v", err)
	}

	rootCmd.AddCommand(serveCmd)

	return rootCmd
}
