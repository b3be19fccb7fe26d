// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the oauthcore demo server.
package main

import (
	"os"

	"github.com/stacklok/oauthcore/cmd/oauthcore-demo/app"
	"github.com/stacklok/oauthcore/pkg/logger"
)

func main() {
	// Initialize the logger
	logger.Initialize()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
