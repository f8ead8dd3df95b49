// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the kardash command-line client.
//
// It maps sub-commands (login, jobs, admin, notifications, ...) onto the
// client services, prints results as JSON and hosts the long-running modes:
// the notification watcher and the terminal UI.
package client
