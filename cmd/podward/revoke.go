// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/podward/podward/pkg/solid"
)

// NewRevokeCmd creates the command denying access modes. Under ACP the
// modes become explicit denies; under WAC they are withdrawn from the
// ACL and read back as unset.
func NewRevokeCmd() *cobra.Command {
	return newSetCmd(setCmdSpec{
		use:     "revoke <resource-url>",
		short:   "Revoke access modes from an actor on a pod resource",
		setting: solid.Denied,
	})
}
