// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/podward/podward/pkg/solid"
)

// NewGrantCmd creates the command granting access modes.
func NewGrantCmd() *cobra.Command {
	return newSetCmd(setCmdSpec{
		use:     "grant <resource-url>",
		short:   "Grant access modes to an actor on a pod resource",
		setting: solid.Granted,
	})
}

// setCmdSpec parameterizes the grant and revoke commands, which differ
// only in the setting they write.
type setCmdSpec struct {
	use     string
	short   string
	setting solid.Setting
}

func newSetCmd(spec setCmdSpec) *cobra.Command {
	var (
		agent  string
		group  string
		public bool
		modes  string
	)

	cmd := &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := 0
			for _, set := range []bool{agent != "", group != "", public} {
				if set {
					selected++
				}
			}
			if selected != 1 {
				return fmt.Errorf("exactly one of --agent, --group or --public is required")
			}

			partial, err := parseModes(modes, spec.setting)
			if err != nil {
				return err
			}
			if partial == (solid.Access{}) {
				return fmt.Errorf("--modes must name at least one access mode")
			}

			client, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			resourceURL := args[0]

			var result solid.Access
			var ok bool
			switch {
			case agent != "":
				result, ok, err = client.SetAgentAccess(ctx, resourceURL, agent, partial)
			case group != "":
				result, ok, err = client.SetGroupAccess(ctx, resourceURL, group, partial)
			case public:
				result, ok, err = client.SetPublicAccess(ctx, resourceURL, partial)
			}
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s: %w", resourceURL, errIndeterminate)
			}

			return render(cmd.OutOrStdout(), outputFormat, result)
		},
	}

	cmd.Flags().StringVar(&agent, "agent", "", "WebID of the agent")
	cmd.Flags().StringVar(&group, "group", "", "URL of the group")
	cmd.Flags().BoolVar(&public, "public", false, "target everyone")
	cmd.Flags().StringVar(&modes, "modes", "", "comma-separated access modes: read, append, write, control-read, control-write or control")
	_ = cmd.MarkFlagRequired("modes")

	return cmd
}
