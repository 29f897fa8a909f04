// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInspectCmd creates the command reporting effective access.
func NewInspectCmd() *cobra.Command {
	var (
		agent     string
		group     string
		public    bool
		allAgents bool
		allGroups bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <resource-url>",
		Short: "Report effective access on a pod resource",
		Long: `Inspect resolves the resource's authorization scheme (ACP or WAC)
and reports the effective access for the selected actor. Exits with
status 2 when the access state cannot be determined.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := 0
			for _, set := range []bool{agent != "", group != "", public, allAgents, allGroups} {
				if set {
					selected++
				}
			}
			if selected != 1 {
				return fmt.Errorf("exactly one of --agent, --group, --public, --all-agents or --all-groups is required")
			}

			client, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			resourceURL := args[0]

			var result any
			var ok bool
			switch {
			case agent != "":
				result, ok = client.AgentAccess(ctx, resourceURL, agent)
			case group != "":
				result, ok = client.GroupAccess(ctx, resourceURL, group)
			case public:
				result, ok = client.PublicAccess(ctx, resourceURL)
			case allAgents:
				result, ok = client.AgentAccessAll(ctx, resourceURL)
			case allGroups:
				result, ok = client.GroupAccessAll(ctx, resourceURL)
			}
			if !ok {
				return fmt.Errorf("%s: %w", resourceURL, errIndeterminate)
			}

			return render(cmd.OutOrStdout(), outputFormat, result)
		},
	}

	cmd.Flags().StringVar(&agent, "agent", "", "WebID of the agent to inspect")
	cmd.Flags().StringVar(&group, "group", "", "URL of the group to inspect")
	cmd.Flags().BoolVar(&public, "public", false, "inspect access granted to everyone")
	cmd.Flags().BoolVar(&allAgents, "all-agents", false, "report access for every agent named in the authorization data")
	cmd.Flags().BoolVar(&allGroups, "all-groups", false, "report access for every named group")

	return cmd
}
