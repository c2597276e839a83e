package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openstack/networking-infoblox/ipam/naming"
)

var subnetKeyCmd = &cobra.Command{
	Use:   "subnet-key <cidr> [subnet-name]",
	Short: "Print the pooling key of a small IPv4 subnet",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 || len(args) > 2 {
			return errors.New("subnet-key command takes a cidr and an optional subnet name")
		}
		name := ""
		if len(args) == 2 {
			name = args[1]
		}
		key, ok := naming.IPv4SubnetKey(args[0], name)
		if !ok {
			return fmt.Errorf("%s has no subnet key", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	},
}
