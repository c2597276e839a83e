package main

import (
	"errors"
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/openstack/networking-infoblox/identity"
)

var duidCmd = &cobra.Command{
	Use:   "duid <mac>",
	Short: "Generate DHCPv6 DUIDs for a MAC address",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("duid command takes exactly one MAC address")
		}
		if _, err := net.ParseMAC(args[0]); err != nil {
			return err
		}
		count, err := cmd.Flags().GetInt("count")
		if err != nil {
			return err
		}
		if count < 1 {
			return errors.New("count must be positive")
		}
		for i := 0; i < count; i++ {
			fmt.Fprintln(cmd.OutOrStdout(), identity.NewDUID(args[0]))
		}
		return nil
	},
}

func init() {
	duidCmd.Flags().IntP("count", "n", 1, "Number of DUIDs to generate")
}
