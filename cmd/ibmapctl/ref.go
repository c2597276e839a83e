package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openstack/networking-infoblox/ipam/objref"
)

var refCmd = &cobra.Command{
	Use:   "ref <object-ref>",
	Short: "Decode a grid object reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("ref command takes exactly one object reference")
		}
		ref := args[0]

		asJSON, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}

		id, ok := objref.ObjectID(ref)
		if !ok {
			return fmt.Errorf("%q is not an object reference", ref)
		}
		typ, _ := objref.ObjectType(ref)
		network, isNetwork := objref.ParseNetwork(ref)

		out := cmd.OutOrStdout()
		if asJSON {
			v := interface{}(map[string]string{"object_id": id, "object_type": typ})
			if isNetwork {
				v = network
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		}

		fmt.Fprintf(out, "ID:\t\t%s\n", id)
		fmt.Fprintf(out, "Type:\t\t%s\n", typ)
		if isNetwork {
			fmt.Fprintf(out, "Network View:\t%s\n", network.NetworkView)
			fmt.Fprintf(out, "CIDR:\t\t%s\n", network.CIDR)
		}
		return nil
	},
}

func init() {
	refCmd.Flags().Bool("json", false, "Print the decoded reference as JSON")
}
