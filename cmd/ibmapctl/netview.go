package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/openstack/networking-infoblox/config"
	"github.com/openstack/networking-infoblox/ipam/naming"
)

var netviewCmd = &cobra.Command{
	Use:   "netview",
	Short: "Compute the network view for an OpenStack object",
	Long: `Compute the network view for an OpenStack object.

The scope and default view come from --scope and --default-view, or from
the mapping section of the configuration file when --scope is not set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			return errors.New("netview command takes no arguments")
		}
		flags := cmd.Flags()

		r, err := resolverFromFlags(flags)
		if err != nil {
			return err
		}
		c, err := contextFromFlags(flags)
		if err != nil {
			return err
		}
		view, err := r.NetworkView(c)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), view)
		return nil
	},
}

func resolverFromFlags(flags *pflag.FlagSet) (naming.Resolver, error) {
	scopeFlag, err := flags.GetString("scope")
	if err != nil {
		return naming.Resolver{}, err
	}
	defaultView, err := flags.GetString("default-view")
	if err != nil {
		return naming.Resolver{}, err
	}

	if scopeFlag == "" {
		path, err := flags.GetString("config")
		if err != nil {
			return naming.Resolver{}, err
		}
		c, err := config.Load(path)
		if err != nil {
			return naming.Resolver{}, err
		}
		r, err := c.Resolver()
		if err != nil {
			return naming.Resolver{}, err
		}
		if flags.Changed("default-view") {
			r.DefaultView = defaultView
		}
		return r, nil
	}

	scope, err := naming.ParseScope(scopeFlag)
	if err != nil {
		return naming.Resolver{}, err
	}
	return naming.Resolver{Scope: scope, DefaultView: defaultView}, nil
}

func contextFromFlags(flags *pflag.FlagSet) (naming.Context, error) {
	var c naming.Context
	for name, dst := range map[string]*string{
		"tenant-id":          &c.TenantID,
		"tenant-name":        &c.TenantName,
		"address-scope-id":   &c.AddressScopeID,
		"address-scope-name": &c.AddressScopeName,
		"network-id":         &c.NetworkID,
		"network-name":       &c.NetworkName,
		"subnet-id":          &c.SubnetID,
		"subnet-name":        &c.SubnetName,
	} {
		v, err := flags.GetString(name)
		if err != nil {
			return naming.Context{}, err
		}
		*dst = v
	}
	return c, nil
}

func init() {
	flags := netviewCmd.Flags()
	flags.String("scope", "", "Network view scope (\"Single\", \"Address Scope\", \"Tenant\", \"Network\", \"Subnet\")")
	flags.String("default-view", naming.DefaultNetworkView, "Network view used by the Single scope")
	flags.String("tenant-id", "", "Tenant ID")
	flags.String("tenant-name", "", "Tenant name")
	flags.String("address-scope-id", "", "Address scope ID")
	flags.String("address-scope-name", "", "Address scope name")
	flags.String("network-id", "", "Network ID")
	flags.String("network-name", "", "Network name")
	flags.String("subnet-id", "", "Subnet ID")
	flags.String("subnet-name", "", "Subnet name")
}
