package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openstack/networking-infoblox/log"
	"github.com/openstack/networking-infoblox/version"
)

func main() {
	if c, err := mainCmd.ExecuteC(); err != nil {
		c.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

var (
	mainCmd = &cobra.Command{
		Use:           "ibmapctl",
		Short:         "Inspect and maintain the OpenStack to Infoblox mapping",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logrus.SetOutput(os.Stderr)
			flag, err := cmd.Flags().GetString("log-level")
			if err != nil {
				log.L.Fatal(err)
			}
			level, err := logrus.ParseLevel(flag)
			if err != nil {
				log.L.Fatal(err)
			}
			logrus.SetLevel(level)
		},
	}
)

func init() {
	mainCmd.PersistentFlags().StringP("log-level", "l", "info", "Log level (options \"debug\", \"info\", \"warn\", \"error\", \"fatal\", \"panic\")")
	mainCmd.PersistentFlags().StringP("config", "c", "/etc/neutron/ibmap.yaml", "Mapping configuration file")
	mainCmd.PersistentFlags().StringP("state-dir", "d", "/var/lib/ibmap", "State directory")

	mainCmd.AddCommand(
		refCmd,
		eaCmd,
		netviewCmd,
		subnetKeyCmd,
		duidCmd,
		gridCmd,
		version.Cmd,
	)
}
