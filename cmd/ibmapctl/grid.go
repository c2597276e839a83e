package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"code.cloudfoundry.org/clock"
	"github.com/docker/go-units"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/openstack/networking-infoblox/config"
	"github.com/openstack/networking-infoblox/ioutils"
	"github.com/openstack/networking-infoblox/ipam/grid"
	"github.com/openstack/networking-infoblox/ipam/gridsync"
	"github.com/openstack/networking-infoblox/ipam/marshal"
	"github.com/openstack/networking-infoblox/ipam/store"
	"github.com/openstack/networking-infoblox/log"
)

const storeFile = "ibmap.db"

var (
	gridCmd = &cobra.Command{
		Use:   "grid",
		Short: "Grid management",
	}

	gridSyncCmd = &cobra.Command{
		Use:   "sync",
		Short: "Sync the grid records with the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return errors.New("sync command takes no arguments")
			}
			flags := cmd.Flags()
			path, err := flags.GetString("config")
			if err != nil {
				return err
			}
			force, err := flags.GetBool("force")
			if err != nil {
				return err
			}
			minWait, err := flags.GetDuration("min-wait")
			if err != nil {
				return err
			}

			c, err := config.Load(path)
			if err != nil {
				return err
			}
			ctx := log.WithModule(context.Background(), "ibmapctl")
			s, err := openStore(ctx, cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := gridsync.Sync(ctx, s, c, gridsync.Options{MinWait: minWait, Force: force})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Grids:\t%d added, %d updated, %d removed\n", res.GridsAdded, res.GridsUpdated, res.GridsRemoved)
			fmt.Fprintf(out, "Members:\t%d added, %d updated, %d removed\n", res.MembersAdded, res.MembersUpdated, res.MembersRemoved)
			for _, id := range res.Skipped {
				fmt.Fprintf(out, "Skipped grid %d, synced less than %s ago\n", id, minWait)
			}
			return nil
		},
	}

	gridListCmd = &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List grids",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return errors.New("ls command takes no arguments")
			}
			quiet, err := cmd.Flags().GetBool("quiet")
			if err != nil {
				return err
			}
			s, err := openStore(context.Background(), cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			var grids []*grid.Grid
			counts := map[int]int{}
			if err := s.View(func(tx store.ReadTx) error {
				var err error
				grids, err = tx.FindGrids()
				if err != nil {
					return err
				}
				for _, g := range grids {
					members, err := tx.FindMembers(g.ID)
					if err != nil {
						return err
					}
					counts[g.ID] = len(members)
				}
				return nil
			}); err != nil {
				return err
			}

			if quiet {
				for _, g := range grids {
					fmt.Fprintln(cmd.OutOrStdout(), g.ID)
				}
				return nil
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Name", "Status", "Members", "Synced"})
			for _, g := range grids {
				table.Append([]string{
					strconv.Itoa(g.ID),
					g.Name,
					g.Status,
					strconv.Itoa(counts[g.ID]),
					humanize.Time(g.UpdatedAt),
				})
			}
			table.Render()
			return nil
		},
	}

	gridMembersCmd = &cobra.Command{
		Use:   "members <grid-id>",
		Short: "List the members of a grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("members command takes exactly one grid id")
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid grid id %q", args[0])
			}
			s, err := openStore(context.Background(), cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			var members []*grid.Member
			if err := s.View(func(tx store.ReadTx) error {
				if tx.GetGrid(id) == nil {
					return fmt.Errorf("grid %d not found", id)
				}
				members, err = tx.FindMembers(id)
				return err
			}); err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Name", "Type", "IPv4", "IPv6", "Status"})
			for _, m := range members {
				table.Append([]string{m.ID, m.Name, m.Type, m.IPv4, m.IPv6, m.Status})
			}
			table.Render()
			return nil
		},
	}
)

var gridExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export grid and member rows as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("export command takes exactly one file name")
		}
		s, err := openStore(context.Background(), cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		var (
			grids   []*grid.Grid
			members []*grid.Member
		)
		if err := s.View(func(tx store.ReadTx) error {
			var err error
			grids, err = tx.FindGrids()
			if err != nil {
				return err
			}
			for _, g := range grids {
				gm, err := tx.FindMembers(g.ID)
				if err != nil {
					return err
				}
				members = append(members, gm...)
			}
			return nil
		}); err != nil {
			return err
		}

		export := map[string]interface{}{
			"grids":   marshal.ToJSON(grid.Rows(grids), grid.GridSchema),
			"members": marshal.ToJSON(grid.MemberRows(members), grid.MemberSchema),
		}
		if err := ioutils.WriteJSON(args[0], export, 0600); err != nil {
			return err
		}
		fi, err := os.Stat(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d grids and %d members (%s)\n", len(grids), len(members), units.HumanSize(float64(fi.Size())))
		return nil
	},
}

func openStore(ctx context.Context, cmd *cobra.Command) (*store.MemoryStore, error) {
	dir, err := cmd.Flags().GetString("state-dir")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return store.Open(ctx, filepath.Join(dir, storeFile), clock.NewClock())
}

func init() {
	gridSyncCmd.Flags().Bool("force", false, "Sync grids even if they were synced recently")
	gridSyncCmd.Flags().Duration("min-wait", 0, "Skip grids synced less than this long ago")
	gridListCmd.Flags().BoolP("quiet", "q", false, "Only display IDs")

	gridCmd.AddCommand(
		gridSyncCmd,
		gridListCmd,
		gridMembersCmd,
		gridExportCmd,
	)
}
