package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openstack/networking-infoblox/ipam/ea"
)

var (
	eaCmd = &cobra.Command{
		Use:   "ea",
		Short: "Work with extensible attributes",
	}

	eaGetCmd = &cobra.Command{
		Use:   "get <name>",
		Short: "Read an extensible attribute from a grid object",
		Long:  "Read an extensible attribute from a grid object given as JSON in --file, or on stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("get command takes exactly one attribute name")
			}
			flags := cmd.Flags()
			file, err := flags.GetString("file")
			if err != nil {
				return err
			}
			list, err := flags.GetBool("list")
			if err != nil {
				return err
			}

			obj, err := readObject(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			v := ea.Get(args[0], obj, list)
			if v == nil {
				return fmt.Errorf("attribute %q not found", args[0])
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(v)
		},
	}

	eaBuildCmd = &cobra.Command{
		Use:   "build [name=value...]",
		Short: "Build an extensible attribute set",
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs := make(map[string]interface{}, len(args))
			for _, arg := range args {
				kv := strings.SplitN(arg, "=", 2)
				if len(kv) != 2 || kv[0] == "" {
					return fmt.Errorf("invalid attribute %q, expected name=value", arg)
				}
				attrs[kv[0]] = kv[1]
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(ea.Build(attrs))
		},
	}
)

func readObject(stdin io.Reader, file string) (map[string]interface{}, error) {
	var (
		p   []byte
		err error
	)
	if file == "" || file == "-" {
		p, err = ioutil.ReadAll(stdin)
	} else {
		p, err = ioutil.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(p, &obj); err != nil {
		return nil, fmt.Errorf("object is not a JSON object: %v", err)
	}
	return obj, nil
}

func init() {
	eaGetCmd.Flags().StringP("file", "f", "", "File holding the grid object, stdin if empty")
	eaGetCmd.Flags().Bool("list", false, "Always print the value as a list")

	eaCmd.AddCommand(
		eaGetCmd,
		eaBuildCmd,
	)
}
