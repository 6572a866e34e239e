package main

import "github.com/urfave/cli/v3"

// optString returns the flag's value only when the user set it, so partial
// update requests omit untouched fields.
func optString(cmd *cli.Command, name string) *string {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.String(name)
	return &v
}

func optInt(cmd *cli.Command, name string) *int {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.Int(name)
	return &v
}
