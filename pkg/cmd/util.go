package cmd

import "github.com/spf13/cobra"

// GetFlag gets an expected boolean flag, or panics if the flag was never
// registered (a programming error), matching the teacher's pkg/cmd/util.go
// helpers.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}

	return r
}

// GetString gets an expected string flag, or panics if the flag was never
// registered.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}

	return r
}
