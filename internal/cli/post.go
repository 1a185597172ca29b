package cli

import (
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post URL",
	Short: "Make a POST request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runVerb(cmd, "post", args)
	},
}

func init() {
	addRequestFlags(postCmd)
	postCmd.Flags().StringP("data", "d", "", "Request body: JSON when it parses, a plain string otherwise")
}
