package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	utf7 "github.com/zostay/go-imap-utf7"
)

var oneCmd = &cobra.Command{
	Use:   "one name",
	Short: "Shows the round-trip of a single mailbox name",
	Args:  cobra.ExactArgs(1),
	Run:   RunOne,
}

func init() {
	rootCmd.AddCommand(oneCmd)
}

func RunOne(cmd *cobra.Command, args []string) {
	name := args[0]
	enc := utf7.Encode(name)
	dec := utf7.Decode(enc)

	fmt.Printf("name    = %q\n", name)
	fmt.Printf("encoded = %q\n", enc)
	fmt.Printf("decoded = %q\n", dec)

	if dec != name {
		fmt.Println("MISMATCH")
		os.Exit(1)
	}
}
