package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	utf7 "github.com/zostay/go-imap-utf7"
)

var listCmd = &cobra.Command{
	Use:   "list file",
	Short: "Round-trips every mailbox name in a file, one per line",
	Args:  cobra.ExactArgs(1),
	Run:   RunList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func RunList(cmd *cobra.Command, args []string) {
	path := args[0]
	listFile, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer func() { _ = listFile.Close() }()

	checked, failed := 0, 0
	s := bufio.NewScanner(listFile)
	for s.Scan() {
		name := s.Text()
		enc := utf7.Encode(name)
		dec := utf7.Decode(enc)
		checked++

		if dec != name {
			fmt.Printf("MISMATCH %q -> %q -> %q\n", name, enc, dec)
			failed++
		}
	}
	if err := s.Err(); err != nil {
		panic(err)
	}

	fmt.Printf("checked = %d\n", checked)
	fmt.Printf("failed  = %d\n", failed)
	if failed > 0 {
		os.Exit(1)
	}
}
