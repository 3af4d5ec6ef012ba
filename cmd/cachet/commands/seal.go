package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// seal <peer> <file>: encrypt a file for a peer into a parcel file.
func sealCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "seal <peer> <file>",
		Short: "Encrypt a file for a peer into a parcel file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			peer, err := lookupPeer(args[0])
			if err != nil {
				return err
			}
			plaintext, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			id, err := wire.Identity.Load(passphrase)
			if err != nil {
				return err
			}
			parcel, err := wire.Share.Seal(plaintext, id, peer)
			if err != nil {
				return err
			}
			if out == "" {
				out = args[1] + ".parcel"
			}
			raw, err := json.MarshalIndent(parcel, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return err
			}
			fmt.Printf("Sealed for %s -> %s\n", args[0], out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output parcel path (default <file>.parcel)")
	return cmd
}
