package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// send <peer> <file>: seal a file and post the parcel to the drop server.
func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <peer> <file>",
		Short: "Encrypt a file and post it to the drop server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if wire.Drop == nil {
				return fmt.Errorf("no drop server configured. use --drop")
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
			if err := wire.Drop.Post(cmd.Context(), parcel); err != nil {
				return err
			}
			fmt.Printf("Sent %s to %s (%s)\n", args[1], args[0], parcel.To)
			return nil
		},
	}
}
