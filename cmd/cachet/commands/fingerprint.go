package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cachet/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the identity fingerprint and public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := wire.Identity.Load(passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\nPublic key:  %s\n",
				crypto.Fingerprint(id.Public.Slice()), crypto.B64(id.Public.Slice()))
			return nil
		},
	}
}
