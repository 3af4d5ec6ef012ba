package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cachet/internal/domain"
)

// open <parcel>: decrypt a parcel file addressed to us.
func openCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "open <parcel>",
		Short: "Decrypt a parcel file addressed to us",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var parcel domain.Parcel
			if err := json.Unmarshal(raw, &parcel); err != nil {
				return err
			}
			id, err := wire.Identity.Load(passphrase)
			if err != nil {
				return err
			}
			plaintext, err := wire.Share.Open(parcel, id)
			if err != nil {
				return err
			}
			if out == "" {
				out = strings.TrimSuffix(args[0], ".parcel")
				if out == args[0] {
					out = args[0] + ".out"
				}
			}
			if err := os.WriteFile(out, plaintext, 0o644); err != nil {
				return err
			}
			fmt.Printf("Opened parcel from %s -> %s\n", parcel.From, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default strips .parcel)")
	return cmd
}
