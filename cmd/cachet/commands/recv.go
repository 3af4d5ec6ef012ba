package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cachet/internal/crypto"
	"cachet/internal/domain"
)

// recv: fetch, open and acknowledge queued parcels for our fingerprint.
func recvCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "recv",
		Short: "Fetch and decrypt queued parcels",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if wire.Drop == nil {
				return fmt.Errorf("no drop server configured. use --drop")
			}
			id, err := wire.Identity.Load(passphrase)
			if err != nil {
				return err
			}
			me := domain.Fingerprint(crypto.Fingerprint(id.Public.Slice()))

			parcels, err := wire.Drop.Fetch(cmd.Context(), me, 0)
			if err != nil {
				return err
			}

			// Open in order; ack only what we handled so a failed parcel
			// stays queued.
			opened := 0
			for i, p := range parcels {
				plaintext, err := wire.Share.Open(p, id)
				if err != nil {
					fmt.Fprintf(os.Stderr, "parcel %d: %v\n", i, err)
					break
				}
				path := filepath.Join(outDir, parcelFileName(p))
				if err := os.WriteFile(path, plaintext, 0o644); err != nil {
					return err
				}
				fmt.Printf("[%s] %s (%d bytes)\n", crypto.Fingerprint(p.SenderKey.Slice()), path, len(plaintext))
				opened++
			}
			if opened > 0 {
				if err := wire.Drop.Ack(cmd.Context(), me, opened); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "dir", "d", ".", "directory to write received files")
	return cmd
}

// parcelFileName names the output file from the sender key's locally
// computed fingerprint and the timestamp. The From field is a sender-chosen
// string and must never reach the filesystem.
func parcelFileName(p domain.Parcel) string {
	return fmt.Sprintf("parcel-%s-%d", crypto.Fingerprint(p.SenderKey.Slice()), p.Timestamp)
}
