package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cachet/internal/crypto"
	"cachet/internal/domain"
)

func contactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage named peer public keys",
	}
	cmd.AddCommand(contactAddCmd(), contactListCmd())
	return cmd
}

// contact add <name> <base64 public key>
func contactAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <public-key>",
		Short: "Record a peer's public key under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := crypto.B64Dec(args[1])
			if err != nil {
				return fmt.Errorf("public key is not base64: %w", err)
			}
			if len(raw) != 32 {
				return fmt.Errorf("public key must be 32 bytes, got %d", len(raw))
			}
			var key domain.X25519Public
			copy(key[:], raw)
			if err := wire.Contacts.SaveContact(args[0], key); err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", args[0], crypto.Fingerprint(key.Slice()))
			return nil
		},
	}
}

func contactListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := wire.Contacts.ListContacts()
			if err != nil {
				return err
			}
			for _, c := range contacts {
				fmt.Printf("%-20s %s  %s\n", c.Name, crypto.Fingerprint(c.Key.Slice()), crypto.B64(c.Key.Slice()))
			}
			return nil
		},
	}
}

// lookupPeer resolves a contact name to its public key.
func lookupPeer(name string) (domain.X25519Public, error) {
	key, ok, err := wire.Contacts.LookupContact(name)
	if err != nil {
		return domain.X25519Public{}, err
	}
	if !ok {
		return domain.X25519Public{}, fmt.Errorf("unknown contact %q (use: cachet contact add)", name)
	}
	return key, nil
}
