package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cachet/internal/app"
)

var (
	home       string
	passphrase string
	dropURL    string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cachet",
		Short: "Encrypted peer-to-peer data sharing CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".cachet")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			wire = app.NewWire(app.Config{Home: home, DropURL: dropURL})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.cachet)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")
	root.PersistentFlags().StringVar(&dropURL, "drop", "", "drop server base URL (e.g. http://127.0.0.1:8080)")

	root.AddCommand(initCmd(), fingerprintCmd(), contactCmd(), sealCmd(), openCmd(), sendCmd(), recvCmd())
	return root.Execute()
}
