package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hashchain-labs/wots-go/wots"
)

// addKeygenCommand registers the key generation command. It prints the
// public key in the canonical byte layout; the private seeds never leave
// the process.
func addKeygenCommand(root *cobra.Command, logger *zerolog.Logger) {
	var w uint

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and print the public key in hex",
		RunE: func(cmd *cobra.Command, _ []string) error {
			scheme, err := wots.NewScheme(w)
			if err != nil {
				return err
			}
			defer scheme.Destroy()

			encoded, err := wots.EncodePublicKey(scheme.Params(), scheme.PublicKey())
			if err != nil {
				return err
			}

			logger.Debug().
				Uint("w", w).
				Int("chains", scheme.Params().NumChains).
				Int("encoded_bytes", len(encoded)).
				Msg("key pair generated")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "w = %d, %d chains of length %d\n", w, scheme.Params().NumChains, scheme.Params().ChainLength)
			for i, endpoint := range scheme.PublicKey() {
				fmt.Fprintf(out, "chain %3d: %s\n", i, hex.EncodeToString(endpoint))
			}
			fmt.Fprintf(out, "encoded: %s\n", hex.EncodeToString(encoded))

			return nil
		},
	}

	cmd.Flags().UintVarP(&w, "param", "w", 8, "Winternitz parameter")

	root.AddCommand(cmd)
}
