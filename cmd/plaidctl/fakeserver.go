package main

import (
	"github.com/spf13/cobra"

	"github.com/adamwoolhether/plaid/internal/web/server"
	"github.com/adamwoolhether/plaid/plaidtest"
)

func (a *app) fakeServerCmd() *cobra.Command {
	var (
		addr                        string
		clientID, secret, publicKey string
		origins                     []string
	)

	cmd := &cobra.Command{
		Use:   "fake-server",
		Short: "Serve a local fake of the API until interrupted",
		Long: "Serve a local fake of the API until interrupted.\n\n" +
			"Point clients at it with --base-url http://<addr>/ and the credentials below.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []plaidtest.Option{
				plaidtest.WithCredentials(clientID, secret, publicKey),
				plaidtest.WithLogger(a.logger),
			}
			if len(origins) > 0 {
				opts = append(opts, plaidtest.WithCORS(origins...))
			}
			fake := plaidtest.New(opts...)

			srv := server.New(fake, server.WithAddr(addr), server.WithLogger(a.logger))
			return srv.Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", server.DefaultAddr, "Address to listen on")
	flags.StringVar(&clientID, "client-id", plaidtest.ClientID, "Accepted client id")
	flags.StringVar(&secret, "secret", plaidtest.Secret, "Accepted secret")
	flags.StringVar(&publicKey, "public-key", plaidtest.PublicKey, "Accepted public key")
	flags.StringSliceVar(&origins, "cors-origins", nil, "Browser origins allowed to call the server, e.g. http://localhost:*")

	return cmd
}
