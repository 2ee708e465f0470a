package main

import (
	"github.com/spf13/cobra"

	"github.com/adamwoolhether/plaid"
)

func (a *app) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List transaction categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(c *plaid.Client) (*plaid.GetCategoriesResponse, error) {
				return c.GetCategories(cmd.Context())
			})
		},
	}
}

func (a *app) institutionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "institutions",
		Short: "Browse supported institutions",
	}

	var (
		count, offset int
		products      []string
		countryCodes  []string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Page through all institutions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(c *plaid.Client) (*plaid.GetInstitutionsResponse, error) {
				opts := plaid.GetInstitutionsOptions{Products: products, CountryCodes: countryCodes}
				return c.GetInstitutionsWithOptions(cmd.Context(), count, offset, opts)
			})
		},
	}
	listCmd.Flags().IntVar(&count, "count", 0, "Page size (0 uses the API default)")
	listCmd.Flags().IntVar(&offset, "offset", 0, "Number of institutions to skip")
	listCmd.Flags().StringSliceVar(&products, "products", nil, "Only institutions supporting these products")
	listCmd.Flags().StringSliceVar(&countryCodes, "country-codes", nil, "Only institutions in these countries")

	var includeStatus bool
	getCmd := &cobra.Command{
		Use:   "get <institution-id>",
		Short: "Show one institution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(c *plaid.Client) (*plaid.GetInstitutionByIDResponse, error) {
				return c.GetInstitutionByIDWithOptions(cmd.Context(), args[0], plaid.GetInstitutionByIDOptions{IncludeStatus: includeStatus})
			})
		},
	}
	getCmd.Flags().BoolVar(&includeStatus, "include-status", false, "Include the institution's health status")

	var searchProducts []string
	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search institutions by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(c *plaid.Client) (*plaid.SearchInstitutionsResponse, error) {
				return c.SearchInstitutions(cmd.Context(), args[0], searchProducts)
			})
		},
	}
	searchCmd.Flags().StringSliceVar(&searchProducts, "products", nil, "Only institutions supporting these products")

	cmd.AddCommand(listCmd, getCmd, searchCmd)
	return cmd
}

func (a *app) itemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage Items",
	}

	getCmd := &cobra.Command{
		Use:   "get <access-token>",
		Short: "Show the Item behind an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(c *plaid.Client) (*plaid.GetItemResponse, error) {
				return c.GetItem(cmd.Context(), args[0])
			})
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <access-token>",
		Short: "Remove an Item and invalidate its access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(c *plaid.Client) (*plaid.RemoveItemResponse, error) {
				return c.RemoveItem(cmd.Context(), args[0])
			})
		},
	}

	exchangeCmd := &cobra.Command{
		Use:   "exchange <public-token>",
		Short: "Exchange a public token for an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(c *plaid.Client) (*plaid.ExchangePublicTokenResponse, error) {
				return c.ExchangePublicToken(cmd.Context(), args[0])
			})
		},
	}

	cmd.AddCommand(getCmd, removeCmd, exchangeCmd)
	return cmd
}

func (a *app) accountsCmd() *cobra.Command {
	var accountIDs []string

	cmd := &cobra.Command{
		Use:   "accounts <access-token>",
		Short: "List the accounts of an Item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(c *plaid.Client) (*plaid.GetAccountsResponse, error) {
				return c.GetAccountsWithOptions(cmd.Context(), args[0], plaid.GetAccountsOptions{AccountIDs: accountIDs})
			})
		},
	}
	cmd.Flags().StringSliceVar(&accountIDs, "account-ids", nil, "Restrict to these accounts")

	return cmd
}

func (a *app) balancesCmd() *cobra.Command {
	var accountIDs []string

	cmd := &cobra.Command{
		Use:   "balances <access-token>",
		Short: "Fetch real-time balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(c *plaid.Client) (*plaid.GetBalancesResponse, error) {
				return c.GetBalancesWithOptions(cmd.Context(), args[0], plaid.GetBalancesOptions{AccountIDs: accountIDs})
			})
		},
	}
	cmd.Flags().StringSliceVar(&accountIDs, "account-ids", nil, "Restrict to these accounts")

	return cmd
}

func (a *app) transactionsCmd() *cobra.Command {
	var opts plaid.GetTransactionsOptions

	cmd := &cobra.Command{
		Use:   "transactions <access-token>",
		Short: "List transactions in a date range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(c *plaid.Client) (*plaid.GetTransactionsResponse, error) {
				return c.GetTransactionsWithOptions(cmd.Context(), args[0], opts)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.StartDate, "start", "", "First day, YYYY-MM-DD")
	flags.StringVar(&opts.EndDate, "end", "", "Last day, YYYY-MM-DD")
	flags.IntVar(&opts.Count, "count", 100, "Page size")
	flags.IntVar(&opts.Offset, "offset", 0, "Number of transactions to skip")
	flags.StringSliceVar(&opts.AccountIDs, "account-ids", nil, "Restrict to these accounts")

	return cmd
}

func (a *app) sandboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Sandbox-only helpers",
	}

	var (
		products []string
		opts     plaid.CreateSandboxPublicTokenOptions
	)

	publicTokenCmd := &cobra.Command{
		Use:   "public-token <institution-id>",
		Short: "Create a public token without going through Link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, cmd, func(c *plaid.Client) (*plaid.CreateSandboxPublicTokenResponse, error) {
				return c.CreateSandboxPublicTokenWithOptions(cmd.Context(), args[0], products, opts)
			})
		},
	}

	flags := publicTokenCmd.Flags()
	flags.StringSliceVar(&products, "products", []string{"transactions"}, "Initial products of the Item")
	flags.StringVar(&opts.Webhook, "webhook", "", "Webhook URL for the Item")
	flags.StringVar(&opts.OverrideUsername, "override-username", "", "Sandbox test username")
	flags.StringVar(&opts.OverridePassword, "override-password", "", "Sandbox test password")

	cmd.AddCommand(publicTokenCmd)
	return cmd
}
