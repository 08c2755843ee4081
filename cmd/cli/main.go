package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "walletd-cli",
		Short: "walletd CLI tool",
		Long:  `A command line interface for interacting with the walletd API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the walletd API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(walletCmd(), ledgerCmd(), statsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "balance <walletId>",
		Short: "Show a wallet balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/wallet/" + args[0] + "/balance")
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "transactions <walletId>",
		Short: "List a wallet's ledger entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/wallet/" + args[0] + "/transactions")
		},
	})

	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "consistency",
		Short: "Check that every wallet balance matches its ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, status, err := getJSON(baseURL + "/ledger/consistency")
			if err != nil {
				return err
			}

			if status != http.StatusOK {
				printJSON(body)
				return fmt.Errorf("consistency check failed (status %d)", status)
			}

			fmt.Println("Consistency check PASSED")
			printJSON(body)
			return nil
		},
	})

	return cmd
}

func statsCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show purchase revenue statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint("/transaction/purchases/stats?period=" + period)
		},
	}

	cmd.Flags().StringVar(&period, "period", "month", "Reporting period (all, day, week, month, year)")

	return cmd
}

func getAndPrint(path string) error {
	body, status, err := getJSON(baseURL + path)
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		printJSON(body)
		return fmt.Errorf("request failed (status %d)", status)
	}

	printJSON(body)
	return nil
}

func getJSON(url string) (any, int, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to parse response: %w", err)
	}

	return body, resp.StatusCode, nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
