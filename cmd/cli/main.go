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
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "studiofin-cli",
		Short: "StudioFin CLI tool",
		Long:  `A command line interface for interacting with the StudioFin API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the StudioFin API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated endpoints")

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the finance overview",
		Run: func(cmd *cobra.Command, args []string) {
			showDashboard()
		},
	}

	fundCmd := &cobra.Command{
		Use:   "fund",
		Short: "Fund operations",
	}

	fundStatusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the reserve fund balance",
		Run: func(cmd *cobra.Command, args []string) {
			showFund()
		},
	}

	freeCashCmd := &cobra.Command{
		Use:   "free-cash",
		Short: "Show uncommitted cash under the fund limit",
		Run: func(cmd *cobra.Command, args []string) {
			showFreeCash()
		},
	}

	fundCmd.AddCommand(fundStatusCmd, freeCashCmd)
	rootCmd.AddCommand(dashboardCmd, fundCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func get(path string) map[string]any {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	return result
}

func showDashboard() {
	result := get("/api/v1/dashboard")

	fmt.Printf("Total cash:   %v\n", result["total_cash"])
	fmt.Printf("Receivables:  %v\n", result["receivables"])
	fmt.Printf("Fund balance: %v\n", result["fund_balance"])
	fmt.Printf("Fund limit:   %v\n", result["fund_limit"])
}

func showFund() {
	result := get("/api/v1/admin/fund")

	fmt.Printf("Fund balance: %v\n", result["current_balance"])
	fmt.Printf("Updated at:   %v\n", result["updated_at"])
}

func showFreeCash() {
	result := get("/api/v1/adjustments/free-cash")

	fmt.Printf("Free cash: %v\n", result["free_cash"])
}
