package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/axon/market"
	"github.com/rustyeddy/axon/risk"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Compute a risk-based position size",
	Long: `Compute a standard-lot position size from account balance, risk
percentage and stop-loss distance in pips.

Example:
  axon size --balance 10000 --risk 1 --stop 20 --symbol EURUSD`,
	Args: cobra.NoArgs,
	RunE: runSize,
}

var (
	sizeBalance float64
	sizeRisk    float64
	sizeStop    float64
	sizeSymbol  string
)

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().Float64VarP(&sizeBalance, "balance", "b", 10000, "account balance")
	sizeCmd.Flags().Float64VarP(&sizeRisk, "risk", "r", 1, "risk percent of balance")
	sizeCmd.Flags().Float64VarP(&sizeStop, "stop", "s", 20, "stop-loss distance in pips")
	sizeCmd.Flags().StringVar(&sizeSymbol, "symbol", "EURUSD", "instrument symbol")
}

func runSize(cmd *cobra.Command, args []string) error {
	inst, known := market.Find(sizeSymbol)
	result := risk.ComputeSize(sizeBalance, sizeRisk, sizeStop, sizeSymbol)

	if !known {
		fmt.Printf("%s is not in the instrument catalog; no sizing context\n", sizeSymbol)
	} else {
		fmt.Printf("%s (%s), pip value $%.2f per standard lot\n", inst.Symbol, inst.Type, inst.PipValue)
	}
	fmt.Printf("lot size:    %.2f\n", result.LotSize)
	fmt.Printf("dollar risk: $%.2f\n", result.DollarRisk)
	return nil
}
