package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/suyash01/splitease/internal/settlement"
	"go.uber.org/zap"
)

func newSettleCommand() *cobra.Command {
	var asJSON, showTrace bool

	cmd := &cobra.Command{
		Use:   "settle [file]",
		Short: "Settle the expenses listed in a file or on stdin",
		Long: `Reads one participant per line, a name and the amount they paid:

  Alice 90
  Bob 60
  Carol 30

and prints who pays whom so that everyone paid the same share.
Without a file, or with "-", the list is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			res, err := settlement.Settle(string(input))
			if err != nil {
				return err
			}
			zap.L().Debug("settled",
				zap.Int("contributions", len(res.Contributions)),
				zap.Int("transactions", len(res.Transactions)),
			)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res.Summary())
			}
			if showTrace {
				fmt.Fprintln(out, res.Trace)
			}
			return printTransactions(out, res)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&showTrace, "trace", false, "print the intermediate steps")
	return cmd
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return b, nil
}

func printTransactions(w io.Writer, res *settlement.Result) error {
	if len(res.Transactions) == 0 {
		_, err := fmt.Fprintf(w, "No payments needed, fair share %s\n", settlement.FormatAmount(res.FairShare))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FROM\tTO\tAMOUNT")
	for _, tx := range res.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tx.From, tx.To, settlement.FormatAmount(tx.Amount))
	}
	fmt.Fprintf(tw, "\nfair share\t\t%s\n", settlement.FormatAmount(res.FairShare))
	return tw.Flush()
}
