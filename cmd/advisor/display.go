package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/yourusername/parlay-advisor/internal/models"
)

// renderResult prints an evaluated parlay as a leg table followed by the
// verdict block and rationale.
func renderResult(w io.Writer, parlay *models.Parlay, result *models.EvaluationResult) {
	fmt.Fprintf(w, "\nPARLAY EVALUATION  %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "Stake: $%.2f\n\n", parlay.Stake)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEG\tDESCRIPTION\tODDS\tIMPLIED\tADJUSTED")
	for _, leg := range parlay.Legs {
		score := result.LegBreakdown[leg.LegID]
		fmt.Fprintf(tw, "%s\t%s\t%+d\t%.1f%%\t%.1f%%\n",
			leg.LegID, leg.Description, leg.OddsAmerican,
			score.ImpliedProb*100, score.AdjustedProb*100)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nVerdict:        %s\n", result.Verdict)
	fmt.Fprintf(w, "Value score:    %.3f\n", result.OverallValueScore)
	if result.ExpectedValue != nil {
		fmt.Fprintf(w, "Expected value: $%.2f\n", *result.ExpectedValue)
	}
	if result.CombinedProbability != nil {
		fmt.Fprintf(w, "Hit probability: %.2f%%\n", *result.CombinedProbability*100)
	}

	if len(result.Rationale) > 0 {
		fmt.Fprintln(w, "\nRationale:")
		for _, line := range result.Rationale {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	fmt.Fprintln(w)
}
