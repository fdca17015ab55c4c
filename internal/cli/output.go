package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
	"github.com/iamasit07/4-in-a-row/simulator/internal/repository/redis"
	"github.com/iamasit07/4-in-a-row/simulator/internal/service/match"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type report struct {
	Player1 string       `json:"player1"`
	Player2 string       `json:"player2"`
	Rules   domain.Rules `json:"rules"`
	Seed    uint64       `json:"seed"`
	Tally   match.Tally  `json:"tally"`
}

func checkOutput(format string) error {
	switch format {
	case outputText, outputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q, expected text or json", format)
	}
}

func render(w io.Writer, format string, r report) error {
	if format == outputJSON {
		return writeJSON(w, r)
	}

	t := r.Tally
	fmt.Fprintf(w, "Results of %d games on a %dx%d board, connect %d (seed %d):\n\n",
		t.Games, r.Rules.Rows, r.Rules.Columns, r.Rules.ToWin, r.Seed)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Outcome\tScore (%)\tCount\tElo")
	fmt.Fprintf(tw, "Wins: %s\t%.1f%%\t%d\t%.0f\n", r.Player1, t.Percent(t.Player1Wins), t.Player1Wins, t.Ratings.Player1)
	fmt.Fprintf(tw, "Wins: %s\t%.1f%%\t%d\t%.0f\n", r.Player2, t.Percent(t.Player2Wins), t.Player2Wins, t.Ratings.Player2)
	fmt.Fprintf(tw, "Draws\t%.1f%%\t%d\t\n", t.Percent(t.Draws), t.Draws)
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nAverage game length: %.1f moves\n", t.AverageMoves())
	return err
}

func renderCounts(w io.Writer, format, player1, player2 string, c redis.Counts) error {
	if format == outputJSON {
		return writeJSON(w, struct {
			Player1 string `json:"player1"`
			Player2 string `json:"player2"`
			redis.Counts
		}{player1, player2, c})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Matchup\t%s vs %s\n", player1, player2)
	fmt.Fprintf(tw, "Games\t%d\n", c.Games)
	fmt.Fprintf(tw, "Wins: %s\t%d\n", player1, c.Player1Wins)
	fmt.Fprintf(tw, "Wins: %s\t%d\n", player2, c.Player2Wins)
	fmt.Fprintf(tw, "Draws\t%d\n", c.Draws)
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
