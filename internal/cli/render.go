// Package cli renders wake-time results for terminals.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/blaisecz/sleep-calculator/internal/domain"
	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.Bold)
	dimColor    = color.New(color.FgHiBlack)
	bestColor   = color.New(color.FgGreen, color.Bold)
)

// easeColor picks a color for a 1-5 star rating.
func easeColor(stars int) *color.Color {
	switch {
	case stars >= 4:
		return color.New(color.FgGreen)
	case stars == 3:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// Render writes a human readable summary of resp to w.
func Render(w io.Writer, resp *domain.WakeTimesResponse) {
	headerColor.Fprintf(w, "Bedtime %s, asleep by %s, target %s\n", resp.Bedtime, resp.SleepOnset, resp.TargetWakeTime)
	dimColor.Fprintf(w, "%d min to target, %d complete cycles, %s policy\n",
		resp.MinutesUntilTarget, resp.BaselineCycles, resp.Policy)

	if len(resp.Candidates) == 0 {
		fmt.Fprintln(w, "No wake-up times fit before the target.")
		return
	}

	fmt.Fprintln(w)
	for i, c := range resp.Candidates {
		line := fmt.Sprintf("%8s  %4.1fh  %d cycles", c.WakeTime, c.SleepDurationHours, c.Cycles)
		if i == 0 && c.WakeEase != nil {
			bestColor.Fprint(w, line)
		} else {
			fmt.Fprint(w, line)
		}

		if c.Recommended {
			fmt.Fprint(w, "  ✓")
		} else {
			fmt.Fprint(w, "   ")
		}

		if c.WakeEase != nil {
			fmt.Fprintf(w, "  %3d%%  ", c.QualityPercent)
			easeColor(c.WakeEase.Stars).Fprintf(w, "%s %s", stars(c.WakeEase.Stars), c.WakeEase.Label)
		} else {
			dimColor.Fprintf(w, "  %s sleep", c.SleepStage)
		}
		fmt.Fprintln(w)
	}
}

func stars(n int) string {
	n = max(0, min(n, 5))
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
