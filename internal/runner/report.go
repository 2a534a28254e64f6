package runner

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/openraildev/consistfix/internal/resolve"
	"github.com/openraildev/consistfix/pkg/ascii"
)

var titleCaser = cases.Title(language.English)

// reportTiers fixes the display order; map iteration would shuffle it.
var reportTiers = []resolve.Tier{
	resolve.TierFastPath,
	resolve.TierLocal,
	resolve.TierGlobal,
	resolve.TierDefaults,
}

// Render formats the run summary as a bordered report for the terminal.
func Render(s *Summary) string {
	heading := "Repair Summary"
	switch s.Mode {
	case ModePreview:
		heading = "Repair Summary (preview)"
	case ModeCheck:
		heading = "Check Summary"
	}

	pairs := [][2]string{
		{titleCaser.String("files processed"), fmt.Sprintf("%d", s.Files)},
		{titleCaser.String("files changed"), fmt.Sprintf("%d", s.FilesChanged)},
	}
	if s.FilesFailed > 0 {
		pairs = append(pairs, [2]string{titleCaser.String("files failed"), fmt.Sprintf("%d", s.FilesFailed)})
	}
	pairs = append(pairs,
		[2]string{titleCaser.String("references"), fmt.Sprintf("%d", s.Stats.References)},
		[2]string{titleCaser.String("already correct"), fmt.Sprintf("%d", s.Stats.AlreadyCorrect)},
		[2]string{titleCaser.String("fixed"), fmt.Sprintf("%d", s.Stats.Fixed)},
		[2]string{titleCaser.String("unresolved"), fmt.Sprintf("%d", s.Stats.Unresolved)},
		[2]string{titleCaser.String("skipped"), fmt.Sprintf("%d", s.Stats.Skipped)},
	)
	for _, tier := range reportTiers {
		if n := s.Stats.ByTier[tier]; n > 0 {
			pairs = append(pairs, [2]string{"  via " + string(tier), fmt.Sprintf("%d", n)})
		}
	}

	lines := append([]string{heading, ""}, ascii.KeyValueLines(pairs)...)
	return ascii.Box(lines)
}
