// Package resolve implements match scoring and the tiered resolution protocol
// over the asset catalog.
package resolve

import (
	"strings"

	"github.com/openraildev/consistfix/internal/catalog"
	"github.com/openraildev/consistfix/internal/classify"
	"github.com/openraildev/consistfix/internal/normalize"
)

// RejectScore is the hard-reject sentinel. Any guardrail violation returns it
// immediately; additive bonuses can never recover from it.
const RejectScore = -1 << 20

// Additive scoring weights. Same-folder is deliberately the largest single
// bonus: an asset that moved within its folder is the most common breakage.
const (
	sameFolderBonus  = 120
	exactNameBonus   = 100
	substringBonus   = 40
	tokenOverlapCap  = 80
	classSeriesBonus = 90
	classOnlyBonus   = 50
	familyBonus      = 70
	stockBonus       = 30
	coachBonus       = 60
	freightBonus     = 60
	containerBonus   = 40
	cabooseBonus     = 50
	setHintBonus     = 15
)

// Options is the flat option surface consumed from the external caller.
type Options struct {
	StrictClass     bool
	StrictType      bool
	LocalThreshold  int
	GlobalThreshold int
	Explain         bool
	Expander        *normalize.Expander
}

func (o Options) expander() *normalize.Expander {
	if o.Expander != nil {
		return o.Expander
	}
	return normalize.NewExpander()
}

// Scorer computes match quality between a wanted reference and candidates.
// It is a pure function of its inputs; ties are broken by the caller's
// candidate ordering, never here.
type Scorer struct {
	idx      *catalog.AssetIndex
	opts     Options
	expander *normalize.Expander
}

// NewScorer creates a scorer bound to an index and options.
func NewScorer(idx *catalog.AssetIndex, opts Options) *Scorer {
	return &Scorer{idx: idx, opts: opts, expander: opts.expander()}
}

// Score evaluates cand against the wanted shape/folder pair. Returns
// RejectScore when a guardrail fires.
func (s *Scorer) Score(wantedShape, wantedFolder string, cand *catalog.AssetRecord) int {
	if s.rejected(wantedShape, wantedFolder, cand) {
		return RejectScore
	}

	score := 0

	if strings.EqualFold(wantedFolder, cand.Folder) {
		score += sameFolderBonus
	}

	wantedStripped := normalize.WithoutFolderTokens(wantedShape, wantedFolder)
	candStripped := normalize.WithoutFolderTokens(cand.Name, cand.Folder)
	if wantedStripped != "" && wantedStripped == candStripped {
		score += exactNameBonus
	}

	wantedNorm := normalize.Normalize(wantedShape)
	if wantedNorm != "" && cand.NormalizedName != "" {
		wc := strings.ReplaceAll(wantedNorm, " ", "")
		cc := strings.ReplaceAll(cand.NormalizedName, " ", "")
		if strings.Contains(cc, wc) || strings.Contains(wc, cc) {
			score += substringBonus
		}
	}

	wantedTokens := s.expander.Tokenize(wantedShape)
	candTokens := s.expander.Tokenize(cand.Name)
	if overlap := wantedTokens.Overlap(candTokens); overlap > 0 {
		union := len(wantedTokens) + len(candTokens) - overlap
		if union > 0 {
			bonus := tokenOverlapCap * overlap / union
			if bonus > tokenOverlapCap {
				bonus = tokenOverlapCap
			}
			score += bonus
		}
	}

	score += s.attributeBonuses(wantedShape, wantedFolder, cand)

	return score
}

func (s *Scorer) attributeBonuses(wantedShape, wantedFolder string, cand *catalog.AssetRecord) int {
	bonus := 0

	we := classify.ParseEngineTokens(wantedShape, wantedFolder)
	ce := classify.ParseEngineTokens(cand.Name, cand.Folder)
	if we.ClassSeries != "" && we.ClassSeries == ce.ClassSeries {
		bonus += classSeriesBonus
	} else if we.Class != "" && we.Class == ce.Class {
		bonus += classOnlyBonus
	}
	if we.Family != "" && we.Family == ce.Family {
		bonus += familyBonus
	}

	ww := classify.ParseWagonTokens(wantedShape, wantedFolder)
	cw := classify.ParseWagonTokens(cand.Name, cand.Folder)
	if ww.Stock != "" && ww.Stock == cw.Stock {
		bonus += stockBonus
	}
	if ww.Coach != "" && ww.Coach == cw.Coach {
		bonus += coachBonus
	}
	if ww.Freight != "" && ww.Freight == cw.Freight {
		bonus += freightBonus
	}
	if ww.ContainerVendor != "" && ww.ContainerVendor == cw.ContainerVendor {
		bonus += containerBonus
	}
	if ww.IsCaboose && cw.IsCaboose {
		bonus += cabooseBonus
	}
	if ww.SetHint != "" && ww.SetHint == cw.SetHint {
		bonus += setHintBonus
	}

	return bonus
}

// rejected applies the hard guardrails, in evaluation order.
func (s *Scorer) rejected(wantedShape, wantedFolder string, cand *catalog.AssetRecord) bool {
	// Pseudo-references only ever match a default asset
	if classify.IsPseudoReference(wantedShape) && !s.hasPseudoDefault(cand.Kind) {
		return true
	}

	we := classify.ParseEngineTokens(wantedShape, wantedFolder)
	ce := classify.ParseEngineTokens(cand.Name, cand.Folder)

	// Multiple-unit and classed-locomotive identifiers never cross-match
	if we.Family != "" && ce.Family == "" && ce.Class != "" {
		return true
	}
	if ce.Family != "" && we.Family == "" && we.Class != "" {
		return true
	}

	if s.opts.StrictClass {
		if we.ClassSeries != "" && ce.ClassSeries != "" && we.ClassSeries != ce.ClassSeries {
			return true
		}
	}

	if s.opts.StrictType {
		ww := classify.ParseWagonTokens(wantedShape, wantedFolder)
		cw := classify.ParseWagonTokens(cand.Name, cand.Folder)
		if ww.Stock != "" && cw.Stock != "" && ww.Stock != cw.Stock {
			return true
		}
		if ww.Coach != "" && cw.Coach != "" && ww.Coach != cw.Coach {
			return true
		}
		if ww.Freight != "" && cw.Freight != "" && ww.Freight != cw.Freight {
			return true
		}
		if ww.ContainerVendor != "" && cw.ContainerVendor != "" && ww.ContainerVendor != cw.ContainerVendor {
			return true
		}
		if ww.IsCaboose != cw.IsCaboose {
			return true
		}
	}

	return false
}

// hasPseudoDefault reports whether the defaults folder holds an ancillary
// sound/effect asset of the given kind.
func (s *Scorer) hasPseudoDefault(kind catalog.Kind) bool {
	for _, rec := range s.idx.DefaultsPool(kind) {
		if classify.IsPseudoReference(rec.Name) {
			return true
		}
	}
	return false
}
