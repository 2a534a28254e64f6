package consist

import (
	"bytes"

	"github.com/openraildev/consistfix/internal/catalog"
	"github.com/openraildev/consistfix/internal/classify"
	"github.com/openraildev/consistfix/internal/resolve"
	"github.com/openraildev/consistfix/pkg/logger"
)

// Outcome classifies what happened to one reference during the semantic pass.
type Outcome int

const (
	OutcomeAlreadyCorrect Outcome = iota
	OutcomeFixed
	OutcomeUnresolved
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFixed:
		return "fixed"
	case OutcomeUnresolved:
		return "unresolved"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "already correct"
	}
}

// Change records one reference-level decision for reporting.
type Change struct {
	Line    int
	Outcome Outcome
	Tier    resolve.Tier
	Score   int
	Kind    catalog.Kind
	Before  Reference
	After   Reference
}

// Stats aggregates reference outcomes for a single file.
type Stats struct {
	References     int
	Fixed          int
	AlreadyCorrect int
	Unresolved     int
	Skipped        int
	ByTier         map[resolve.Tier]int
}

func newStats() Stats {
	return Stats{ByTier: make(map[resolve.Tier]int)}
}

// Merge folds other into s.
func (s *Stats) Merge(other Stats) {
	s.References += other.References
	s.Fixed += other.Fixed
	s.AlreadyCorrect += other.AlreadyCorrect
	s.Unresolved += other.Unresolved
	s.Skipped += other.Skipped
	if s.ByTier == nil {
		s.ByTier = make(map[resolve.Tier]int)
	}
	for tier, n := range other.ByTier {
		s.ByTier[tier] += n
	}
}

// Rewriter applies the two passes over a consist file: a semantic pass that
// repairs dangling references through the resolution engine, then a formatting
// pass that renders every reference line in the canonical form. The passes are
// independent: a file with no dangling references can still change shape.
type Rewriter struct {
	idx    *catalog.AssetIndex
	engine *resolve.Engine
}

// NewRewriter creates a rewriter over the given index and engine.
func NewRewriter(idx *catalog.AssetIndex, engine *resolve.Engine) *Rewriter {
	return &Rewriter{idx: idx, engine: engine}
}

// Rewrite processes raw file bytes and returns the rewritten bytes, the
// per-reference changes, and per-file stats. Encoding, BOM, and line endings
// survive the round trip. changed is false when the output is byte-identical.
func (rw *Rewriter) Rewrite(sourceFile string, data []byte) (out []byte, changes []Change, stats Stats, changed bool) {
	text, enc := DecodeText(data)
	ending := detectLineEnding(text)
	lines := splitLines(text, ending)
	stats = newStats()

	for i, line := range lines {
		ref, ok := ParseReference(line)
		if !ok {
			continue
		}
		stats.References++

		change := Change{Line: i + 1, Kind: ref.Kind, Before: ref, After: ref}

		switch {
		case rw.idx.Contains(ref.Folder, ref.Shape):
			change.Outcome = OutcomeAlreadyCorrect
			stats.AlreadyCorrect++

		case rw.isSkippablePseudo(ref):
			change.Outcome = OutcomeSkipped
			stats.Skipped++
			logger.Debug("Ancillary reference left untouched",
				logger.String("file", sourceFile),
				logger.String("shape", ref.Shape))

		default:
			result := rw.engine.Resolve(resolve.Request{
				Kind:       ref.Kind,
				Shape:      ref.Shape,
				Folder:     ref.Folder,
				SourceFile: sourceFile,
				LineText:   line,
			})
			if !result.Resolved() {
				change.Outcome = OutcomeUnresolved
				stats.Unresolved++
				stats.ByTier[resolve.TierUnresolved]++
				logger.Warn("Reference unresolved",
					logger.String("file", sourceFile),
					logger.String("kind", string(ref.Kind)),
					logger.String("shape", ref.Shape),
					logger.String("folder", ref.Folder))
				break
			}
			after := Reference{
				Kind:   ref.Kind,
				Shape:  result.Record.Name,
				Folder: result.Record.Folder,
				Indent: ref.Indent,
			}
			lines[i] = CanonicalLine(after)
			change.Outcome = OutcomeFixed
			change.After = after
			change.Tier = result.Tier
			change.Score = result.Score
			stats.Fixed++
			stats.ByTier[result.Tier]++
			fields := []logger.Field{
				logger.String("file", sourceFile),
				logger.String("kind", string(ref.Kind)),
				logger.String("from", ref.Folder+"/"+ref.Shape),
				logger.String("to", after.Folder+"/"+after.Shape),
				logger.String("tier", string(result.Tier)),
				logger.Int("score", result.Score),
				logger.String("role", string(result.Role)),
			}
			if ref.Kind == catalog.KindEngine {
				if result.Engine.ClassSeries != "" {
					fields = append(fields, logger.String("class", result.Engine.ClassSeries))
				}
				fields = append(fields, logger.String("traction", string(result.Engine.Traction)))
			}
			if ref.Kind == catalog.KindWagon && result.Wagon.Coach != "" {
				fields = append(fields, logger.String("coach", result.Wagon.Coach))
			}
			logger.Info("Reference repaired", fields...)
		}

		changes = append(changes, change)
	}

	canonicalizeAll(lines)

	rewritten := joinLines(lines, ending)
	out = EncodeText(rewritten, enc)
	return out, changes, stats, !bytes.Equal(out, data)
}

// isSkippablePseudo reports whether the reference is an ancillary sound or
// effect entry that should pass through untouched. When the defaults folder
// holds a stand-in for pseudo references the engine handles it instead.
func (rw *Rewriter) isSkippablePseudo(ref Reference) bool {
	if !classify.IsPseudoReference(ref.Shape) {
		return false
	}
	for _, rec := range rw.idx.DefaultsPool(ref.Kind) {
		if classify.IsPseudoReference(rec.Name) {
			return false
		}
	}
	return true
}

// canonicalizeAll rewrites every parseable reference line in the canonical
// form. This pass is purely syntactic and never consults the catalog.
func canonicalizeAll(lines []string) {
	for i, line := range lines {
		ref, trailing, ok := parseLoose(line)
		if !ok || trailing != "" {
			continue
		}
		lines[i] = CanonicalLine(ref)
	}
}
