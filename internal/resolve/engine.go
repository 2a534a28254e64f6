package resolve

import (
	"strings"

	"github.com/openraildev/consistfix/internal/catalog"
	"github.com/openraildev/consistfix/internal/classify"
	"github.com/openraildev/consistfix/internal/normalize"
	"github.com/openraildev/consistfix/pkg/logger"
)

// Tier identifies how a match was found. Tiers are tried in strict order and
// the first success wins.
type Tier string

const (
	TierFastPath   Tier = "FastPath"
	TierLocal      Tier = "Local"
	TierGlobal     Tier = "Global"
	TierDefaults   Tier = "Defaults"
	TierUnresolved Tier = "Unresolved"
)

// Request describes one reference statement to resolve.
type Request struct {
	Kind       catalog.Kind
	Shape      string
	Folder     string
	SourceFile string
	LineText   string
}

// Result is the outcome of resolving one request. Record is nil only for
// TierUnresolved. Score is meaningful for Local and Global tiers.
type Result struct {
	Record *catalog.AssetRecord
	Tier   Tier
	Score  int
	Role   classify.Role
	Engine classify.EngineAttributes
	Wagon  classify.WagonAttributes
}

// Resolved reports whether a candidate was chosen.
func (r Result) Resolved() bool {
	return r.Record != nil
}

// Engine orchestrates the tiered search. It holds only read references; all
// resolution operations are pure reads against the index.
type Engine struct {
	idx    *catalog.AssetIndex
	opts   Options
	scorer *Scorer
	// lenient drops the strict-mode guardrails; it backs the
	// filter-then-fallback behavior when strict filtering empties a pool.
	lenient *Scorer
}

// New creates a resolution engine over the given index.
func New(idx *catalog.AssetIndex, opts Options) *Engine {
	lenientOpts := opts
	lenientOpts.StrictClass = false
	lenientOpts.StrictType = false
	return &Engine{
		idx:     idx,
		opts:    opts,
		scorer:  NewScorer(idx, opts),
		lenient: NewScorer(idx, lenientOpts),
	}
}

// Resolve applies the tiers in order: fast-path, local, global, defaults.
func (e *Engine) Resolve(req Request) Result {
	result := Result{
		Tier: TierUnresolved,
		Role: e.roleOf(req.Kind, req.Shape, req.Folder),
	}
	if req.Kind == catalog.KindEngine {
		result.Engine = classify.ParseEngineTokens(req.Shape, req.Folder)
	} else {
		result.Wagon = classify.ParseWagonTokens(req.Shape, req.Folder)
	}

	if rec := e.fastPath(req); rec != nil {
		result.Record = rec
		result.Tier = TierFastPath
		return result
	}

	if rec, score := e.scoredTier(req, e.idx.FolderPool(req.Kind, req.Folder), e.opts.LocalThreshold, "local"); rec != nil {
		result.Record = rec
		result.Tier = TierLocal
		result.Score = score
		return result
	}

	if rec, score := e.scoredTier(req, e.idx.GlobalPool(req.Kind), e.opts.GlobalThreshold, "global"); rec != nil {
		result.Record = rec
		result.Tier = TierGlobal
		result.Score = score
		return result
	}

	if rec := e.defaultsTier(req); rec != nil {
		result.Record = rec
		result.Tier = TierDefaults
		return result
	}

	return result
}

// fastPath looks for an exact normalized key hit, then for a candidate sharing
// at least two non-stop-listed tokens, same folder first then catalog-wide.
func (e *Engine) fastPath(req Request) *catalog.AssetRecord {
	if rec := e.idx.Lookup(req.Folder, req.Shape); rec != nil && rec.Kind == req.Kind {
		return rec
	}
	wantedNorm := normalize.Normalize(req.Shape)
	if wantedNorm != "" {
		var global *catalog.AssetRecord
		for _, rec := range e.idx.ByNormalizedName(wantedNorm) {
			if rec.Kind != req.Kind {
				continue
			}
			if strings.EqualFold(rec.Folder, req.Folder) {
				return rec
			}
			if global == nil && !strings.EqualFold(rec.Folder, e.idx.DefaultsFolder()) {
				global = rec
			}
		}
		if global != nil {
			return global
		}
	}

	if rec := e.twoTokenMatch(req, e.idx.FolderPool(req.Kind, req.Folder)); rec != nil {
		return rec
	}
	return e.twoTokenMatch(req, e.idx.GlobalPool(req.Kind))
}

// twoTokenMatch finds candidates sharing >=2 meaningful tokens with the wanted
// identifier; ties are broken by the highest scorer value, first-seen wins.
func (e *Engine) twoTokenMatch(req Request, pool []*catalog.AssetRecord) *catalog.AssetRecord {
	wanted := e.meaningfulTokens(req.Shape)
	if len(wanted) < 2 {
		return nil
	}

	var best *catalog.AssetRecord
	bestScore := 0
	for _, cand := range pool {
		shared := 0
		for tok := range e.meaningfulTokens(cand.Name) {
			if wanted.Has(tok) {
				shared++
			}
		}
		if shared < 2 {
			continue
		}
		score := e.scorer.Score(req.Shape, req.Folder, cand)
		if score == RejectScore {
			continue
		}
		if best == nil || score > bestScore {
			best = cand
			bestScore = score
		}
	}
	return best
}

func (e *Engine) meaningfulTokens(text string) normalize.TokenSet {
	tokens := e.scorer.expander.Tokenize(text)
	out := make(normalize.TokenSet, len(tokens))
	for tok := range tokens {
		if !normalize.IsStopToken(tok) {
			out.Add(tok)
		}
	}
	return out
}

// scoredTier filters a pool by role (Unknown is a wildcard), applies strict
// filters with fallback to the unfiltered pool when they empty it, and accepts
// the best scorer at or above the threshold.
func (e *Engine) scoredTier(req Request, pool []*catalog.AssetRecord, threshold int, tierName string) (*catalog.AssetRecord, int) {
	if len(pool) == 0 {
		return nil, 0
	}

	wantedRole := e.roleOf(req.Kind, req.Shape, req.Folder)
	filtered := make([]*catalog.AssetRecord, 0, len(pool))
	for _, cand := range pool {
		candRole := e.roleOf(cand.Kind, cand.Name, cand.Folder)
		if wantedRole == classify.RoleUnknown || candRole == classify.RoleUnknown || wantedRole == candRole {
			filtered = append(filtered, cand)
		}
	}
	if len(filtered) == 0 {
		// Role filtering is a comparability heuristic, not ground truth
		logger.Debug("Role filter emptied candidate pool, proceeding unfiltered",
			logger.String("tier", tierName),
			logger.String("shape", req.Shape))
		filtered = pool
	}

	best, bestScore := e.bestOf(req, filtered, e.scorer, tierName)
	if best == nil && (e.opts.StrictClass || e.opts.StrictType) {
		// Strict filtering is a soft constraint: when it rejects every
		// candidate, fall back to the unfiltered pool
		logger.Debug("Strict filters emptied candidate pool, proceeding unfiltered",
			logger.String("tier", tierName),
			logger.String("shape", req.Shape))
		best, bestScore = e.bestOf(req, filtered, e.lenient, tierName)
	}

	if best == nil || bestScore < threshold {
		return nil, 0
	}
	return best, bestScore
}

// bestOf scores every candidate with the given scorer and returns the highest
// non-rejected one; ties keep the first-seen candidate.
func (e *Engine) bestOf(req Request, pool []*catalog.AssetRecord, scorer *Scorer, tierName string) (*catalog.AssetRecord, int) {
	var best *catalog.AssetRecord
	bestScore := RejectScore
	for _, cand := range pool {
		score := scorer.Score(req.Shape, req.Folder, cand)
		if e.opts.Explain {
			logger.Debug("Candidate scored",
				logger.String("tier", tierName),
				logger.String("wanted", req.Shape),
				logger.String("candidate", cand.Folder+"/"+cand.Name),
				logger.Int("score", score))
		}
		if score == RejectScore {
			continue
		}
		if best == nil || score > bestScore {
			best = cand
			bestScore = score
		}
	}
	return best, bestScore
}

// defaultsTier searches only the defaults folder. Engines prefer same-class
// candidates, wagons prefer same coach-type within the matching role; both
// fall back to role-only filtering. No minimum-score gate applies.
func (e *Engine) defaultsTier(req Request) *catalog.AssetRecord {
	pool := e.idx.DefaultsPool(req.Kind)
	if len(pool) == 0 {
		return nil
	}

	wantedRole := e.roleOf(req.Kind, req.Shape, req.Folder)
	rolePool := make([]*catalog.AssetRecord, 0, len(pool))
	for _, cand := range pool {
		candRole := e.roleOf(cand.Kind, cand.Name, cand.Folder)
		if wantedRole == classify.RoleUnknown || candRole == classify.RoleUnknown || wantedRole == candRole {
			rolePool = append(rolePool, cand)
		}
	}
	if len(rolePool) == 0 {
		rolePool = pool
	}

	preferred := e.preferredDefaults(req, rolePool)
	if len(preferred) == 0 {
		preferred = rolePool
	}

	// Defaults are generic stand-ins; strict attribute comparison would
	// reject nearly all of them, so the lenient scorer ranks this tier.
	var best *catalog.AssetRecord
	bestScore := RejectScore
	for _, cand := range preferred {
		score := e.lenient.Score(req.Shape, req.Folder, cand)
		if score == RejectScore {
			continue
		}
		if best == nil || score > bestScore {
			best = cand
			bestScore = score
		}
	}
	return best
}

func (e *Engine) preferredDefaults(req Request, pool []*catalog.AssetRecord) []*catalog.AssetRecord {
	var preferred []*catalog.AssetRecord
	if req.Kind == catalog.KindEngine {
		wanted := classify.EngineClass(req.Shape, req.Folder)
		if wanted == "" {
			return nil
		}
		for _, cand := range pool {
			if classify.EngineClass(cand.Name, cand.Folder) == wanted {
				preferred = append(preferred, cand)
			}
		}
		return preferred
	}
	wanted := classify.CoachType(req.Shape, req.Folder)
	if wanted == "" {
		return nil
	}
	for _, cand := range pool {
		if classify.CoachType(cand.Name, cand.Folder) == wanted {
			preferred = append(preferred, cand)
		}
	}
	return preferred
}

func (e *Engine) roleOf(kind catalog.Kind, name, folder string) classify.Role {
	if kind == catalog.KindEngine {
		return classify.EngineRole(name, folder)
	}
	return classify.WagonRole(name, folder)
}
