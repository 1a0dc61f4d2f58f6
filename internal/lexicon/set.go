package lexicon

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scrypster/bemestar/pkg/types"
)

// DefaultVersion tags the built-in tables.
const DefaultVersion = "builtin-1"

var (
	// ErrOverlap is returned when a keyword belongs to two tiers of one domain.
	ErrOverlap = errors.New("keyword appears in more than one tier")

	// ErrInvalidKeyword is returned for empty, padded or non-lowercase keywords.
	ErrInvalidKeyword = errors.New("invalid keyword")

	// ErrMissingTier is returned when a domain lacks a required keyword tier.
	ErrMissingTier = errors.New("missing tier")
)

// Set is the versioned bundle of lexicons and response pools loaded once at
// startup and passed to every engine call.
type Set struct {
	Version   string
	Mood      types.Lexicon
	Crisis    types.Lexicon
	Social    types.Lexicon
	Responses Responses
}

// Default returns the built-in set.
func Default() *Set {
	return &Set{
		Version:   DefaultVersion,
		Mood:      Mood(),
		Crisis:    Crisis(),
		Social:    Social(),
		Responses: DefaultResponses(),
	}
}

// fileSet is the YAML shape of an override file. Any domain left out keeps
// its built-in keywords.
type fileSet struct {
	Version string         `yaml:"version"`
	Mood    *types.Lexicon `yaml:"mood"`
	Crisis  *types.Lexicon `yaml:"crisis"`
	Social  *types.Lexicon `yaml:"social"`
}

// LoadFile reads a YAML override file and applies it on top of the defaults.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon: %s: %w", path, err)
	}
	return set, nil
}

// Parse decodes YAML overrides and applies them on top of the defaults.
//
// Example:
//
//	version: "2025-02"
//	crisis:
//	  tiers:
//	    - tier: high
//	      keywords: ["suicídio", "não aguento mais"]
//	    - tier: medium
//	      keywords: ["triste"]
//	    - tier: low
//	      keywords: ["bem"]
func Parse(data []byte) (*Set, error) {
	var fs fileSet
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	set := Default()
	if fs.Version != "" {
		set.Version = fs.Version
	}
	overrides := []struct {
		src    *types.Lexicon
		dst    *types.Lexicon
		domain types.Domain
	}{
		{fs.Mood, &set.Mood, types.DomainMood},
		{fs.Crisis, &set.Crisis, types.DomainCrisis},
		{fs.Social, &set.Social, types.DomainSocial},
	}
	for _, o := range overrides {
		if o.src == nil {
			continue
		}
		lex := o.src.Clone()
		lex.Domain = o.domain
		*o.dst = normalize(lex)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Validate checks every lexicon in the set.
func (s *Set) Validate() error {
	for _, lex := range []types.Lexicon{s.Mood, s.Crisis, s.Social} {
		if err := Validate(lex); err != nil {
			return err
		}
	}
	return nil
}

// requiredTiers lists the tiers of a domain that must carry keywords.
func requiredTiers(d types.Domain) []types.Tier {
	switch d {
	case types.DomainMood:
		return []types.Tier{types.MoodNegative, types.MoodPositive}
	case types.DomainCrisis:
		return []types.Tier{types.RiskHigh, types.RiskMedium, types.RiskLow}
	case types.DomainSocial:
		return []types.Tier{types.CuePoliteness, types.CueConfidence, types.CueCompany}
	default:
		return nil
	}
}

// Validate checks that a lexicon's tiers belong to its domain, that every
// required tier has keywords, that keywords are lowercase and trimmed, and
// that no keyword is shared between tiers.
func Validate(lex types.Lexicon) error {
	seen := make(map[string]types.Tier)
	for _, tk := range lex.Tiers {
		if !types.IsValidTier(lex.Domain, tk.Tier) {
			return fmt.Errorf("lexicon %s: unknown tier %q", lex.Domain, tk.Tier)
		}
		for _, kw := range tk.Keywords {
			if kw == "" || strings.TrimSpace(kw) != kw || strings.ToLower(kw) != kw {
				return fmt.Errorf("lexicon %s: %w: %q", lex.Domain, ErrInvalidKeyword, kw)
			}
			if prev, ok := seen[kw]; ok && prev != tk.Tier {
				return fmt.Errorf("lexicon %s: %w: %q in %s and %s", lex.Domain, ErrOverlap, kw, prev, tk.Tier)
			}
			seen[kw] = tk.Tier
		}
	}
	for _, t := range requiredTiers(lex.Domain) {
		if len(lex.Keywords(t)) == 0 {
			return fmt.Errorf("lexicon %s: %w: %s", lex.Domain, ErrMissingTier, t)
		}
	}
	return nil
}

// normalize orders tiers by severity so tables read the same way regardless
// of how an override file lists them.
func normalize(lex types.Lexicon) types.Lexicon {
	order := map[types.Tier]int{}
	var tiers []types.Tier
	switch lex.Domain {
	case types.DomainMood:
		tiers = types.MoodTiers
	case types.DomainCrisis:
		tiers = types.RiskTiers
	default:
		tiers = requiredTiers(lex.Domain)
	}
	for i, t := range tiers {
		order[t] = i
	}
	sort.SliceStable(lex.Tiers, func(i, j int) bool {
		return order[lex.Tiers[i].Tier] < order[lex.Tiers[j].Tier]
	})
	return lex
}
