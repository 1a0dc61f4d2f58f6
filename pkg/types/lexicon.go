package types

// TierKeywords is the keyword set that votes for one tier.
type TierKeywords struct {
	Tier     Tier     `json:"tier" yaml:"tier"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Lexicon maps each tier of a domain to its keywords. Tiers are ordered by
// severity, most severe first. Keywords are lowercase and matched by
// substring containment; diacritics are kept exactly as authored.
type Lexicon struct {
	Domain Domain         `json:"domain" yaml:"domain"`
	Tiers  []TierKeywords `json:"tiers" yaml:"tiers"`
}

// Keywords returns the keywords for tier t, or nil if the tier has none.
func (l Lexicon) Keywords(t Tier) []string {
	for _, tk := range l.Tiers {
		if tk.Tier == t {
			return tk.Keywords
		}
	}
	return nil
}

// Clone returns a deep copy of the lexicon.
func (l Lexicon) Clone() Lexicon {
	out := Lexicon{Domain: l.Domain, Tiers: make([]TierKeywords, len(l.Tiers))}
	for i, tk := range l.Tiers {
		out.Tiers[i] = TierKeywords{Tier: tk.Tier, Keywords: append([]string(nil), tk.Keywords...)}
	}
	return out
}
