package valuation

// defaultHitterCategories and the pitching role sets are the spec's
// documented defaults (spec.md 4.3). A league configuration may narrow
// these (e.g. drop SBN) but never introduce a category the data model
// doesn't carry; CategorySet is the single place a pool's category set is
// decided, per spec.md 9's "dynamic category dispatch" design note. The
// other category lists in this package are budget.go's counting/rate
// split and the default weight maps in config.go.
var (
	defaultHitterCategories = []Category{CatR, CatHR, CatRBI, CatSBN, CatOBP, CatSLG}
	defaultSPCategories     = []Category{CatERA, CatWHIP, CatK9, CatQS, CatOuts}
	defaultRPCategories     = []Category{CatERA, CatWHIP, CatK9, CatSVHD, CatOuts}
)

// CategorySet resolves the category set for a role, optionally narrowed
// by a league's explicit batting/pitching category list. A nil or empty
// leagueCategories falls back to the spec default for that role.
func CategorySet(role Role, leagueCategories []Category) []Category {
	var base []Category
	switch role {
	case RoleHitter:
		base = defaultHitterCategories
	case RoleSP:
		base = defaultSPCategories
	case RoleRP:
		base = defaultRPCategories
	}
	if len(leagueCategories) == 0 {
		return append([]Category(nil), base...)
	}
	allowed := make(map[Category]bool, len(leagueCategories))
	for _, c := range leagueCategories {
		allowed[c] = true
	}
	narrowed := make([]Category, 0, len(base))
	for _, c := range base {
		if allowed[c] {
			narrowed = append(narrowed, c)
		}
	}
	return narrowed
}
