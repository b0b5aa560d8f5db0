package scoring

import "strings"

// Party-derived issue priorities. A stand-in until position scraping
// from candidate sites and voting records exists, at which point this
// heuristic goes away.
var democraticPriorities = []string{
	"Climate Change",
	"Healthcare Access",
	"Economic Justice",
	"Reproductive Rights",
	"LGBTQ+ Rights",
	"Voting Rights",
}

var republicanPriorities = []string{
	"Crime & Safety",
	"Immigration Reform",
	"Economic Justice",
	"Gun Control",
	"Foreign Policy",
}

// IssueStance is one inferred issue position. Priority is 1-based in
// list order.
type IssueStance struct {
	Issue    string
	Position string
	Strength string
	Priority int
}

// IssuesForParty infers likely issue priorities from a party label.
// Matching is a case-insensitive substring check so FEC labels like
// "DEMOCRATIC PARTY" or "Democratic-Farmer-Labor" all resolve. Parties
// matching neither major label get no stances.
func IssuesForParty(party string) []IssueStance {
	upper := strings.ToUpper(party)

	var priorities []string
	switch {
	case strings.Contains(upper, "DEMOCRATIC"):
		priorities = democraticPriorities
	case strings.Contains(upper, "REPUBLICAN"):
		priorities = republicanPriorities
	default:
		return nil
	}

	stances := make([]IssueStance, len(priorities))
	for i, issue := range priorities {
		stances[i] = IssueStance{
			Issue:    issue,
			Position: "Support",
			Strength: "Strong",
			Priority: i + 1,
		}
	}
	return stances
}
