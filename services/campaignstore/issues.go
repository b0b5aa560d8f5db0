package campaignstore

import (
	"context"

	"donorlens-backend/services/campaignstore/db"

	"go.opentelemetry.io/otel/codes"
)

type issueSeed struct {
	name        string
	category    string
	description string
}

var issueCatalog = []issueSeed{
	{"Climate Change", "Environment", "Policies related to climate action and environmental protection"},
	{"Healthcare Access", "Healthcare", "Universal healthcare, insurance reform, and medical costs"},
	{"Immigration Reform", "Immigration", "Border policy, pathways to citizenship, and refugee policy"},
	{"Economic Justice", "Economy", "Wealth inequality, minimum wage, and economic opportunity"},
	{"Crime & Safety", "Justice", "Criminal justice reform, policing, and public safety"},
	{"Education", "Education", "Public education funding, student debt, and education access"},
	{"Reproductive Rights", "Healthcare", "Abortion access and reproductive healthcare"},
	{"Gun Control", "Justice", "Gun safety legislation and Second Amendment rights"},
	{"Voting Rights", "Democracy", "Voter access, election security, and gerrymandering"},
	{"Housing Affordability", "Economy", "Affordable housing, rent control, and homelessness"},
	{"Labor Rights", "Economy", "Union rights, worker protections, and fair wages"},
	{"LGBTQ+ Rights", "Civil Rights", "LGBTQ+ protections and equality"},
	{"Racial Justice", "Civil Rights", "Systemic racism, police reform, and equity"},
	{"Foreign Policy", "International", "Military intervention, diplomacy, and international relations"},
	{"Infrastructure", "Economy", "Roads, bridges, broadband, and public works"},
}

// SeedIssues loads the static issue catalog. Safe to call on every
// startup, existing rows are left alone.
func (s Service) SeedIssues(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "SeedIssues")
	defer span.End()

	for _, issue := range issueCatalog {
		err := s.qry.CreateIssue(ctx, db.CreateIssueParams{
			Name:        issue.name,
			Category:    issue.category,
			Description: issue.description,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
	}
	return nil
}
