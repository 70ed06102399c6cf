package models

import "testing"

func TestClassifyPartner(t *testing.T) {
	tests := []struct {
		partnershipType string
		want            PartnerGroup
	}{
		{"Principal Funder", PrincipalFunders},
		{"principal funder", PrincipalFunders},
		{"PRINCIPAL SPONSOR", PrincipalFunders},
		{"Lead Partner", LeadPartners},
		{"Lead Academic Partner", LeadPartners},
		{"Supporter", Supporters},
		{"Community Sponsor", Supporters},
		{"", Supporters},
		{"Something Unrecognized", Supporters},
	}

	for _, tt := range tests {
		t.Run(tt.partnershipType, func(t *testing.T) {
			if got := ClassifyPartner(tt.partnershipType); got != tt.want {
				t.Errorf("ClassifyPartner(%q) = %q, want %q", tt.partnershipType, got, tt.want)
			}
		})
	}
}

func TestGroupPartners(t *testing.T) {
	partners := []Partner{
		{ID: "1", Name: "Heritage Trust", PartnershipType: "Principal Funder"},
		{ID: "2", Name: "County Museum", PartnershipType: "Lead Partner"},
		{ID: "3", Name: "Local Bakery", PartnershipType: "Supporter"},
		{ID: "4", Name: "Mystery Org", PartnershipType: "Affiliated Body"},
		{ID: "5", Name: "National Fund", PartnershipType: "principal grant body"},
	}

	groups := GroupPartners(partners)

	if got := len(groups[PrincipalFunders]); got != 2 {
		t.Errorf("principal funders: got %d, want 2", got)
	}
	if got := len(groups[LeadPartners]); got != 1 {
		t.Errorf("lead partners: got %d, want 1", got)
	}
	if got := len(groups[Supporters]); got != 2 {
		t.Errorf("supporters: got %d, want 2", got)
	}

	// A partner appears in exactly one group.
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total != len(partners) {
		t.Errorf("grouped %d partners, want %d", total, len(partners))
	}

	// Incoming order is preserved within a group.
	if groups[PrincipalFunders][0].Name != "Heritage Trust" {
		t.Errorf("first principal funder: got %q", groups[PrincipalFunders][0].Name)
	}
}
