// Package doctype classifies raw document text into a coarse legal
// document type used to select prompt grounding content.
package doctype

import "strings"

// Type is a document classification tag.
type Type string

const (
	Agreement       Type = "agreement"
	Affidavit       Type = "affidavit"
	PowerOfAttorney Type = "power_of_attorney"
	Lease           Type = "lease"
	Will            Type = "will"
	Notice          Type = "notice"
	Petition        Type = "petition"
	Appeal          Type = "appeal"
	General         Type = "general"
)

type rule struct {
	tag      Type
	keywords []string
}

// rules are evaluated in order; the first rule whose keyword appears in
// the text wins, so more specific tags must come before generic ones.
// Keywords cover English plus the Hindi and Gujarati surface forms seen
// in scanned bilingual documents.
var rules = []rule{
	{Agreement, []string{"agreement", "contract", "समझौता", "કરાર"}},
	{Affidavit, []string{"affidavit", "शपथ पत्र", "શપથપત્ર"}},
	{PowerOfAttorney, []string{"power of attorney", "मुख्तारनामा", "મુખત્યારનામું"}},
	{Lease, []string{"lease", "पट्टा", "લીઝ"}},
	{Will, []string{"will", "वसीयत", "વસિયતનામું"}},
	{Notice, []string{"notice", "नोटिस", "નોટિસ"}},
	{Petition, []string{"petition", "याचिका", "અરજી"}},
	{Appeal, []string{"appeal", "अपील", "અપીલ"}},
}

// Detect returns the document type for text. It is case-insensitive,
// deterministic and total: unmatched text classifies as General.
func Detect(text string) Type {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.tag
			}
		}
	}
	return General
}

// All lists every tag the classifier can produce, in rule order.
func All() []Type {
	tags := make([]Type, 0, len(rules)+1)
	for _, r := range rules {
		tags = append(tags, r.tag)
	}
	return append(tags, General)
}
