package atc

import (
	"sort"
	"strings"
)

// Product bundles a medicine with the documents matched to it.
type Product struct {
	Medicine  *Medicine
	Documents []*Document
}

// assessmentReportType is the document type that qualifies a product for
// inclusion in the accession.
const assessmentReportType = "assessment-report"

// MatchDocuments assigns each document to a product by its derived
// medicine name. An exact match on the normalized name wins; otherwise the
// shorter of document name and product name may be a prefix of the other
// (dose-form suffixes and the like). Returns the documents grouped per
// product number plus the count of documents left unassigned.
func MatchDocuments(documents []*Document, medicines map[string]*Medicine) (map[string][]*Document, int) {
	nameToProduct := make(map[string]string, len(medicines))
	for productNumber, medicine := range medicines {
		if normalized := NormalizeName(medicine.Name); normalized != "" {
			nameToProduct[normalized] = productNumber
		}
	}
	names := make([]string, 0, len(nameToProduct))
	for name := range nameToProduct {
		names = append(names, name)
	}
	sort.Strings(names) //deterministic prefix matching

	matched := make(map[string][]*Document)
	unmatched := 0

	for _, document := range documents {
		if document.MedicineName == "" {
			unmatched++
			continue
		}
		normalized := NormalizeName(document.MedicineName)

		if productNumber, exact := nameToProduct[normalized]; exact {
			document.ProductNumber = productNumber
			matched[productNumber] = append(matched[productNumber], document)
			continue
		}

		found := false
		for _, name := range names {
			if strings.HasPrefix(normalized, name) || strings.HasPrefix(name, normalized) {
				productNumber := nameToProduct[name]
				document.ProductNumber = productNumber
				matched[productNumber] = append(matched[productNumber], document)
				found = true
				break
			}
		}
		if !found {
			unmatched++
		}
	}
	return matched, unmatched
}

// FilterQualifying keeps the products eligible for the accession:
// authorised human medicines with at least one assessment report among
// their documents.
func FilterQualifying(medicines map[string]*Medicine, matched map[string][]*Document) map[string]*Product {
	qualifying := make(map[string]*Product)
	for productNumber, documents := range matched {
		medicine, known := medicines[productNumber]
		if !known || medicine.Category != "Human" || medicine.Status != "Authorised" {
			continue
		}
		hasAssessment := false
		for _, document := range documents {
			if document.Type == assessmentReportType {
				hasAssessment = true
				break
			}
		}
		if !hasAssessment {
			continue
		}
		qualifying[productNumber] = &Product{Medicine: medicine, Documents: documents}
	}
	return qualifying
}
