package atc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMedicines() map[string]*Medicine {
	return map[string]*Medicine{
		"EMEA/H/C/003820": {
			ProductNumber: "EMEA/H/C/003820",
			Name:          "Keytruda",
			Category:      "Human",
			Status:        "Authorised",
			HumanATCCode:  "L01FF02",
		},
		"EMEA/H/C/004174": {
			ProductNumber: "EMEA/H/C/004174",
			Name:          "Ozempic",
			Category:      "Human",
			Status:        "Authorised",
			HumanATCCode:  "A10BJ06",
		},
		"EMEA/H/C/000999": {
			ProductNumber: "EMEA/H/C/000999",
			Name:          "Withdrawn Product",
			Category:      "Human",
			Status:        "Withdrawn",
			HumanATCCode:  "N05AH04",
		},
	}
}

func TestMatchDocumentsExact(t *testing.T) {
	documents := []*Document{
		{Name: "Keytruda : EPAR - Public assessment report", Type: "assessment-report", MedicineName: "Keytruda"},
		{Name: "Ozempic : EPAR - Product information", Type: "product-information", MedicineName: "Ozempic"},
	}

	matched, unmatched := MatchDocuments(documents, testMedicines())
	assert.Zero(t, unmatched)
	assert.Len(t, matched["EMEA/H/C/003820"], 1)
	assert.Len(t, matched["EMEA/H/C/004174"], 1)
	assert.Equal(t, "EMEA/H/C/003820", documents[0].ProductNumber)
}

func TestMatchDocumentsPrefix(t *testing.T) {
	documents := []*Document{
		//dose-form suffix in the document, bare name in the index
		{Name: "x", Type: "assessment-report", MedicineName: "Keytruda film-coated tablets"},
	}

	matched, unmatched := MatchDocuments(documents, testMedicines())
	assert.Zero(t, unmatched)
	require.Len(t, matched["EMEA/H/C/003820"], 1)
}

func TestMatchDocumentsUnmatched(t *testing.T) {
	documents := []*Document{
		{Name: "x", MedicineName: "Completely Different"},
		{Name: "y", MedicineName: ""},
	}

	matched, unmatched := MatchDocuments(documents, testMedicines())
	assert.Empty(t, matched)
	assert.Equal(t, 2, unmatched)
}

func TestFilterQualifying(t *testing.T) {
	medicines := testMedicines()
	medicines["EMEA/V/C/000123"] = &Medicine{
		ProductNumber:     "EMEA/V/C/000123",
		Name:              "Vet Product",
		Category:          "Veterinary",
		Status:            "Authorised",
		VeterinaryATCCode: "QA01AA01",
	}

	matched := map[string][]*Document{
		"EMEA/H/C/003820": {{Type: "assessment-report"}},
		"EMEA/H/C/004174": {{Type: "product-information"}}, //no assessment report
		"EMEA/H/C/000999": {{Type: "assessment-report"}},   //withdrawn
		"EMEA/V/C/000123": {{Type: "assessment-report"}},   //veterinary
		"EMEA/H/C/555555": {{Type: "assessment-report"}},   //unknown product number
	}

	qualifying := FilterQualifying(medicines, matched)
	require.Len(t, qualifying, 1)
	assert.Equal(t, "Keytruda", qualifying["EMEA/H/C/003820"].Medicine.Name)
}
