package atc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func TestExtractMedicineName(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"epar_pattern", "Keytruda : EPAR - Public assessment report", "Keytruda"},
		{"colon_pattern", "Ozempic : Procedural steps taken", "Ozempic"},
		{"dash_pattern", "Ozempic - Annex I", "Ozempic"},
		{"dash_but_type_word", "Public assessment report - Part II", ""},
		{"epar_prefix", "EPAR - Summary for the public", ""},
		{"no_pattern", "Ozempic", ""},
		{"empty", "", ""},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ExtractMedicineName(testCase.input))
		})
	}
}

func TestDocumentTitle(t *testing.T) {
	cases := []struct {
		name     string
		docName  string
		expected string
	}{
		{"epar", "Clopidogrel BMS : EPAR - Public assessment report", "Public assessment report"},
		{"scientific", "Keytruda : EPAR - Scientific discussion", "Scientific discussion"},
		{"colon_and_dash", "Some Drug : Product information - Annex I", "Annex I"},
		{"plain_with_language", "simple-document-name_en.pdf", "simple-document-name"},
		{"dash_only", "Procedural steps - Overview", "Overview"},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			document := Document{Name: testCase.docName}
			assert.Equal(t, testCase.expected, document.Title())
		})
	}
}

func TestDocumentDate(t *testing.T) {
	cases := []struct {
		name     string
		document Document
		expected string
	}{
		{"publish_date", Document{PublishDate: stringPtr("2009-12-17T01:00:00Z")}, "2009-12-17"},
		{"fallback_last_update", Document{LastUpdateDate: stringPtr("2021-03-05T00:00:00Z")}, "2021-03-05"},
		{"publish_wins", Document{
			PublishDate:    stringPtr("2009-12-17T01:00:00Z"),
			LastUpdateDate: stringPtr("2021-03-05T00:00:00Z"),
		}, "2009-12-17"},
		{"no_dates", Document{}, "0000-00-00"},
		{"malformed", Document{PublishDate: stringPtr("yesterday")}, "0000-00-00"},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.document.Date())
		})
	}
}

func TestDocumentFilename(t *testing.T) {
	document := Document{
		Name:        "Keytruda : EPAR - Public assessment report",
		URL:         "https://www.ema.europa.eu/en/documents/assessment-report/keytruda-epar_en.pdf",
		PublishDate: stringPtr("2015-07-21T00:00:00Z"),
	}
	assert.Equal(t, "2015-07-21 Public assessment report.pdf", document.Filename())

	noExtension := Document{
		Name:        "Keytruda : EPAR - Overview",
		URL:         "https://www.ema.europa.eu/en/documents/overview/keytruda",
		PublishDate: stringPtr("2015-07-21T00:00:00Z"),
	}
	assert.Equal(t, "2015-07-21 Overview.pdf", noExtension.Filename())
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "Keytruda", "keytruda"},
		{"accents", "Épo-étine Alfa", "epo etine alfa"},
		{"punctuation", "Drug (100 mg/ml)", "drug 100 mg ml"},
		{"whitespace_collapse", "  Two   Words ", "two words"},
		{"empty", "", ""},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, NormalizeName(testCase.input))
		})
	}
}

func TestLoadMedicines(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "medicines.json")
	payload := `[
		{"ema_product_number": "EMEA/H/C/003820", "name_of_medicine": "Keytruda",
		 "category": "Human", "medicine_status": "Authorised", "atc_code_human": "L01FF02"},
		{"name_of_medicine": "No Product Number"}
	]`
	require.NoError(t, os.WriteFile(indexPath, []byte(payload), 0o644))

	medicines, err := LoadMedicines(indexPath)
	require.NoError(t, err)
	require.Len(t, medicines, 1)
	keytruda := medicines["EMEA/H/C/003820"]
	require.NotNil(t, keytruda)
	assert.Equal(t, "Keytruda", keytruda.Name)
	assert.Equal(t, "L01FF02", keytruda.ATCCode())
}

func TestLoadMedicinesWrappedPayload(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "medicines.json")
	payload := `{"data": [{"ema_product_number": "EMEA/V/C/000123", "name_of_medicine": "Vet Product",
		"category": "Veterinary", "atcvet_code_veterinary": "QA01AA01"}]}`
	require.NoError(t, os.WriteFile(indexPath, []byte(payload), 0o644))

	medicines, err := LoadMedicines(indexPath)
	require.NoError(t, err)
	require.Len(t, medicines, 1)
	assert.Equal(t, "QA01AA01", medicines["EMEA/V/C/000123"].ATCCode())
}

func TestLoadDocuments(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "documents.json")
	payload := `[{"id": "1", "name": "Keytruda : EPAR - Public assessment report",
		"type": "assessment-report", "url": "https://www.ema.europa.eu/x.pdf",
		"publish_date": "2015-07-21T00:00:00Z"}]`
	require.NoError(t, os.WriteFile(indexPath, []byte(payload), 0o644))

	documents, err := LoadDocuments(indexPath)
	require.NoError(t, err)
	require.Len(t, documents, 1)
	assert.Equal(t, "Keytruda", documents[0].MedicineName)
}

func TestLoadMedicinesMissingFile(t *testing.T) {
	_, err := LoadMedicines(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
