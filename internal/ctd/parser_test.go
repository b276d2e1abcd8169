package ctd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseInfo(t *testing.T) {
	cases := []struct {
		name       string
		filename   string
		accession  string
		components []string
		linkName   string
		ok         bool
	}{
		{
			name:       "module_prefix",
			filename:   "Module 2.5 Clinical Overview FINAL.pdf",
			components: []string{"2", "2.5"},
			linkName:   "2.5) Clinical Overview FINAL.pdf",
			ok:         true,
		},
		{
			name:       "module_prefix_case_insensitive",
			filename:   "module 1.11 Safety Update.pdf",
			components: []string{"1", "1.11"},
			linkName:   "1.11) Safety Update.pdf",
			ok:         true,
		},
		{
			name:       "module_infix",
			filename:   "Cover Module 1.13 Annual Report.pdf",
			components: []string{"1", "1.13"},
			linkName:   "1.13) Cover Annual Report.pdf",
			ok:         true,
		},
		{
			name:       "module_infix_trailing_empty",
			filename:   "Statistical Appendix Module 5.3.5.pdf",
			components: []string{"5", "5.3", "5.3.5"},
			linkName:   "5.3.5) Statistical Appendix.pdf",
			ok:         true,
		},
		{
			name:       "number_then_title",
			filename:   "2.6.6 Toxicology Written Summary FINAL.pdf",
			components: []string{"2", "2.6", "2.6.6"},
			linkName:   "2.6.6) Toxicology Written Summary FINAL.pdf",
			ok:         true,
		},
		{
			name:       "letter_part",
			filename:   "3.2.P.1 Description and Composition.pdf",
			components: []string{"3", "3.2", "3.2.P", "3.2.P.1"},
			linkName:   "3.2.P.1) Description and Composition.pdf",
			ok:         true,
		},
		{
			name:       "csr_appendix_remap",
			filename:   "16.2.1 Discontinued Patients.pdf",
			components: []string{"5", "5.3", "5.3.5", "16", "16.2", "16.2.1"},
			linkName:   "16.2.1) Discontinued Patients.pdf",
			ok:         true,
		},
		{
			name:       "dotted_form",
			filename:   "3.2.P.1.description.pdf",
			components: []string{"3", "3.2", "3.2.P", "3.2.P.1"},
			linkName:   "3.2.P.1) description.pdf",
			ok:         true,
		},
		{
			name:       "dashed_form",
			filename:   "1.20-General-Investigational-Plan.pdf",
			components: []string{"1", "1.20"},
			linkName:   "1.20) General-Investigational-Plan.pdf",
			ok:         true,
		},
		{
			name:      "no_pattern",
			filename:  "study-report-final.pdf",
			accession: "RDCP-26-0002",
			ok:        false,
		},
		{
			name:      "module_number_out_of_range",
			filename:  "7.1 Some Report.pdf",
			ok:        false,
		},
		{
			name:       "manual_root_file",
			filename:   "__Table Of Contents (generated).pdf",
			accession:  "RDCP-26-0003",
			components: nil,
			linkName:   "Table Of Contents.pdf",
			ok:         true,
		},
		{
			name:       "manual_study_series",
			filename:   "A-703-102 28-Day Oral Toxicity.pdf",
			accession:  "RDCP-26-0003",
			components: []string{"4", "4.2", "4.2.3", "4.2.3.2"},
			linkName:   "",
			ok:         true,
		},
		{
			name:       "manual_genotoxicity_series",
			filename:   "XT23041 Ames Test.pdf",
			accession:  "RDCP-26-0003",
			components: []string{"4", "4.2", "4.2.3", "4.2.3.3"},
			linkName:   "",
			ok:         true,
		},
		{
			name:      "manual_mapping_other_accession_ignored",
			filename:  "A-703-102 28-Day Oral Toxicity.pdf",
			accession: "RDCP-26-0002",
			ok:        false,
		},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			components, linkName, ok := ParseInfo(testCase.filename, testCase.accession)
			if ok != testCase.ok {
				t.Fatalf("ok = %v, expected %v", ok, testCase.ok)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(testCase.components, components); diff != "" {
				t.Errorf("components mismatch (-expected +actual):\n%s", diff)
			}
			if linkName != testCase.linkName {
				t.Errorf("linkName = %q, expected %q", linkName, testCase.linkName)
			}
		})
	}
}

func TestBuildComponents(t *testing.T) {
	cases := []struct {
		section  string
		expected []string
	}{
		{"3", []string{"3"}},
		{"3.2.P.1", []string{"3", "3.2", "3.2.P", "3.2.P.1"}},
		{"1.12.14", []string{"1", "1.12", "1.12.14"}},
		{"", nil},
	}
	for _, testCase := range cases {
		if diff := cmp.Diff(testCase.expected, BuildComponents(testCase.section)); diff != "" {
			t.Errorf("%q mismatch (-expected +actual):\n%s", testCase.section, diff)
		}
	}
}

func TestFolderName(t *testing.T) {
	if name := FolderName("3.2.P"); name != "3.2.P) Drug-Product" {
		t.Errorf("got %q", name)
	}
	if name := FolderName("3.9.9"); name != "3.9.9" {
		t.Errorf("unknown section renamed to %q", name)
	}
}
