// Package ctd classifies archived submission files into the Common
// Technical Document hierarchy and materializes the CTD view as a symlink
// tree. Classification works purely on filenames, backed by per-accession
// manual overrides for files that carry no section number.
package ctd

// sectionNames maps CTD section numbers to their descriptive folder names,
// following the FDA M4 guidance nomenclature.
var sectionNames = map[string]string{
	// Module 1, administrative information and prescribing information
	"1":       "Administrative",
	"1.1":     "Forms",
	"1.2":     "Cover-Letters",
	"1.3":     "Administrative-Information",
	"1.3.1":   "Contact-Information",
	"1.3.2":   "Field-Copy-Certification",
	"1.3.3":   "Debarment-Certification",
	"1.3.4":   "Financial-Certification",
	"1.3.5":   "Patent-Information",
	"1.4":     "References",
	"1.5":     "Application-Status",
	"1.6":     "Meetings",
	"1.7":     "Fast-Track",
	"1.8":     "Pediatric-Administrative",
	"1.9":     "Additional-Info",
	"1.10":    "Labeling",
	"1.10.1":  "Draft-Labeling",
	"1.10.2":  "Final-Labeling",
	"1.10.3":  "Carton-Container-Labels",
	"1.11":    "Pharmacovigilance",
	"1.12":    "Other-Correspondence",
	"1.12.1":  "Pre-IND-Correspondence",
	"1.12.2":  "IND-Correspondence",
	"1.12.3":  "NDA-BLA-Correspondence",
	"1.12.4":  "ANDA-Correspondence",
	"1.12.5":  "PMA-Correspondence",
	"1.12.10": "Type-A-Meeting",
	"1.12.11": "Type-B-Meeting",
	"1.12.12": "Type-C-Meeting",
	"1.12.13": "Pre-Submission-Meeting",
	"1.12.14": "Environmental-Assessment",
	"1.12.15": "Request-Inspection-Waiver",
	"1.13":    "Annual-Reports",
	"1.14":    "Labeling-Index",
	"1.15":    "Promotional-Materials",
	"1.16":    "Risk-Management",

	// Module 2, summaries
	"2":     "Summaries",
	"2.1":   "Table-of-Contents",
	"2.2":   "Introduction",
	"2.3":   "Quality-Overall-Summary",
	"2.4":   "Nonclinical-Overview",
	"2.5":   "Clinical-Overview",
	"2.6":   "Nonclinical-Summaries",
	"2.6.1": "Introduction",
	"2.6.2": "Pharmacology-Summary",
	"2.6.3": "Pharmacokinetics-Summary",
	"2.6.4": "Toxicology-Summary",
	"2.6.5": "Integrated-Summary",
	"2.6.6": "Pharmacology-Tables",
	"2.6.7": "Pharmacokinetics-Tables",
	"2.7":   "Clinical-Summary",
	"2.7.1": "Biopharmaceutics-Summary",
	"2.7.2": "Clinical-Pharmacology-Summary",
	"2.7.3": "Efficacy-Summary",
	"2.7.4": "Safety-Summary",
	"2.7.5": "References",
	"2.7.6": "Individual-Study-Synopses",

	// Module 3, quality
	"3":       "Quality",
	"3.2":     "Body-of-Data",
	"3.2.S":   "Drug-Substance",
	"3.2.S.1": "General-Information",
	"3.2.S.2": "Manufacture",
	"3.2.S.3": "Characterisation",
	"3.2.S.4": "Control-of-Drug-Substance",
	"3.2.S.5": "Reference-Standards",
	"3.2.S.6": "Container-Closure-System",
	"3.2.S.7": "Stability",
	"3.2.P":   "Drug-Product",
	"3.2.P.1": "Description-and-Composition",
	"3.2.P.2": "Pharmaceutical-Development",
	"3.2.P.3": "Manufacture",
	"3.2.P.4": "Control-of-Excipients",
	"3.2.P.5": "Control-of-Drug-Product",
	"3.2.P.6": "Reference-Standards",
	"3.2.P.7": "Container-Closure-System",
	"3.2.P.8": "Stability",
	"3.2.A":   "Appendices",
	"3.2.A.1": "Facilities-and-Equipment",
	"3.2.A.2": "Adventitious-Agents",
	"3.2.A.3": "Novel-Excipients",
	"3.2.R":   "Regional-Information",
	"3.3":     "Literature-References",

	// Module 4, nonclinical study reports
	"4":         "Nonclinical",
	"4.2":       "Study-Reports",
	"4.2.1":     "Pharmacology",
	"4.2.1.1":   "Primary-Pharmacodynamics",
	"4.2.1.2":   "Secondary-Pharmacodynamics",
	"4.2.1.3":   "Safety-Pharmacology",
	"4.2.1.4":   "Pharmacodynamic-Interactions",
	"4.2.2":     "Pharmacokinetics",
	"4.2.2.1":   "Analytical-Methods",
	"4.2.2.2":   "Absorption",
	"4.2.2.3":   "Distribution",
	"4.2.2.4":   "Metabolism",
	"4.2.2.5":   "Excretion",
	"4.2.2.6":   "PK-Drug-Interactions",
	"4.2.2.7":   "Other-PK-Studies",
	"4.2.3":     "Toxicology",
	"4.2.3.1":   "Single-Dose-Toxicity",
	"4.2.3.2":   "Repeat-Dose-Toxicity",
	"4.2.3.3":   "Genotoxicity",
	"4.2.3.4":   "Carcinogenicity",
	"4.2.3.5":   "Reproductive-Toxicity",
	"4.2.3.6":   "Local-Tolerance",
	"4.2.3.7":   "Other-Toxicity-Studies",
	"4.3":       "Literature-References",

	// Module 5, clinical study reports
	"5":           "Clinical",
	"5.2":         "Tabular-Listing",
	"5.3":         "Clinical-Study-Reports",
	"5.3.1":       "Biopharmaceutic-Studies",
	"5.3.1.1":     "Bioavailability",
	"5.3.1.2":     "Comparative-BA-BE",
	"5.3.1.3":     "In-Vitro-In-Vivo-Correlation",
	"5.3.1.4":     "Bioanalytical-Reports",
	"5.3.2":       "Human-Biomaterials",
	"5.3.2.1":     "Plasma-Protein-Binding",
	"5.3.2.2":     "Hepatic-Metabolism",
	"5.3.2.3":     "Other-PK-Biomaterials",
	"5.3.3":       "Human-PK-Studies",
	"5.3.3.1":     "Healthy-Subject-PK",
	"5.3.3.2":     "Patient-PK",
	"5.3.3.3":     "Intrinsic-Factor-PK",
	"5.3.3.4":     "Extrinsic-Factor-PK",
	"5.3.3.5":     "Population-PK",
	"5.3.4":       "Human-PD-Studies",
	"5.3.4.1":     "Healthy-Subject-PD",
	"5.3.4.2":     "Patient-PD",
	"5.3.5":       "Efficacy-Safety-Studies",
	"5.3.5.1":     "Controlled-Clinical-Studies",
	"5.3.5.1.1":   "Symptomatic-Study", //seen in RDCP-26-0003
	"5.3.5.2":     "Uncontrolled-Clinical-Studies",
	"5.3.5.3":     "Multiple-Dose-Studies",
	"5.3.5.4":     "Other-Efficacy-Studies",
	"5.3.6":       "Postmarketing-Experience",
	"5.3.7":       "Case-Report-Forms",
	"5.4":         "Literature-References",
}

// FolderName returns the display name of a CTD section folder,
// "<number>) <name>" for known sections and the bare number otherwise.
func FolderName(section string) string {
	if name, known := sectionNames[section]; known {
		return section + ") " + name
	}
	return section
}
