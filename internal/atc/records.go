package atc

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/icosian/rdcparc/internal/view"
)

// Medicine is one product record of the agency's medicine index.
type Medicine struct {
	ProductNumber     string  `json:"ema_product_number"`
	Name              string  `json:"name_of_medicine"`
	Category          string  `json:"category"` //Human or Veterinary
	Status            string  `json:"medicine_status"`
	HumanATCCode      string  `json:"atc_code_human"`
	VeterinaryATCCode string  `json:"atcvet_code_veterinary"`
	URL               string  `json:"medicine_url"`
	AuthorisationDate *string `json:"marketing_authorisation_date"`
}

// ATCCode returns the classification code of the product, preferring the
// human code over the veterinary one.
func (m *Medicine) ATCCode() string {
	if m.HumanATCCode != "" {
		return m.HumanATCCode
	}
	return m.VeterinaryATCCode
}

// Document is one record of the agency's published-assessment index.
type Document struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	URL            string  `json:"url"`
	PublishDate    *string `json:"publish_date"`
	LastUpdateDate *string `json:"last_update_date"`

	// MedicineName is derived from Name on load, ProductNumber is filled
	// by document matching.
	MedicineName  string `json:"-"`
	ProductNumber string `json:"-"`
}

var documentTypeWords = []string{
	"epar", "public", "assessment", "report", "scientific",
	"product", "information", "summary", "annex",
}

// ExtractMedicineName pulls the product name out of a document name such
// as "Keytruda : EPAR - Public assessment report". Empty when the name
// holds no recognizable product part.
func ExtractMedicineName(name string) string {
	if name == "" {
		return ""
	}
	if before, _, found := strings.Cut(name, " : EPAR"); found {
		return strings.TrimSpace(before)
	}
	if before, _, found := strings.Cut(name, " : "); found {
		return strings.TrimSpace(before)
	}
	if strings.Contains(name, " - ") && !strings.HasPrefix(name, "EPAR - ") {
		first := strings.TrimSpace(strings.SplitN(name, " - ", 2)[0])
		lowered := strings.ToLower(first)
		for _, word := range documentTypeWords {
			if strings.Contains(lowered, word) {
				return ""
			}
		}
		return first
	}
	return ""
}

// Date returns the document date as YYYY-MM-DD, preferring the publish
// date over the last update. "0000-00-00" when neither parses.
func (d *Document) Date() string {
	raw := ""
	if d.PublishDate != nil && *d.PublishDate != "" {
		raw = *d.PublishDate
	} else if d.LastUpdateDate != nil && *d.LastUpdateDate != "" {
		raw = *d.LastUpdateDate
	}
	if raw == "" {
		return "0000-00-00"
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return "0000-00-00"
	}
	return parsed.Format("2006-01-02")
}

var languageSuffixes = []string{"_en", "_de", "_fr", "_es", "_it"}

// Title derives the human-readable document title from the index name,
// keeping the part after the product and report-series prefixes and
// dropping trailing language markers.
func (d *Document) Title() string {
	name := d.Name
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		name = name[:dot]
	}

	var title string
	switch {
	case strings.Contains(name, " : EPAR - "):
		title = strings.SplitN(name, " : EPAR - ", 2)[1]
	case strings.Contains(name, " : ") && strings.Contains(name, " - "):
		afterColon := strings.SplitN(name, " : ", 2)[1]
		if i := strings.LastIndex(afterColon, " - "); i >= 0 {
			title = afterColon[i+len(" - "):]
		} else {
			title = afterColon
		}
	case strings.Contains(name, " - "):
		title = name[strings.LastIndex(name, " - ")+len(" - "):]
	default:
		title = name
	}

	title = strings.TrimSpace(title)
	for _, suffix := range languageSuffixes {
		if strings.HasSuffix(strings.ToLower(title), suffix) {
			title = title[:len(title)-len(suffix)]
		}
	}
	return strings.TrimSpace(title)
}

// Filename composes the dated link name of the document, taking the
// extension from its URL and defaulting to PDF.
func (d *Document) Filename() string {
	ext := ".pdf"
	if parsed, err := url.Parse(d.URL); err == nil {
		if urlExt := path.Ext(parsed.Path); urlExt != "" {
			ext = urlExt
		}
	}
	return view.FormatDatedFilename(d.Date(), d.Title(), ext)
}

// NormalizeName canonicalizes a product name for matching: lowercase,
// accents stripped, punctuation dropped, whitespace collapsed.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	decomposed := norm.NFD.String(name)

	var plain strings.Builder
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			//combining mark from the decomposition, drop
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			plain.WriteRune(r)
		default:
			plain.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(plain.String()), " ")
}

// indexPayload accommodates both bare-list and wrapped index files.
type indexPayload struct {
	records []json.RawMessage
}

func (p *indexPayload) UnmarshalJSON(blob []byte) error {
	if err := json.Unmarshal(blob, &p.records); err == nil {
		return nil
	}
	var wrapped struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(blob, &wrapped); err != nil {
		return err
	}
	p.records = wrapped.Data
	return nil
}

// LoadMedicines reads the medicine index and returns the products keyed by
// product number. Records without one are dropped.
func LoadMedicines(indexPath string) (map[string]*Medicine, error) {
	blob, err := os.ReadFile(indexPath)
	if err != nil {
		return nil, fmt.Errorf("medicine index unavailable: %w", err)
	}
	var payload indexPayload
	if err := json.Unmarshal(blob, &payload); err != nil {
		return nil, fmt.Errorf("malformed medicine index %s: %w", indexPath, err)
	}

	medicines := make(map[string]*Medicine, len(payload.records))
	for _, record := range payload.records {
		var medicine Medicine
		if err := json.Unmarshal(record, &medicine); err != nil {
			return nil, fmt.Errorf("malformed medicine record in %s: %w", indexPath, err)
		}
		if medicine.ProductNumber != "" {
			medicines[medicine.ProductNumber] = &medicine
		}
	}
	return medicines, nil
}

// LoadDocuments reads the published-assessment index, deriving each
// document's product name on the way.
func LoadDocuments(indexPath string) ([]*Document, error) {
	blob, err := os.ReadFile(indexPath)
	if err != nil {
		return nil, fmt.Errorf("document index unavailable: %w", err)
	}
	var payload indexPayload
	if err := json.Unmarshal(blob, &payload); err != nil {
		return nil, fmt.Errorf("malformed document index %s: %w", indexPath, err)
	}

	documents := make([]*Document, 0, len(payload.records))
	for _, record := range payload.records {
		var document Document
		if err := json.Unmarshal(record, &document); err != nil {
			return nil, fmt.Errorf("malformed document record in %s: %w", indexPath, err)
		}
		document.MedicineName = ExtractMedicineName(document.Name)
		documents = append(documents, &document)
	}
	return documents, nil
}
