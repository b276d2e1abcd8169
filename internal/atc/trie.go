package atc

import (
	"sort"
	"strings"

	"github.com/icosian/rdcparc/internal/view"
)

// Node is an entry of the classification trie, either a Branch holding
// further nodes or a Leaf holding one product. Keys of the enclosing map
// are filesystem-safe folder names; Display carries the unescaped title
// for the sidecar metadata.
type Node interface {
	isNode()
}

// Leaf is a single product folder.
type Leaf struct {
	Medicine  *Medicine
	Documents []*Document
	Display   string
}

// Branch is an intermediate classification folder.
type Branch struct {
	Children map[string]Node
	Display  string
}

func (*Leaf) isNode()   {}
func (*Branch) isNode() {}

// BuildTrie arranges the products into the classification hierarchy.
// Sibling codes are grouped by collapsed prefixes of increasing length;
// single-product groups become leaves without intermediate folders, and
// products sharing one full code are gathered under a substance folder
// named after their common name. No folder is created at the top level,
// the anatomical groups are the roots.
func BuildTrie(products map[string]*Product) map[string]Node {
	byCode := make(map[string][]*Product)
	for _, product := range products {
		code := Normalize(product.Medicine.ATCCode())
		byCode[code] = append(byCode[code], product)
	}
	for _, group := range byCode {
		sort.Slice(group, func(i, j int) bool {
			return group[i].Medicine.ProductNumber < group[j].Medicine.ProductNumber
		})
	}
	return buildLevel(byCode, 0, "")
}

func buildLevel(byCode map[string][]*Product, prefixLen int, parentPrefix string) map[string]Node {
	if len(byCode) == 0 {
		return map[string]Node{}
	}

	groups := make(map[string]map[string][]*Product)
	for code, prods := range byCode {
		prefix := CollapsedPrefix(code, prefixLen)
		if groups[prefix] == nil {
			groups[prefix] = make(map[string][]*Product)
		}
		groups[prefix][code] = prods
	}

	result := make(map[string]Node)
	for _, prefix := range sortedKeys(groups) {
		subCodes := groups[prefix]

		// a group collapsing to the parent's own prefix gets no folder of
		// its own, its products are flattened into the parent level; when
		// no deeper length branches either this strands same-code products
		// as bare leaves beside their siblings' classification folders
		if prefix != "" && prefix == parentPrefix {
			nextLen := NextMeaningfulLength(firstKey(subCodes), prefixLen)
			if nextLen >= noFurtherLevel {
				for _, code := range sortedKeys(subCodes) {
					for _, product := range subCodes[code] {
						addLeaf(result, product)
					}
				}
			} else {
				merge(result, buildLevel(subCodes, nextLen, parentPrefix))
			}
			continue
		}

		total := 0
		for _, prods := range subCodes {
			total += len(prods)
		}

		switch {
		case total == 1:
			for _, prods := range subCodes {
				for _, product := range prods {
					addLeaf(result, product)
				}
			}

		case len(subCodes) == 1:
			code := firstKey(subCodes)
			prods := subCodes[code]
			nextLen := NextMeaningfulLength(code, prefixLen)

			if nextLen >= noFurtherLevel || len(code) <= prefixLen {
				if len(prods) > 1 {
					addSubstanceFolder(result, code, prods)
				} else {
					addLeaf(result, prods[0])
				}
			} else {
				children := buildLevel(subCodes, nextLen, prefix)
				if len(children) == 1 {
					merge(result, children)
				} else {
					addBranch(result, prefix, children)
				}
			}

		default:
			nextLen := NextMeaningfulLength(firstKey(subCodes), prefixLen)
			if nextLen >= noFurtherLevel {
				for _, code := range sortedKeys(subCodes) {
					prods := subCodes[code]
					if len(prods) > 1 {
						addSubstanceFolder(result, code, prods)
					} else {
						addLeaf(result, prods[0])
					}
				}
				continue
			}

			children := buildLevel(subCodes, nextLen, prefix)
			if prefixLen == 0 || len(children) == 1 {
				merge(result, children)
			} else {
				addBranch(result, prefix, children)
			}
		}
	}
	return result
}

func addLeaf(result map[string]Node, product *Product) {
	medicine := product.Medicine
	escaped := view.EscapeForPath(medicine.ProductNumber)
	code := Normalize(medicine.ATCCode())
	display := code + ") " + medicine.Name + " - " + escaped
	fsName := code + ") " + view.EscapeForPath(medicine.Name) + " - " + escaped
	result[fsName] = &Leaf{Medicine: medicine, Documents: product.Documents, Display: display}
}

// addSubstanceFolder groups products sharing one full code under a folder
// named after the substance. When the reference tables know no name more
// specific than the parent level's, the common leading words of the
// product names stand in for the substance.
func addSubstanceFolder(result map[string]Node, code string, prods []*Product) {
	normalized := Normalize(code)
	substance := Name(normalized)
	parentName := ""
	if len(normalized) >= 5 {
		parentName = Name(normalized[:5])
	}
	if substance == parentName {
		names := make([]string, len(prods))
		for i, product := range prods {
			names[i] = product.Medicine.Name
		}
		if common := ExtractCommonName(names); common != "" {
			substance = common
		}
	}

	children := make(map[string]Node, len(prods))
	for _, product := range prods {
		medicine := product.Medicine
		escaped := view.EscapeForPath(medicine.ProductNumber)
		//code lives in the folder name already, the leaf keeps just the product
		display := medicine.Name + " - " + escaped
		fsName := view.EscapeForPath(medicine.Name) + " - " + escaped
		children[fsName] = &Leaf{Medicine: medicine, Documents: product.Documents, Display: display}
	}

	display := normalized + ") " + substance
	fsName := normalized + ") " + view.EscapeForPath(substance)
	result[fsName] = &Branch{Children: children, Display: display}
}

func addBranch(result map[string]Node, prefix string, children map[string]Node) {
	name := Name(prefix)
	display := prefix + ") " + name
	fsName := prefix + ") " + view.EscapeForPath(name)
	result[fsName] = &Branch{Children: children, Display: display}
}

func merge(result map[string]Node, children map[string]Node) {
	for key, child := range children {
		result[key] = child
	}
}

// ExtractCommonName returns the longest run of leading words shared by all
// names (case-insensitive, keeping the first name's casing), e.g.
// "Bortezomib" for the various "Bortezomib <vendor>" products. Empty when
// the names share no leading word.
func ExtractCommonName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	split := make([][]string, len(names))
	shortest := -1
	for i, name := range names {
		split[i] = strings.Fields(name)
		if shortest < 0 || len(split[i]) < shortest {
			shortest = len(split[i])
		}
	}

	var common []string
	for i := 0; i < shortest; i++ {
		word := strings.ToLower(split[0][i])
		shared := true
		for _, words := range split[1:] {
			if strings.ToLower(words[i]) != word {
				shared = false
				break
			}
		}
		if !shared {
			break
		}
		common = append(common, split[0][i])
	}
	return strings.Join(common, " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func firstKey[V any](m map[string]V) string {
	keys := sortedKeys(m)
	return keys[0]
}
