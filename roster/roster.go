// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import "github.com/danielhkuo/crowncast/models"

// Category ids
const (
	CategoryKing   = "KING"
	CategoryQueen  = "QUEEN"
	CategoryMister = "MISTER"
	CategoryMiss   = "MISS"
)

// Categories in display order. Tally tie-breaks follow this order.
var Categories = []models.Category{
	{ID: CategoryKing, Label: "KING"},
	{ID: CategoryQueen, Label: "QUEEN"},
	{ID: CategoryMister, Label: "MISTER"},
	{ID: CategoryMiss, Label: "MISS"},
}

// Candidates in display order within each category.
var Candidates = []models.Candidate{
	// KING
	{ID: "k1", Number: "01", Name: "မောင်သူရစံ", Class: "01", CategoryID: CategoryKing},
	{ID: "k2", Number: "02", Name: "မောင်ဖြိုးကိုကို", Class: "02", CategoryID: CategoryKing},
	{ID: "k3", Number: "03", Name: "မောင်ထူးလင်းထက်", Class: "03", CategoryID: CategoryKing},
	{ID: "k4", Number: "04", Name: "မောင်ကောင်းထက်ညီ", Class: "04", CategoryID: CategoryKing},
	{ID: "k5", Number: "05", Name: "မောင်အောင်ရဲရင့်ကျော်", Class: "05", CategoryID: CategoryKing},
	{ID: "k6", Number: "06", Name: "မောင်အောင်ဖုန်းပြည့်", Class: "06", CategoryID: CategoryKing},
	{ID: "k7", Number: "07", Name: "မောင်မင်းပြည့်ဖြိုး", Class: "07", CategoryID: CategoryKing},
	{ID: "k8", Number: "08", Name: "မောင်မင်းသုကျော်", Class: "08", CategoryID: CategoryKing},
	{ID: "k9", Number: "09", Name: "မောင်ရောင်စဉ်လင်းလက်", Class: "09", CategoryID: CategoryKing},
	{ID: "k10", Number: "10", Name: "မောင်ထက်ဖြိုးအောင်", Class: "10", CategoryID: CategoryKing},

	// QUEEN
	{ID: "q1", Number: "01", Name: "မမြစွာလွင်", Class: "01", CategoryID: CategoryQueen},
	{ID: "q2", Number: "02", Name: "မသဲဖြူစိုး", Class: "02", CategoryID: CategoryQueen},
	{ID: "q3", Number: "03", Name: "မဌေးအိလှိုင်", Class: "03", CategoryID: CategoryQueen},
	{ID: "q4", Number: "04", Name: "မအိမ့်မှုးဖြူဇင်", Class: "04", CategoryID: CategoryQueen},
	{ID: "q5", Number: "05", Name: "မနန်းမိုနွံဟွမ်", Class: "05", CategoryID: CategoryQueen},
	{ID: "q6", Number: "06", Name: "မအိအိလွင်", Class: "06", CategoryID: CategoryQueen},
	{ID: "q7", Number: "07", Name: "မဟန်နီကို", Class: "07", CategoryID: CategoryQueen},
	{ID: "q8", Number: "08", Name: "မနန်ဖွေးလောဝ်", Class: "08", CategoryID: CategoryQueen},
	{ID: "q9", Number: "09", Name: "မဇူးဇူအောင်", Class: "09", CategoryID: CategoryQueen},

	// MISTER
	{ID: "m1", Number: "01", Name: "မောင်စစ်မင်းနိုင်", Class: "01", CategoryID: CategoryMister},
	{ID: "m2", Number: "02", Name: "မောင်ညဏ်လင်း", Class: "02", CategoryID: CategoryMister},
	{ID: "m3", Number: "03", Name: "မောင်သာထက်စံ", Class: "03", CategoryID: CategoryMister},
	{ID: "m4", Number: "04", Name: "မောင်ဝေဖြိုး", Class: "04", CategoryID: CategoryMister},
	{ID: "m5", Number: "05", Name: "မောင်မျိုးသီဟကျော်", Class: "05", CategoryID: CategoryMister},
	{ID: "m6", Number: "06", Name: "မောင်ဟိန်းလင်း", Class: "06", CategoryID: CategoryMister},
	{ID: "m7", Number: "07", Name: "မောင်ခန့်မင်းကျော်", Class: "07", CategoryID: CategoryMister},
	{ID: "m8", Number: "08", Name: "မောင်အောင်ဘုန်းခန့်", Class: "08", CategoryID: CategoryMister},

	// MISS
	{ID: "ms1", Number: "01", Name: "မသွန်းရတီထွန်း", Class: "01", CategoryID: CategoryMiss},
	{ID: "ms2", Number: "02", Name: "မရှင်းရှင်းသန့်", Class: "02", CategoryID: CategoryMiss},
	{ID: "ms3", Number: "03", Name: "မစီစီလျာခေါန်ရိန်", Class: "03", CategoryID: CategoryMiss},
	{ID: "ms4", Number: "04", Name: "မယွန်းနဒီဇော်", Class: "04", CategoryID: CategoryMiss},
	{ID: "ms5", Number: "05", Name: "မအိအိအောင်", Class: "05", CategoryID: CategoryMiss},
	{ID: "ms6", Number: "06", Name: "မထက်ဆုရတီ", Class: "06", CategoryID: CategoryMiss},
	{ID: "ms7", Number: "07", Name: "မစံထိပ်ထားခင်", Class: "07", CategoryID: CategoryMiss},
}

var (
	candidateByID = make(map[string]models.Candidate, len(Candidates))
	categoryByID  = make(map[string]models.Category, len(Categories))
)

func init() {
	for _, c := range Candidates {
		candidateByID[c.ID] = c
	}
	for _, cat := range Categories {
		categoryByID[cat.ID] = cat
	}
}

// CandidateByID looks up a candidate by id.
func CandidateByID(id string) (models.Candidate, bool) {
	c, ok := candidateByID[id]
	return c, ok
}

// CategoryByID looks up a category by id.
func CategoryByID(id string) (models.Category, bool) {
	cat, ok := categoryByID[id]
	return cat, ok
}

// ValidCandidate reports whether candidateID exists and belongs to categoryID.
func ValidCandidate(candidateID, categoryID string) bool {
	c, ok := candidateByID[candidateID]
	return ok && c.CategoryID == categoryID
}

// CandidatesInCategory returns candidates of one category in display order.
func CandidatesInCategory(categoryID string) []models.Candidate {
	out := make([]models.Candidate, 0, 10)
	for _, c := range Candidates {
		if c.CategoryID == categoryID {
			out = append(out, c)
		}
	}
	return out
}
