package ingredient

import (
	"strings"
)

// Category is the store section an ingredient is shopped from.
type Category string

const (
	Pantry  Category = "Pantry"
	Frozen  Category = "Frozen"
	Meat    Category = "Meat"
	Dairy   Category = "Dairy"
	Produce Category = "Produce"
)

// Categories lists every category in display order.
var Categories = []Category{Produce, Meat, Dairy, Frozen, Pantry}

// keyword matches as a substring unless the name also contains one of its
// exceptions.
type keyword struct {
	term   string
	except []string
}

func kw(term string, except ...string) keyword {
	return keyword{term: term, except: except}
}

func (k keyword) matches(name string) bool {
	if !strings.Contains(name, k.term) {
		return false
	}
	for _, e := range k.except {
		if strings.Contains(name, e) {
			return false
		}
	}
	return true
}

// categoryRule assigns category when any keyword matches. match, when set,
// replaces keyword matching.
type categoryRule struct {
	name     string
	category Category
	keywords []keyword
	match    func(name string) (string, bool)
}

var groundSpices = []string{"pepper", "cumin", "cinnamon", "ginger", "clove", "nutmeg", "coriander"}

// categoryRules are evaluated in order; the first hit wins. The pantry
// modifiers run first so "ground cumin" and "canned tomatoes" never reach the
// meat or produce lists.
var categoryRules = []categoryRule{
	{
		name:     "pantry-modifier",
		category: Pantry,
		keywords: []keyword{
			kw("powder"), kw("dried"), kw("canned"), kw("oil"), kw("flour"),
			kw("sugar", "snap pea"), kw("rice"), kw("pasta"), kw("bean", "green bean", "bean sprout"),
			kw("baking"), kw("yeast"), kw("vinegar"), kw("sauce"), kw("stock"),
			kw("broth"), kw("syrup"), kw("extract"), kw("noodle"), kw("oats"),
			kw("honey", "honeydew"), kw("salt", "unsalted", "salted butter"),
			kw("cornstarch"), kw("cornmeal"), kw("breadcrumb"), kw("cracker"),
			kw("paste"),
		},
	},
	{
		name:     "ground-spice",
		category: Pantry,
		match: func(name string) (string, bool) {
			if !strings.Contains(name, "ground") {
				return "", false
			}
			for _, spice := range groundSpices {
				if strings.Contains(name, spice) {
					return "ground " + spice, true
				}
			}
			return "", false
		},
	},
	{
		name:     "frozen",
		category: Frozen,
		keywords: []keyword{kw("frozen"), kw("ice cream"), kw("sorbet")},
	},
	{
		name:     "meat",
		category: Meat,
		keywords: []keyword{
			kw("ground beef"), kw("ground chicken"), kw("ground pork"),
			kw("ground turkey"), kw("ground lamb"),
			kw("beef"), kw("chicken"), kw("pork"), kw("turkey"), kw("lamb"),
			kw("veal"), kw("bacon"), kw("sausage"), kw("steak"), kw("brisket"),
			kw("prosciutto"), kw("salami"), kw("pepperoni"), kw("chorizo"),
			kw("duck"), kw("venison"), kw("salmon"), kw("tuna"), kw("cod"),
			kw("tilapia"), kw("shrimp"), kw("prawn"), kw("scallop"), kw("crab"),
			kw("anchovy"), kw("fish"),
		},
	},
	{
		name:     "dairy",
		category: Dairy,
		keywords: []keyword{
			kw("milk", "coconut milk", "almond milk", "oat milk"),
			kw("butter", "peanut butter", "almond butter", "butternut"),
			kw("cheese"), kw("parmesan"), kw("mozzarella"), kw("cheddar"),
			kw("ricotta"), kw("feta"), kw("cream", "cream of tartar"),
			kw("yogurt"), kw("ghee"), kw("halfandhalf"), kw("egg", "eggplant"),
		},
	},
	{
		name:     "produce",
		category: Produce,
		keywords: []keyword{
			kw("apple"), kw("banana"), kw("lemon"), kw("lime"), kw("orange"),
			kw("berry"), kw("grape"), kw("peach"), kw("pear", "pearl"), kw("mango"),
			kw("pineapple"), kw("avocado"), kw("tomato"), kw("potato"),
			kw("onion"), kw("scallion"), kw("shallot"), kw("leek"), kw("garlic"),
			kw("carrot"), kw("celery"), kw("lettuce"), kw("spinach"), kw("kale"),
			kw("arugula"), kw("cabbage"), kw("broccoli"), kw("cauliflower"),
			kw("zucchini"), kw("squash"), kw("cucumber"), kw("bell pepper"),
			kw("jalapeño"), kw("jalapeno"), kw("mushroom"), kw("eggplant"),
			kw("asparagus"), kw("green bean"), kw("pea", "peanut", "peach", "pear", "chickpea"),
			kw("corn", "peppercorn", "popcorn"), kw("beet"), kw("radish"), kw("parsley"), kw("cilantro"),
			kw("basil"), kw("mint"), kw("dill"), kw("rosemary"), kw("thyme"),
			kw("chive"), kw("ginger"), kw("herb"), kw("fruit"),
		},
	},
	{
		name:     "spice",
		category: Pantry,
		keywords: []keyword{
			kw("pepper"), kw("cumin"), kw("paprika"), kw("oregano"),
			kw("cinnamon"), kw("nutmeg"), kw("clove"), kw("chili"),
			kw("turmeric"), kw("curry"), kw("mustard"), kw("vanilla"),
			kw("bay leaf"), kw("seasoning"), kw("spice"),
		},
	},
}

// Match explains which rule produced a category.
type Match struct {
	Category Category `json:"category"`
	Rule     string   `json:"rule"`
	Keyword  string   `json:"keyword,omitempty"`
}

// Classify returns the category for name along with the rule that chose it.
// Names that match no rule fall through to Pantry with Rule "default".
func Classify(name string) Match {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return Match{Category: Pantry, Rule: "default"}
	}
	for _, rule := range categoryRules {
		if rule.match != nil {
			if hit, ok := rule.match(lower); ok {
				return Match{Category: rule.category, Rule: rule.name, Keyword: hit}
			}
			continue
		}
		for _, k := range rule.keywords {
			if k.matches(lower) {
				return Match{Category: rule.category, Rule: rule.name, Keyword: k.term}
			}
		}
	}
	return Match{Category: Pantry, Rule: "default"}
}

// Categorize returns the shopping category for an ingredient name.
func Categorize(name string) Category {
	return Classify(name).Category
}
