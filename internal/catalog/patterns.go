package catalog

// PatternOrder is the NeetCode roadmap order used to lay out the
// dashboard. Patterns not listed here sort after these, alphabetically.
var PatternOrder = []string{
	"Arrays & Hashing",
	"Two Pointers",
	"Sliding Window",
	"Stack",
	"Binary Search",
	"Linked Lists",
	"Trees",
	"Tries",
	"Heap / Priority Queue",
	"Backtracking",
	"Graphs",
	"1-D Dynamic Programming",
	"2-D Dynamic Programming",
	"Greedy",
	"Intervals",
	"Math & Geometry",
	"Bit Manipulation",
}

var categoryPatterns = map[string]string{
	"Array":               "Two Pointers",
	"Binary":              "Bit Manipulation",
	"Dynamic Programming": "Dynamic Programming",
	"Graph":               "Graphs",
	"Interval":            "Intervals",
	"Linked List":         "Linked Lists",
	"Matrix":              "Graphs",
	"String":              "Sliding Window",
	"Tree":                "Trees",
	"Heap":                "Heap / Priority Queue",
}

// InferPattern maps a coarse LeetCode category onto a pattern for lists
// that do not carry one.
func InferPattern(category string) string {
	if p, ok := categoryPatterns[category]; ok {
		return p
	}
	return "General"
}
