package core

import (
	"regexp"
	"strconv"
	"strings"
)

// rangePattern matches a bracket expression embedded in a host name,
// e.g. "[1-3]", "[1,4,7]" or "[1-3,7]".
var rangePattern = regexp.MustCompile(`\[(?:(?:\d+-\d+|\d+),?)+\]`)

// ExpandHostPattern expands every bracket range in a host name into
// the full list of concrete names: "db[1-3,7]" yields db1 db2 db3 db7,
// and "node[1-2]rack[5,9]" yields the four-way cartesian product. A
// name without brackets expands to itself. Reversed ranges normalize
// to ascending order.
func ExpandHostPattern(name string) []string {
	loc := rangePattern.FindStringIndex(name)
	if loc == nil {
		return []string{name}
	}
	prefix := name[:loc[0]]
	body := name[loc[0]+1 : loc[1]-1]
	suffix := name[loc[1]:]

	var out []string
	for _, part := range strings.Split(body, ",") {
		if part == "" {
			continue
		}
		for _, value := range expandRangePart(part) {
			out = append(out, ExpandHostPattern(prefix+value+suffix)...)
		}
	}
	return out
}

// expandRangePart turns "2" into ["2"] and "1-3" into ["1","2","3"].
// The bracket regex guarantees part is digits or digits-dash-digits.
func expandRangePart(part string) []string {
	bounds := strings.SplitN(part, "-", 2)
	if len(bounds) == 1 {
		return []string{part}
	}
	lo, _ := strconv.Atoi(bounds[0])
	hi, _ := strconv.Atoi(bounds[1])
	if hi < lo {
		lo, hi = hi, lo
	}
	out := make([]string, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, strconv.Itoa(v))
	}
	return out
}
