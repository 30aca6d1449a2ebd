package classify

import (
	"regexp"
	"sort"
)

// skillRule names a canonical skill and the pattern that detects it,
// folding common aliases into the canonical name
type skillRule struct {
	name string
	pat  *regexp.Regexp
}

// skillRules is the fixed rule table, canonical name first
var skillRules = []skillRule{
	{"python", regexp.MustCompile(`(?i)\bpython\b`)},
	{"sql", regexp.MustCompile(`(?i)\bsql\b`)},
	{"spark", regexp.MustCompile(`(?i)\bspark\b|\bpyspark\b`)},
	{"hive", regexp.MustCompile(`(?i)\bhive\b`)},
	{"hadoop", regexp.MustCompile(`(?i)\bhadoop\b|\bhdfs\b|\bmapreduce\b`)},
	{"kafka", regexp.MustCompile(`(?i)\bkafka\b`)},
	{"airflow", regexp.MustCompile(`(?i)\bairflow\b`)},
	{"azkaban", regexp.MustCompile(`(?i)\bazkaban\b`)},
	{"aws", regexp.MustCompile(`(?i)\baws\b|\bamazon web services\b`)},
	{"gcp", regexp.MustCompile(`(?i)\bgcp\b|\bgoogle cloud\b`)},
	{"azure", regexp.MustCompile(`(?i)\bazure\b`)},
	{"docker", regexp.MustCompile(`(?i)\bdocker\b`)},
	{"kubernetes", regexp.MustCompile(`(?i)\bkubernetes\b|\bk8s\b`)},
	{"etl", regexp.MustCompile(`(?i)\betl\b|\bextract\b.*\btransform\b.*\bload\b`)},
	{"data modeling", regexp.MustCompile(`(?i)\bdata model(ing)?\b`)},
	{"dbt", regexp.MustCompile(`(?i)\bdbt\b`)},
	{"snowflake", regexp.MustCompile(`(?i)\bsnowflake\b`)},
	{"tableau", regexp.MustCompile(`(?i)\btableau\b`)},
	{"power bi", regexp.MustCompile(`(?i)\bpower\s*bi\b`)},
	{"scala", regexp.MustCompile(`(?i)\bscala\b`)},
	{"java", regexp.MustCompile(`(?i)\bjava\b`)},
}

// KnownSkills returns the canonical skill names in rule order
func KnownSkills() []string {
	out := make([]string, len(skillRules))
	for i, r := range skillRules {
		out[i] = r.name
	}
	return out
}

// Skills extracts canonical skill names mentioned in text.
// The result is sorted and deduplicated; empty input yields an empty slice
func Skills(text string) []string {
	if text == "" {
		return nil
	}
	seen := make(map[string]struct{}, 8)
	for _, r := range skillRules {
		if _, ok := seen[r.name]; ok {
			continue
		}
		if r.pat.MatchString(text) {
			seen[r.name] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
