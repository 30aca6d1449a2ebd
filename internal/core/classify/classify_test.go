package classify

import (
	"reflect"
	"testing"
)

func TestRole_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  RoleFamily
	}{
		{"Senior Data Engineer", RoleDataEngineer},
		{"ETL Developer", RoleDataEngineer},
		{"Data Platform Lead", RoleDataEngineer},
		{"Data Scientist II", RoleDataScientist},
		{"Applied Scientist", RoleDataScientist},
		{"Machine Learning Engineer", RoleMLEngineer},
		{"Analytics Manager", RoleAnalytics},
		{"Business Intelligence Analyst", RoleAnalytics},
		{"Software Engineer", RoleSoftwareEngineer},
		{"Backend Developer", RoleSoftwareEngineer},
		{"Full Stack Developer", RoleSoftwareEngineer},
		{"Registered Nurse", RoleOther},
		{"", RoleOther},
	}
	for _, tc := range tests {
		if got := Role(tc.title); got != tc.want {
			t.Errorf("Role(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

// rule order matters: a title matching several families takes the first rule
func TestRole_OrderWins(t *testing.T) {
	t.Parallel()

	// "data engineer" outranks "software engineer"
	if got := Role("Software Engineer, Data Engineer Team"); got != RoleDataEngineer {
		t.Fatalf("expected data_engineer, got %q", got)
	}
	// "machine learning" + "engineer" outranks the software_engineer rule even
	// though "software engineer" appears verbatim
	if got := Role("Machine Learning Software Engineer"); got != RoleMLEngineer {
		t.Fatalf("expected ml_engineer, got %q", got)
	}
	// "machine learning scientist" has no "engineer", lands in data_scientist? no:
	// it has neither "data scientist" nor "applied scientist" substring, so the
	// ml_engineer rule fails too (needs "engineer") and it falls through
	if got := Role("Machine Learning Scientist"); got != RoleOther {
		t.Fatalf("expected other, got %q", got)
	}
}

func TestRemote_FlagWins(t *testing.T) {
	t.Parallel()

	if !Remote("Accountant", "Atlanta, GA", "on-site only", "1") {
		t.Fatal("flag 1 should force remote")
	}
	if !Remote("Accountant", "Atlanta, GA", "on-site only", "true") {
		t.Fatal("flag true should force remote")
	}
	if !Remote("Accountant", "Atlanta, GA", "on-site only", "1.0") {
		t.Fatal("flag 1.0 should force remote")
	}
	if Remote("Accountant", "Atlanta, GA", "on-site only", "0") {
		t.Fatal("flag 0 without hints should not be remote")
	}
}

func TestRemote_TextHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title, loc, desc string
		want             bool
	}{
		{"Data Engineer (Remote)", "", "", true},
		{"Data Engineer", "Remote, US", "", true},
		{"Data Engineer", "", "hybrid schedule available", true},
		{"Data Engineer", "", "work from home fridays", true},
		{"Data Engineer", "", "WFH allowed", true},
		{"Data Engineer", "Atlanta, GA", "onsite role", false},
		// whole-word: "remotely" should not count
		{"Data Engineer", "", "manage servers remotely", false},
	}
	for _, tc := range tests {
		if got := Remote(tc.title, tc.loc, tc.desc, ""); got != tc.want {
			t.Errorf("Remote(%q,%q,%q) = %v, want %v", tc.title, tc.loc, tc.desc, got, tc.want)
		}
	}
}

func TestSkills_AliasesFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want []string
	}{
		{"We use PySpark daily", []string{"spark"}},
		{"HDFS and MapReduce experience", []string{"hadoop"}},
		{"k8s cluster ops", []string{"kubernetes"}},
		{"Amazon Web Services certified", []string{"aws"}},
		{"Google Cloud shop", []string{"gcp"}},
		{"build ETL pipelines", []string{"etl"}},
		{"we extract data, transform it, and load it", []string{"etl"}},
		{"data modeling and data model reviews", []string{"data modeling"}},
		{"Power BI and PowerBI dashboards", []string{"power bi"}},
	}
	for _, tc := range tests {
		if got := Skills(tc.text); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Skills(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestSkills_SortedDeduped(t *testing.T) {
	t.Parallel()

	got := Skills("SQL, sql, Python, spark and pyspark on AWS")
	want := []string{"aws", "python", "spark", "sql"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Skills = %v, want %v", got, want)
	}
}

func TestSkills_JavaNotJavascript(t *testing.T) {
	t.Parallel()

	if got := Skills("JavaScript frontend"); len(got) != 0 {
		t.Fatalf("javascript must not match java, got %v", got)
	}
	got := Skills("Java backend services")
	if !reflect.DeepEqual(got, []string{"java"}) {
		t.Fatalf("java should match, got %v", got)
	}
}

func TestSkills_Empty(t *testing.T) {
	t.Parallel()

	if got := Skills(""); got != nil {
		t.Fatalf("empty text should yield no skills, got %v", got)
	}
	if got := Skills("forklift operator"); got != nil {
		t.Fatalf("no-skill text should yield nil, got %v", got)
	}
}

func TestKnownSkills_Count(t *testing.T) {
	t.Parallel()

	if got := len(KnownSkills()); got != 21 {
		t.Fatalf("expected 21 canonical skills, got %d", got)
	}
}
