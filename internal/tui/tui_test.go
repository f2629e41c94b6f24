package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/raznan-ahamed/nessreport/internal/aggregator"
	"github.com/raznan-ahamed/nessreport/internal/models"
)

func testFindings() []models.Finding {
	return []models.Finding{
		{Host: "db01", Title: "SQL Injection", Severity: models.SeverityCritical, Description: "injectable parameter", Remediation: "Sanitize inputs", Row: 2},
		{Host: "web01", Title: "Weak TLS Cipher", Severity: models.SeverityLow, Description: "RC4 enabled", Remediation: "Disable RC4", Row: 3},
		{Host: "db01", Title: "Outdated OpenSSL", Severity: models.SeverityMedium, Description: "version 1.0.1", Remediation: "Upgrade package", Row: 4},
		{Host: "web02", Title: "Directory Listing", Severity: models.SeverityLow, Description: "index exposed", Remediation: "Disable autoindex", Row: 5},
	}
}

func testAggregate() *models.Aggregate {
	return aggregator.Aggregate(testFindings())
}

func testModel() Model {
	return New("scan.csv", testAggregate())
}

// --- Filter tests ---

func TestApplyFiltersNoFilter(t *testing.T) {
	findings := testFindings()
	result := applyFilters(findings, filterState{})
	if len(result) != len(findings) {
		t.Errorf("expected %d findings, got %d", len(findings), len(result))
	}
}

func TestApplyFiltersHostFilter(t *testing.T) {
	findings := testFindings()
	result := applyFilters(findings, filterState{Host: "db01"})
	if len(result) != 2 {
		t.Errorf("expected 2 db01 findings, got %d", len(result))
	}
	for _, r := range result {
		if r.HostKey() != "db01" {
			t.Errorf("expected db01, got %s", r.Host)
		}
	}
}

func TestApplyFiltersSeverityFilter(t *testing.T) {
	findings := testFindings()
	result := applyFilters(findings, filterState{Severity: models.SeverityLow})
	if len(result) != 2 {
		t.Errorf("expected 2 low findings, got %d", len(result))
	}
}

func TestApplyFiltersSearchText(t *testing.T) {
	findings := testFindings()
	result := applyFilters(findings, filterState{SearchText: "openssl"})
	if len(result) != 1 {
		t.Errorf("expected 1 finding matching 'openssl', got %d", len(result))
	}
	if result[0].Title != "Outdated OpenSSL" {
		t.Errorf("expected Outdated OpenSSL, got %s", result[0].Title)
	}
}

func TestApplyFiltersCombined(t *testing.T) {
	findings := testFindings()
	result := applyFilters(findings, filterState{Host: "db01", SearchText: "sql"})
	if len(result) != 1 {
		t.Errorf("expected 1 finding, got %d", len(result))
	}
}

func TestApplyFiltersNoMatch(t *testing.T) {
	findings := testFindings()
	result := applyFilters(findings, filterState{SearchText: "nonexistent"})
	if len(result) != 0 {
		t.Errorf("expected 0 findings, got %d", len(result))
	}
}

func TestApplyFiltersCaseInsensitive(t *testing.T) {
	findings := testFindings()
	result := applyFilters(findings, filterState{SearchText: "OPENSSL"})
	if len(result) != 1 {
		t.Errorf("expected 1 finding matching 'OPENSSL' case-insensitive, got %d", len(result))
	}
}

// --- Sort tests ---

func TestSortFindingsBySeverity(t *testing.T) {
	findings := testFindings()
	sortFindings(findings, sortBySeverity)
	if findings[0].Severity != models.SeverityCritical {
		t.Errorf("expected critical first, got %s", findings[0].Severity)
	}
	if findings[len(findings)-1].Severity != models.SeverityLow {
		t.Errorf("expected low last, got %s", findings[len(findings)-1].Severity)
	}
}

func TestSortFindingsByHost(t *testing.T) {
	findings := testFindings()
	sortFindings(findings, sortByHost)
	if findings[0].HostKey() != "db01" {
		t.Errorf("expected db01 first (alphabetical), got %s", findings[0].Host)
	}
}

func TestSortFindingsByTitle(t *testing.T) {
	findings := testFindings()
	sortFindings(findings, sortByTitle)
	if findings[0].Title != "Directory Listing" {
		t.Errorf("expected Directory Listing first, got %s", findings[0].Title)
	}
}

// --- UniqueHosts tests ---

func TestUniqueHosts(t *testing.T) {
	hosts := uniqueHosts(testFindings())
	if len(hosts) != 3 {
		t.Errorf("expected 3 unique hosts, got %d", len(hosts))
	}
	expected := []string{"db01", "web01", "web02"}
	for i, h := range hosts {
		if h != expected[i] {
			t.Errorf("expected %s at index %d, got %s", expected[i], i, h)
		}
	}
}

func TestUniqueHostsEmpty(t *testing.T) {
	hosts := uniqueHosts(nil)
	if len(hosts) != 0 {
		t.Errorf("expected 0 hosts, got %d", len(hosts))
	}
}

// --- Severity cycle tests ---

func TestNextSeverityFilterCycle(t *testing.T) {
	got := nextSeverityFilter("")
	if got != models.SeverityCritical {
		t.Errorf("expected critical after off, got %s", got)
	}
	got = nextSeverityFilter(models.SeverityCritical)
	if got != models.SeverityHigh {
		t.Errorf("expected high after critical, got %s", got)
	}
	got = nextSeverityFilter(models.SeverityInfo)
	if got != "" {
		t.Errorf("expected off after info, got %s", got)
	}
}

// --- Row building tests ---

func TestBuildRows(t *testing.T) {
	findings := testFindings()
	rows := buildRows(findings)
	if len(rows) != len(findings) {
		t.Errorf("expected %d rows, got %d", len(findings), len(rows))
	}
	if rows[0][0] != "CRITICAL" {
		t.Errorf("expected CRITICAL, got %s", rows[0][0])
	}
	if rows[0][1] != "db01" {
		t.Errorf("expected db01, got %s", rows[0][1])
	}
}

func TestBuildRowsEmpty(t *testing.T) {
	rows := buildRows(nil)
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"this is a very long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.input, tt.maxLen)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

// --- Header rendering tests ---

func TestRenderHeaderContainsInput(t *testing.T) {
	output := renderHeader("scan.csv", testAggregate(), 80)
	if !strings.Contains(output, "scan.csv") {
		t.Error("expected header to contain input file name")
	}
}

func TestRenderHeaderContainsCounts(t *testing.T) {
	output := renderHeader("scan.csv", testAggregate(), 80)
	if !strings.Contains(output, "Hosts: 3") {
		t.Error("expected header to contain Hosts: 3")
	}
	if !strings.Contains(output, "Findings: 4") {
		t.Error("expected header to contain Findings: 4")
	}
}

func TestRenderHeaderSeverityBreakdown(t *testing.T) {
	output := renderHeader("scan.csv", testAggregate(), 80)
	if !strings.Contains(output, "C:1") {
		t.Error("expected C:1 for critical count")
	}
	if !strings.Contains(output, "L:2") {
		t.Error("expected L:2 for low count")
	}
}

func TestRenderHeaderEmptyAggregate(t *testing.T) {
	output := renderHeader("empty.csv", aggregator.Aggregate(nil), 80)
	if !strings.Contains(output, "No findings") {
		t.Error("expected 'No findings' for empty aggregate")
	}
}

// --- Detail rendering tests ---

func TestRenderDetailNil(t *testing.T) {
	output := renderDetail(nil, 80)
	if !strings.Contains(output, "No finding selected") {
		t.Error("expected 'No finding selected' for nil finding")
	}
}

func TestRenderDetailShowsFields(t *testing.T) {
	f := &models.Finding{
		Host: "db01", Title: "SQL Injection", Severity: models.SeverityCritical,
		Description: "injectable parameter", Remediation: "Sanitize inputs",
	}
	output := renderDetail(f, 80)
	if !strings.Contains(output, "SQL Injection") {
		t.Error("expected title in detail")
	}
	if !strings.Contains(output, "db01") {
		t.Error("expected host in detail")
	}
	if !strings.Contains(output, "injectable parameter") {
		t.Error("expected description in detail")
	}
	if !strings.Contains(output, "Sanitize inputs") {
		t.Error("expected remediation in detail")
	}
}

func TestRenderDetailNoRemediation(t *testing.T) {
	f := &models.Finding{
		Host: "web01", Title: "Weak TLS Cipher", Severity: models.SeverityLow,
	}
	output := renderDetail(f, 80)
	if !strings.Contains(output, "Weak TLS Cipher") {
		t.Error("expected title in detail")
	}
	if strings.Contains(output, "Remediation:") {
		t.Error("expected no remediation line when remediation is empty")
	}
}

func TestFirstLineClipsAtNewline(t *testing.T) {
	got := firstLine("line one\nline two", 40)
	if got != "line one" {
		t.Errorf("expected 'line one', got %q", got)
	}
}

// --- Sort field name tests ---

func TestSortFieldName(t *testing.T) {
	tests := []struct {
		field sortField
		want  string
	}{
		{sortBySeverity, "severity"},
		{sortByHost, "host"},
		{sortByTitle, "title"},
		{sortField(99), "unknown"},
	}
	for _, tt := range tests {
		got := sortFieldName(tt.field)
		if got != tt.want {
			t.Errorf("sortFieldName(%d) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

// --- Model state tests ---

func TestModelInit(t *testing.T) {
	m := testModel()
	cmd := m.Init()
	if cmd != nil {
		t.Error("Init should return nil cmd")
	}
}

func TestModelInitialSort(t *testing.T) {
	m := testModel()
	// Findings should be sorted by severity (critical first)
	if len(m.filteredFindings) != 4 {
		t.Fatalf("expected 4 findings, got %d", len(m.filteredFindings))
	}
	if m.filteredFindings[0].Severity != models.SeverityCritical {
		t.Errorf("expected critical first after initial sort, got %s", m.filteredFindings[0].Severity)
	}
}

func TestModelWindowResize(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(Model)
	if model.width != 120 {
		t.Errorf("expected width 120, got %d", model.width)
	}
	if model.height != 40 {
		t.Errorf("expected height 40, got %d", model.height)
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("expected quit command, got nil")
	}
}

func TestModelEnterSearch(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	model := updated.(Model)
	if model.mode != modeSearch {
		t.Errorf("expected modeSearch, got %d", model.mode)
	}
}

func TestModelEnterFilterHost(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	model := updated.(Model)
	if model.mode != modeFilterHost {
		t.Errorf("expected modeFilterHost, got %d", model.mode)
	}
}

func TestModelCycleSeverityFilter(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	model := updated.(Model)
	if model.filters.Severity != models.SeverityCritical {
		t.Errorf("expected critical severity filter, got %s", model.filters.Severity)
	}
	if len(model.filteredFindings) != 1 {
		t.Errorf("expected 1 critical finding, got %d", len(model.filteredFindings))
	}
}

func TestModelCycleSort(t *testing.T) {
	m := testModel()
	if m.sortBy != sortBySeverity {
		t.Fatalf("expected initial sort by severity")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model := updated.(Model)
	if model.sortBy != sortByHost {
		t.Errorf("expected sort by host after one cycle, got %d", model.sortBy)
	}
	if !strings.Contains(model.statusMsg, "host") {
		t.Errorf("expected status to mention sort field, got %q", model.statusMsg)
	}
}

func TestModelClearFilter(t *testing.T) {
	m := testModel()
	m.filters = filterState{Host: "db01"}
	m.statusMsg = "Host: db01"
	m.rebuildTable()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model := updated.(Model)
	if model.filters.Host != "" {
		t.Errorf("expected host filter cleared, got %q", model.filters.Host)
	}
	if model.statusMsg != "" {
		t.Errorf("expected status cleared, got %q", model.statusMsg)
	}
	if len(model.filteredFindings) != 4 {
		t.Errorf("expected all 4 findings after clear, got %d", len(model.filteredFindings))
	}
}

func TestModelSearchEscape(t *testing.T) {
	m := testModel()
	m.mode = modeSearch

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model := updated.(Model)
	if model.mode != modeNormal {
		t.Errorf("expected modeNormal after esc in search, got %d", model.mode)
	}
}

func TestModelFilterHostEscape(t *testing.T) {
	m := testModel()
	m.mode = modeFilterHost

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	model := updated.(Model)
	if model.mode != modeNormal {
		t.Errorf("expected modeNormal after esc in filter, got %d", model.mode)
	}
}

func TestModelFilterHostNavigate(t *testing.T) {
	m := testModel()
	m.mode = modeFilterHost
	m.hostCursor = 0

	// Move down
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	model := updated.(Model)
	if model.hostCursor != 1 {
		t.Errorf("expected cursor 1 after down, got %d", model.hostCursor)
	}

	// Move up
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model = updated.(Model)
	if model.hostCursor != 0 {
		t.Errorf("expected cursor 0 after up, got %d", model.hostCursor)
	}

	// Can't go above 0
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model = updated.(Model)
	if model.hostCursor != 0 {
		t.Errorf("expected cursor stays at 0, got %d", model.hostCursor)
	}
}

func TestModelViewRenders(t *testing.T) {
	m := testModel()
	view := m.View()
	if !strings.Contains(view, "scan.csv") {
		t.Error("expected view to contain input file name")
	}
	if !strings.Contains(view, "findings") {
		t.Error("expected view to contain footer counts")
	}
}
