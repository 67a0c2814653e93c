package marketplace

import (
	"os"
	"path/filepath"
	"testing"
)

func writeExport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return path
}

func TestLoadCandidatesFromBareArray(t *testing.T) {
	path := writeExport(t, "candidates.json", `[
		{"id": "cand-1", "fullName": "Claire Dupont", "jobTitle": "Développeur Frontend",
		 "skills": ["JavaScript", "React"], "city": "Paris", "country": "France",
		 "experienceLevel": "senior", "availableImmediately": true},
		{"id": "cand-2", "jobTitle": "Comptable", "bioText": "audit et paie"}
	]`)

	candidates, err := LoadCandidates(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if candidates.Len() != 2 {
		t.Fatalf("expected 2 candidates, got %d", candidates.Len())
	}

	first := candidates.FindByID("cand-1")
	if first == nil {
		t.Fatalf("cand-1 not found")
	}
	if first.FullName != "Claire Dupont" || len(first.Skills) != 2 || !first.AvailableImmediately {
		t.Fatalf("cand-1 decoded incorrectly: %+v", first)
	}
	if second := candidates.FindByID("cand-2"); second == nil || second.Bio != "audit et paie" {
		t.Fatalf("cand-2 decoded incorrectly: %+v", second)
	}
}

func TestLoadJobsFromItemsWrapper(t *testing.T) {
	path := writeExport(t, "jobs.json", `{"items": [
		{"id": "job-1", "companyName": "Acme", "title": "Développeur React Senior",
		 "industry": "Tech", "location": "Paris", "remoteMode": "Hybride",
		 "contractType": "CDI", "salaryMin": 45000, "salaryMax": 55000}
	]}`)

	jobs, err := LoadJobs(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if jobs.Len() != 1 {
		t.Fatalf("expected 1 job, got %d", jobs.Len())
	}

	job := jobs.FindByID("job-1")
	if job == nil {
		t.Fatalf("job-1 not found")
	}
	if job.Title != "Développeur React Senior" || job.SalaryMax != 55000 {
		t.Fatalf("job-1 decoded incorrectly: %+v", job)
	}
}

func TestLoadJobsCoercesScalarTypes(t *testing.T) {
	path := writeExport(t, "jobs.json", `[
		{"id": 42, "title": "Développeur", "salaryMin": "38000"}
	]`)

	jobs, err := LoadJobs(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	job := jobs.Items[0]
	if job.ID != "42" {
		t.Fatalf("expected numeric id coerced to string, got %q", job.ID)
	}
	if job.SalaryMin != 38000 {
		t.Fatalf("expected string salary coerced to int, got %d", job.SalaryMin)
	}
}

func TestLoadJobsIgnoresUnknownFields(t *testing.T) {
	path := writeExport(t, "jobs.json", `[
		{"id": "job-1", "title": "Développeur", "postedAt": "2026-05-12", "applicants": 12}
	]`)

	jobs, err := LoadJobs(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if jobs.Items[0].Title != "Développeur" {
		t.Fatalf("decoded incorrectly: %+v", jobs.Items[0])
	}
}

func TestLoadCandidateSingleRecord(t *testing.T) {
	path := writeExport(t, "candidate.json", `{"id": "cand-1", "jobTitle": "Graphiste", "skills": ["figma"]}`)

	candidate, err := LoadCandidate(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if candidate.ID != "cand-1" || candidate.JobTitle != "Graphiste" {
		t.Fatalf("decoded incorrectly: %+v", candidate)
	}
}

func TestLoadJobSingleRecord(t *testing.T) {
	path := writeExport(t, "job.json", `{"id": "job-1", "title": "Designer UX", "industry": "Design"}`)

	job, err := LoadJob(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if job.ID != "job-1" || job.Industry != "Design" {
		t.Fatalf("decoded incorrectly: %+v", job)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadJobs(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Fatalf("expected an error for a missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeExport(t, "broken.json", `{"items": [`)
		if _, err := LoadCandidates(path); err == nil {
			t.Fatalf("expected an error for malformed json")
		}
	})
}

func TestLabels(t *testing.T) {
	candidate := &Candidate{ID: "cand-1", FullName: "Claire Dupont"}
	if got := candidate.Label(); got != "Claire Dupont (cand-1)" {
		t.Fatalf("unexpected candidate label %q", got)
	}

	anonymous := &Candidate{JobTitle: "Développeur"}
	if got := anonymous.Label(); got != "Développeur" {
		t.Fatalf("unexpected candidate label %q", got)
	}

	job := &Job{ID: "job-1", Title: "Développeur React", CompanyName: "Acme"}
	if got := job.Label(); got != "job-1 Développeur React / Acme" {
		t.Fatalf("unexpected job label %q", got)
	}
}
