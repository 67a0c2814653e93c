package marketplace

import "fmt"

// Job is a read-only snapshot of a job posting as exported by the marketplace
// backend. Salary bounds are annual amounts in the same currency unit; zero
// means absent.
type Job struct {
	ID                 string `json:"id,omitempty" mapstructure:"id"`
	CompanyName        string `json:"companyName,omitempty" mapstructure:"companyName"`
	Title              string `json:"title,omitempty" mapstructure:"title"`
	Description        string `json:"description,omitempty" mapstructure:"description"`
	Industry           string `json:"industry,omitempty" mapstructure:"industry"`
	Location           string `json:"location,omitempty" mapstructure:"location"`
	RemoteMode         string `json:"remoteMode,omitempty" mapstructure:"remoteMode"`
	ExperienceRequired string `json:"experienceRequired,omitempty" mapstructure:"experienceRequired"`
	ContractType       string `json:"contractType,omitempty" mapstructure:"contractType"`
	SalaryMin          int    `json:"salaryMin,omitempty" mapstructure:"salaryMin"`
	SalaryMax          int    `json:"salaryMax,omitempty" mapstructure:"salaryMax"`
}

type Jobs struct {
	Items []*Job
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

func (j *Jobs) FindByID(id string) *Job {
	for _, job := range j.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}

func (j *Job) Label() string {
	title := j.Title
	if title == "" {
		return j.ID
	}
	if j.CompanyName != "" {
		title = fmt.Sprintf("%s / %s", title, j.CompanyName)
	}
	if j.ID == "" {
		return title
	}
	return fmt.Sprintf("%s %s", j.ID, title)
}
