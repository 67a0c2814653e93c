package marketplace

import (
	"fmt"
)

// Candidate is a read-only snapshot of a candidate profile as exported by the
// marketplace backend. The scoring engine consumes it as-is and never mutates it.
type Candidate struct {
	ID                   string   `json:"id,omitempty" mapstructure:"id"`
	FullName             string   `json:"fullName,omitempty" mapstructure:"fullName"`
	Skills               []string `json:"skills,omitempty" mapstructure:"skills"`
	JobTitle             string   `json:"jobTitle,omitempty" mapstructure:"jobTitle"`
	Bio                  string   `json:"bioText,omitempty" mapstructure:"bioText"`
	City                 string   `json:"city,omitempty" mapstructure:"city"`
	Country              string   `json:"country,omitempty" mapstructure:"country"`
	ExperienceLevel      string   `json:"experienceLevel,omitempty" mapstructure:"experienceLevel"`
	AvailableImmediately bool     `json:"availableImmediately,omitempty" mapstructure:"availableImmediately"`
}

type Candidates struct {
	Items []*Candidate
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) FindByID(id string) *Candidate {
	for _, candidate := range c.Items {
		if candidate.ID == id {
			return candidate
		}
	}
	return nil
}

// Label returns a short human-readable identifier used in prompts and reports.
func (c *Candidate) Label() string {
	name := c.FullName
	if name == "" {
		name = c.JobTitle
	}
	if name == "" {
		return c.ID
	}
	if c.ID == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, c.ID)
}
