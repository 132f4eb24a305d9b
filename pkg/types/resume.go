// Copyright Punit Mishra, 2026. All rights reserved.

package types

// ResumeData is the hand-maintained structure the resume document is
// built from. Constructed on demand, serialized to HTML, discarded.
type ResumeData struct {
	PersonalInfo   PersonalInfo      `yaml:"personal_info" validate:"required"`
	Summary        string            `yaml:"summary" validate:"required"`
	Experience     []ExperienceEntry `yaml:"experience" validate:"dive"`
	Education      []EducationEntry  `yaml:"education" validate:"dive"`
	Skills         []SkillGroup      `yaml:"skills" validate:"dive"`
	Certifications []CertEntry       `yaml:"certifications" validate:"dive"`
}

// PersonalInfo is the resume header block.
type PersonalInfo struct {
	Name     string `yaml:"name" validate:"required"`
	Title    string `yaml:"title"`
	Email    string `yaml:"email" validate:"required,email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
	Website  string `yaml:"website"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
}

// ExperienceEntry is one position. Achievements and TechStack render in
// source order.
type ExperienceEntry struct {
	Company      string   `yaml:"company" validate:"required"`
	Role         string   `yaml:"role" validate:"required"`
	Location     string   `yaml:"location"`
	Period       string   `yaml:"period"`
	Achievements []string `yaml:"achievements"`
	TechStack    []string `yaml:"tech_stack"`
}

// EducationEntry is one degree or program.
type EducationEntry struct {
	Institution     string   `yaml:"institution" validate:"required"`
	Degree          string   `yaml:"degree"`
	Period          string   `yaml:"period"`
	Specializations []string `yaml:"specializations"`
}

// SkillGroup is a named group of related skills ("Languages", "Infrastructure").
type SkillGroup struct {
	Name   string   `yaml:"name" validate:"required"`
	Skills []string `yaml:"skills"`
}

// CertEntry is one certification line.
type CertEntry struct {
	Name   string `yaml:"name" validate:"required"`
	Issuer string `yaml:"issuer"`
	Year   string `yaml:"year"`
}
