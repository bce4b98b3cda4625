// Package catalog builds the static learning content (categories, courses
// with quizzes, companies with interview questions) from an embedded YAML
// definition. The result is immutable and deterministic: the same definition
// always yields the same ids, ordering and quiz option order.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/skillverse/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var definition []byte

type categoryDef struct {
	models.Category `yaml:",inline"`
	Topics          []string `yaml:"topics"`
}

type quizDef struct {
	Question string   `yaml:"question"`
	Options  []string `yaml:"options"`
	Correct  string   `yaml:"correct"`
}

type companyDef struct {
	Name       string   `yaml:"name"`
	Difficulty string   `yaml:"difficulty"`
	Focus      []string `yaml:"focus"`
}

type document struct {
	Categories   []categoryDef               `yaml:"categories"`
	Modules      []string                    `yaml:"modules"`
	Quiz         []quizDef                   `yaml:"quiz"`
	CompanyRoles []string                    `yaml:"company_roles"`
	Companies    []companyDef                `yaml:"companies"`
	Onboarding   []models.OnboardingQuestion `yaml:"onboarding"`
}

// Catalog is the read-only content index.
type Catalog struct {
	categories []models.Category
	courses    []models.Course
	companies  []models.Company
	onboarding []models.OnboardingQuestion

	courseByID  map[string]int
	companyByID map[string]int
	questionOf  map[string]string // question id -> company id
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the catalog built from the embedded definition.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(definition)
	})
	return defaultCat, defaultErr
}

// Parse builds a catalog from a YAML definition.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(doc.Quiz) == 0 {
		return nil, fmt.Errorf("parse catalog: quiz template is empty")
	}

	c := &Catalog{
		courseByID:  map[string]int{},
		companyByID: map[string]int{},
		questionOf:  map[string]string{},
		onboarding:  doc.Onboarding,
	}

	for _, cat := range doc.Categories {
		c.categories = append(c.categories, cat.Category)
		for i, topic := range cat.Topics {
			course := buildCourse(topic, cat.ID, i, doc.Modules, doc.Quiz)
			if _, dup := c.courseByID[course.ID]; dup {
				return nil, fmt.Errorf("parse catalog: duplicate course id %q", course.ID)
			}
			c.courseByID[course.ID] = len(c.courses)
			c.courses = append(c.courses, course)
		}
	}

	for _, def := range doc.Companies {
		if len(def.Focus) == 0 {
			return nil, fmt.Errorf("parse catalog: company %q has no focus areas", def.Name)
		}
		company := buildCompany(def, doc.CompanyRoles)
		if _, dup := c.companyByID[company.ID]; dup {
			return nil, fmt.Errorf("parse catalog: duplicate company id %q", company.ID)
		}
		c.companyByID[company.ID] = len(c.companies)
		for _, q := range company.Questions {
			c.questionOf[q.ID] = company.ID
		}
		c.companies = append(c.companies, company)
	}

	return c, nil
}

func (c *Catalog) Categories() []models.Category {
	return slices.Clone(c.categories)
}

func (c *Catalog) Courses() []models.Course {
	return slices.Clone(c.courses)
}

// CoursesIn lists the courses of one category in definition order.
func (c *Catalog) CoursesIn(categoryID string) []models.Course {
	var out []models.Course
	for _, course := range c.courses {
		if course.CategoryID == categoryID {
			out = append(out, course)
		}
	}
	return out
}

func (c *Catalog) Course(id string) (models.Course, bool) {
	i, ok := c.courseByID[id]
	if !ok {
		return models.Course{}, false
	}
	return c.courses[i], true
}

func (c *Catalog) Companies() []models.Company {
	return slices.Clone(c.companies)
}

func (c *Catalog) Company(id string) (models.Company, bool) {
	i, ok := c.companyByID[id]
	if !ok {
		return models.Company{}, false
	}
	return c.companies[i], true
}

// Question resolves an interview question id and reports its company.
func (c *Catalog) Question(id string) (models.InterviewQuestion, string, bool) {
	companyID, ok := c.questionOf[id]
	if !ok {
		return models.InterviewQuestion{}, "", false
	}
	company := c.companies[c.companyByID[companyID]]
	for _, q := range company.Questions {
		if q.ID == id {
			return q, companyID, true
		}
	}
	return models.InterviewQuestion{}, "", false
}

// TotalQuestions counts interview questions across all companies.
func (c *Catalog) TotalQuestions() int {
	return len(c.questionOf)
}

func (c *Catalog) Onboarding() []models.OnboardingQuestion {
	return slices.Clone(c.onboarding)
}
