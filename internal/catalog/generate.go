package catalog

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/skillverse/internal/models"
)

var whitespace = regexp.MustCompile(`\s+`)

// Slug lower-cases s and replaces whitespace runs with '-'.
func Slug(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(s), "-")
}

func levelFor(index int) models.Level {
	switch {
	case index < 3:
		return models.LevelBeginner
	case index < 7:
		return models.LevelIntermediate
	default:
		return models.LevelAdvanced
	}
}

// DocLink picks an official documentation site by topic keywords. Rules are
// checked in order; the first match wins.
func DocLink(topic string) string {
	t := strings.ToLower(topic)
	switch {
	case strings.Contains(t, "java") && !strings.Contains(t, "script"):
		return "https://docs.oracle.com/en/java/"
	case strings.Contains(t, "script"), strings.Contains(t, "react"), strings.Contains(t, "node"):
		return "https://developer.mozilla.org/en-US/"
	case strings.Contains(t, "python"):
		return "https://docs.python.org/3/"
	case strings.Contains(t, "c++"), strings.Contains(t, "cpp"):
		return "https://en.cppreference.com/w/"
	case strings.Contains(t, "go"):
		return "https://go.dev/doc/"
	case strings.Contains(t, "rust"):
		return "https://www.rust-lang.org/learn"
	case strings.Contains(t, "figma"):
		return "https://help.figma.com/"
	case strings.Contains(t, "ui"), strings.Contains(t, "ux"):
		return "https://www.nngroup.com/articles/"
	}
	return "https://www.google.com/search?q=" + url.QueryEscape(topic+" documentation")
}

func buildCourse(topic, categoryID string, index int, modules []string, quiz []quizDef) models.Course {
	link := DocLink(topic)
	id := Slug(topic)
	return models.Course{
		ID:          id,
		CategoryID:  categoryID,
		Title:       topic,
		Description: fmt.Sprintf("Master %s with our comprehensive %d-module mastery path.", topic, len(modules)),
		Icon:        "BookOpen",
		Duration:    fmt.Sprintf("%d Hours", 8+index%5),
		Level:       levelFor(index),
		Content:     renderOutline(topic, link, modules, len(quiz)),
		Resources: []models.Resource{
			{Title: "Official " + topic + " Documentation", URL: link},
			{Title: topic + " Style Guide", URL: "#"},
			{Title: "Community Cheat Sheet", URL: "#"},
		},
		Quiz: buildQuiz(id, topic, quiz),
	}
}

func renderOutline(topic, link string, modules []string, questions int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mastering %s\n", topic)
	fmt.Fprintf(&b, "A comprehensive %d-module journey to becoming proficient in %s.\n\n", len(modules), topic)
	for i, m := range modules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m)
		fmt.Fprintf(&b, "   In this module, we dissect %s. Understanding this concept is fundamental to writing clean, efficient, and scalable %s code.\n", m, topic)
		b.WriteString("   - Theoretical foundations\n")
		b.WriteString("   - Practical implementation strategies\n")
		b.WriteString("   - Common industry use-cases\n")
		fmt.Fprintf(&b, "   Module %d of %d. Official docs: %s\n\n", i+1, len(modules), link)
	}
	fmt.Fprintf(&b, "Ready to certify your skills? Take the %d-question quiz to earn your certificate.\n", questions)
	return b.String()
}

// buildQuiz fills the template for subject and shuffles every question's
// options with a generator seeded from the course id, so a course always
// gets the same order.
func buildQuiz(courseID, subject string, tmpl []quizDef) []models.QuizQuestion {
	r := strings.NewReplacer("{subject}", subject, "{ext}", extension(subject))

	h := fnv.New64a()
	_, _ = h.Write([]byte(courseID))
	rng := rand.New(rand.NewPCG(h.Sum64(), uint64(len(tmpl))))

	out := make([]models.QuizQuestion, len(tmpl))
	for i, q := range tmpl {
		opts := make([]string, len(q.Options))
		for j, o := range q.Options {
			opts[j] = r.Replace(o)
		}
		correct := r.Replace(q.Correct)

		rng.Shuffle(len(opts), func(a, b int) { opts[a], opts[b] = opts[b], opts[a] })

		idx := 0
		for j, o := range opts {
			if o == correct {
				idx = j
				break
			}
		}

		out[i] = models.QuizQuestion{
			ID:            i + 1,
			Question:      r.Replace(q.Question),
			Options:       opts,
			CorrectAnswer: idx,
		}
	}
	return out
}

func extension(subject string) string {
	rs := []rune(strings.ToLower(subject))
	if len(rs) > 2 {
		rs = rs[:2]
	}
	return string(rs)
}

var difficultyLadder = []models.Difficulty{
	models.DifficultyEasy, models.DifficultyEasy,
	models.DifficultyMedium, models.DifficultyMedium, models.DifficultyMedium, models.DifficultyMedium,
	models.DifficultyHard, models.DifficultyHard, models.DifficultyHard, models.DifficultyHard,
}

const sampleAnswer = `Approach:
To solve this problem effectively, you should start by clarifying constraints. Then, propose a brute force solution followed by an optimized approach using hash maps or two pointers.

Key Takeaways:
- Time Complexity: O(n)
- Space Complexity: O(1)`

func buildCompany(def companyDef, roles []string) models.Company {
	id := Slug(def.Name)
	return models.Company{
		ID:          id,
		Name:        def.Name,
		Logo:        "https://ui-avatars.com/api/?name=" + url.QueryEscape(def.Name) + "&background=random&color=fff&rounded=true&bold=true&size=128",
		Description: fmt.Sprintf("Prepare for %s with curated questions focusing on %s.", def.Name, strings.Join(def.Focus, " and ")),
		Roles:       append([]string{}, roles...),
		Difficulty:  def.Difficulty,
		Focus:       append([]string{}, def.Focus...),
		Questions:   buildQuestions(id, def.Focus),
	}
}

func buildQuestions(companyID string, focus []string) []models.InterviewQuestion {
	primary := focus[0]
	secondary := "General"
	if len(focus) > 1 {
		secondary = focus[1]
	}

	out := make([]models.InterviewQuestion, len(difficultyLadder))
	for i, d := range difficultyLadder {
		title := fmt.Sprintf("Explain %s concepts in a real-world scenario", secondary)
		if i%2 == 0 {
			title = fmt.Sprintf("Solve this %s problem: Invert a Binary Tree", primary)
		}
		out[i] = models.InterviewQuestion{
			ID:           fmt.Sprintf("%s-q%d", companyID, i+1),
			Title:        title,
			Difficulty:   d,
			Tags:         []string{primary, secondary},
			Answer:       sampleAnswer,
			ResourceLink: "https://leetcode.com",
		}
	}
	return out
}
