// Package library holds the education content of the assistant: articles,
// courses and frequently asked questions.
//
// Content is written in markdown. Each article is a file under articles/
// starting with a title heading, then a metadata list and an excerpt
// paragraph:
//
//	# Title
//
//	- category: temel
//	- read: 5
//
//	Excerpt paragraph.
//
// courses.md has one second-level heading per course followed by its
// level, modules and duration, and faq.md one second-level heading per
// question followed by the answer.
package library

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed content
var content embed.FS

// Article is an education article.
type Article struct {
	Slug     string // file name without extension
	Title    string
	Category string
	ReadTime int // minutes
	Excerpt  string
	Body     string
}

// Course is a training course outline.
type Course struct {
	Title    string
	Level    string
	Modules  int
	Duration string
}

// FAQ is a frequently asked question and its answer.
type FAQ struct {
	Question string
	Answer   string
}

// Library is the parsed education content.
type Library struct {
	Articles []Article
	Courses  []Course
	FAQ      []FAQ
}

// Default returns the library embedded in the binary.
func Default() *Library {
	fsys, err := fs.Sub(content, "content")
	if err != nil {
		panic(err)
	}
	lib, err := Load(fsys)
	if err != nil {
		panic(fmt.Sprintf("invalid embedded library: %v", err))
	}
	return lib
}

// Load parses the library rooted at fsys.
func Load(fsys fs.FS) (*Library, error) {
	lib := new(Library)

	files, err := fs.Glob(fsys, "articles/*.md")
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	for _, file := range files {
		src, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, err
		}
		a, err := parseArticle(src)
		if err != nil {
			return nil, fmt.Errorf("article %q: %w", file, err)
		}
		a.Slug = strings.TrimSuffix(path.Base(file), ".md")
		lib.Articles = append(lib.Articles, a)
	}

	if src, err := fs.ReadFile(fsys, "courses.md"); err == nil {
		if lib.Courses, err = parseCourses(src); err != nil {
			return nil, fmt.Errorf("courses.md: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if src, err := fs.ReadFile(fsys, "faq.md"); err == nil {
		lib.FAQ = parseFAQ(src)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return lib, nil
}

// Search returns the articles whose title, excerpt or category contains
// term, ignoring case. An empty term matches every article.
func (l *Library) Search(term string) []Article {
	term = strings.TrimSpace(term)
	if term == "" {
		return slices.Clone(l.Articles)
	}
	var found []Article
	for _, a := range l.Articles {
		if contains(a.Title, term) || contains(a.Excerpt, term) || contains(a.Category, term) {
			found = append(found, a)
		}
	}
	return found
}

// Article returns the article with this slug.
func (l *Library) Article(slug string) (Article, bool) {
	i := slices.IndexFunc(l.Articles, func(a Article) bool { return a.Slug == slug })
	if i < 0 {
		return Article{}, false
	}
	return l.Articles[i], true
}

// Categories returns the distinct article categories in order of appearance.
func (l *Library) Categories() []string {
	var categories []string
	for _, a := range l.Articles {
		if !slices.Contains(categories, a.Category) {
			categories = append(categories, a.Category)
		}
	}
	return categories
}

// contains reports whether s contains substr ignoring case. Turkish dotted
// and dotless i fold either way.
func contains(s, substr string) bool {
	if strings.Contains(strings.ToLower(s), strings.ToLower(substr)) {
		return true
	}
	return strings.Contains(strings.ToLowerSpecial(unicode.TurkishCase, s), strings.ToLowerSpecial(unicode.TurkishCase, substr))
}

func parse(src []byte) ast.Node {
	return goldmark.DefaultParser().Parse(text.NewReader(src))
}

// nodeText returns the raw text of a block node on a single line.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(src))
		b.WriteByte(' ')
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// properties reads a "key: value" bullet list.
func properties(list *ast.List, src []byte) map[string]string {
	props := make(map[string]string)
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		if item.FirstChild() == nil {
			continue
		}
		key, value, ok := strings.Cut(nodeText(item.FirstChild(), src), ":")
		if !ok {
			continue
		}
		props[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return props
}

func parseArticle(src []byte) (Article, error) {
	var a Article
	var body []string
	for n := parse(src).FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Heading:
			if n.Level == 1 && a.Title == "" {
				a.Title = nodeText(n, src)
			}
		case *ast.List:
			props := properties(n, src)
			if v, ok := props["category"]; ok {
				a.Category = v
			}
			if v, ok := props["read"]; ok {
				minutes, err := strconv.Atoi(strings.TrimSuffix(v, " dk"))
				if err != nil {
					return Article{}, fmt.Errorf("invalid read time %q", v)
				}
				a.ReadTime = minutes
			}
		case *ast.Paragraph:
			if a.Excerpt == "" {
				a.Excerpt = nodeText(n, src)
			} else {
				body = append(body, nodeText(n, src))
			}
		}
	}
	a.Body = strings.Join(body, "\n\n")

	switch {
	case a.Title == "":
		return Article{}, fmt.Errorf("missing title")
	case a.Category == "":
		return Article{}, fmt.Errorf("missing category")
	case a.Excerpt == "":
		return Article{}, fmt.Errorf("missing excerpt")
	}
	return a, nil
}

func parseCourses(src []byte) ([]Course, error) {
	var courses []Course
	for n := parse(src).FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Heading:
			if n.Level == 2 {
				courses = append(courses, Course{Title: nodeText(n, src)})
			}
		case *ast.List:
			if len(courses) == 0 {
				continue
			}
			c := &courses[len(courses)-1]
			props := properties(n, src)
			c.Level = props["level"]
			c.Duration = props["duration"]
			if v, ok := props["modules"]; ok {
				modules, err := strconv.Atoi(v)
				if err != nil {
					return nil, fmt.Errorf("course %q: invalid modules count %q", c.Title, v)
				}
				c.Modules = modules
			}
		}
	}
	return courses, nil
}

func parseFAQ(src []byte) []FAQ {
	var faq []FAQ
	for n := parse(src).FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Heading:
			if n.Level == 2 {
				faq = append(faq, FAQ{Question: nodeText(n, src)})
			}
		case *ast.Paragraph:
			if len(faq) == 0 {
				continue
			}
			q := &faq[len(faq)-1]
			if q.Answer != "" {
				q.Answer += "\n\n"
			}
			q.Answer += nodeText(n, src)
		}
	}
	return faq
}
