package renderer

import "github.com/nechh42/akilli-finans-asistan/library"

// Library is the education page: a list of articles, possibly filtered by
// a search term, and the courses.
type Library struct {
	Term     string
	Articles []library.Article
	Courses  []library.Course
}

// LibraryMarkdown renders the education page.
func LibraryMarkdown(l *Library) string {
	return renderTemplate("library", "library.md", nil, l)
}

// FAQMarkdown renders frequently asked questions.
func FAQMarkdown(faq []library.FAQ) string {
	return renderTemplate("faq", "faq.md", nil, faq)
}

// ArticleMarkdown renders a full article.
func ArticleMarkdown(a library.Article) string {
	return renderTemplate("article", "article.md", nil, a)
}
