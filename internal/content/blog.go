package content

import (
	"strings"
)

// BlogCategories are the inspiration index tabs. "All" disables the filter.
var BlogCategories = []string{"All", "Trends", "Guides", "Case Studies"}

var PopularTags = []string{"trends", "quartz", "engineered quartz", "kitchen", "design", "maintenance", "worktops"}

const RelatedPostLimit = 3

// FilterPosts narrows posts to a category (case-insensitive) and then to
// those whose title, excerpt or any tag contains query.
func FilterPosts(posts []Post, category, query string) []Post {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if category != "" && !strings.EqualFold(category, "All") && !strings.EqualFold(p.Category, category) {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p Post, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) || strings.Contains(strings.ToLower(p.Excerpt), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func (l *Library) PostBySlug(slug string) (Post, error) {
	for _, p := range l.Posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// RelatedPosts returns the first posts other than p.
func (l *Library) RelatedPosts(p Post) []Post {
	out := make([]Post, 0, RelatedPostLimit)
	for _, other := range l.Posts {
		if other.ID == p.ID {
			continue
		}
		out = append(out, other)
		if len(out) == RelatedPostLimit {
			break
		}
	}
	return out
}

// Paragraphs splits an article body on blank lines.
func Paragraphs(body string) []string {
	var out []string
	for _, para := range strings.Split(body, "\n\n") {
		if s := strings.TrimSpace(para); s != "" {
			out = append(out, s)
		}
	}
	return out
}
