package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("content not found")

//go:embed data/blog.json
var blogJSON []byte

//go:embed data/testimonials.json
var testimonialsJSON []byte

type Post struct {
	ID       int      `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime"`
	Author   string   `json:"author"`
}

type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Product  string `json:"product"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Library holds the editorial content bundled with the binary.
type Library struct {
	Posts        []Post
	Testimonials []Testimonial
}

func Load() (*Library, error) {
	lib := &Library{}
	if err := json.Unmarshal(blogJSON, &lib.Posts); err != nil {
		return nil, fmt.Errorf("decode blog posts: %w", err)
	}
	if err := json.Unmarshal(testimonialsJSON, &lib.Testimonials); err != nil {
		return nil, fmt.Errorf("decode testimonials: %w", err)
	}
	return lib, nil
}
