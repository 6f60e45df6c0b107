package model

// Image is a media field as the CMS returns it.
type Image struct {
	URL      string `json:"url"`
	ImgixURL string `json:"imgix_url"`
}

// Difficulty is the recipe difficulty select-dropdown.
type Difficulty struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Recipe struct {
	ID            string      `json:"id"`
	Slug          string      `json:"slug"`
	Title         string      `json:"title"`
	Name          string      `json:"name,omitempty"`
	Description   string      `json:"description,omitempty"`
	FeaturedImage *Image      `json:"featured_image,omitempty"`
	Ingredients   string      `json:"ingredients,omitempty"`
	Instructions  string      `json:"instructions,omitempty"`
	PrepTime      int         `json:"prep_time,omitempty"`
	CookTime      int         `json:"cook_time,omitempty"`
	Servings      int         `json:"servings,omitempty"`
	Difficulty    *Difficulty `json:"difficulty,omitempty"`
	Author        *Author     `json:"author,omitempty"`
	Categories    []*Category `json:"categories"`
}

// TotalTime is prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// DisplayName prefers the metadata name over the object title.
func (r *Recipe) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Title
}

type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

type Author struct {
	ID          string       `json:"id"`
	Slug        string       `json:"slug,omitempty"`
	Title       string       `json:"title,omitempty"`
	Name        string       `json:"name,omitempty"`
	Photo       *Image       `json:"photo,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	Specialty   string       `json:"specialty,omitempty"`
	Website     string       `json:"website,omitempty"`
	SocialLinks *SocialLinks `json:"social_links,omitempty"`
}

// IsStub reports whether only the id of a referenced author is known.
func (a *Author) IsStub() bool {
	return a.Slug == "" && a.Title == ""
}

type Category struct {
	ID          string `json:"id"`
	Slug        string `json:"slug,omitempty"`
	Title       string `json:"title,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Image       *Image `json:"image,omitempty"`
}

// IsStub reports whether only the id of a referenced category is known.
func (c *Category) IsStub() bool {
	return c.Slug == "" && c.Title == ""
}

type HomePage struct {
	ID                  string `json:"id"`
	Slug                string `json:"slug"`
	Title               string `json:"title"`
	HeroTitle           string `json:"hero_title,omitempty"`
	HeroDescription     string `json:"hero_description,omitempty"`
	HeroBackgroundImage *Image `json:"hero_background_image,omitempty"`
}

// ListResult is a read that may have fallen back to an empty list because
// the content store could not be read.
type ListResult[T any] struct {
	Items    []T
	Limit    int
	Degraded bool
	Cause    error
}

// DegradedList builds the empty fallback result for a failed read.
func DegradedList[T any](cause error, limit int) *ListResult[T] {
	return &ListResult[T]{Items: []T{}, Limit: limit, Degraded: true, Cause: NewReadDegradedError(cause)}
}
