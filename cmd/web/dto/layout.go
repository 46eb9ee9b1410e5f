package dto

type CategoryDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
}

type BreakingItemDTO struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// LayoutDTO is the page chrome shared by every page: navigation, ticker, theme
// and the footer date.
type LayoutDTO struct {
	SiteName     string            `json:"site_name"`
	Categories   []CategoryDTO     `json:"categories"`
	BreakingNews []BreakingItemDTO `json:"breaking_news"`
	Theme        string            `json:"theme" example:"light"`
	Today        string            `json:"today"`
}

type ThemeDTO struct {
	Theme string `json:"theme" example:"dark" binding:"required"`
}
