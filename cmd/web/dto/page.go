package dto

import "bangla-news/pagination"

type CategorySectionDTO struct {
	Category CategoryDTO      `json:"category"`
	Articles []ArticleCardDTO `json:"articles"`
	// HasMore is set when the section is full and "load more" may return more.
	HasMore bool `json:"has_more"`
}

type HomePageDTO struct {
	Layout   LayoutDTO            `json:"layout"`
	Featured []ArticleCardDTO     `json:"featured"`
	Trending []ArticleCardDTO     `json:"trending"`
	Sections []CategorySectionDTO `json:"sections"`
}

// PaginationDTO embeds the pager and the Bangla "মোট {n}টি নিবন্ধ" line.
type PaginationDTO struct {
	pagination.Pager
	PageSize       int    `json:"page_size"`
	TotalCount     int    `json:"total_count"`
	TotalCountText string `json:"total_count_text"`
}

type CategoryPageDTO struct {
	Layout     LayoutDTO        `json:"layout"`
	Category   CategoryDTO      `json:"category"`
	Articles   []ArticleCardDTO `json:"articles"`
	Pagination PaginationDTO    `json:"pagination"`
}

type LatestDTO struct {
	Category CategoryDTO      `json:"category"`
	Articles []ArticleCardDTO `json:"articles"`
}

type SearchResultDTO struct {
	Query     string           `json:"query"`
	Sanitized string           `json:"sanitized"`
	Results   []ArticleCardDTO `json:"results"`
	Count     int              `json:"count"`
	CountText string           `json:"count_text"`
}

type SearchPageDTO struct {
	Layout LayoutDTO `json:"layout"`
	SearchResultDTO
}
