package sanity

import "fmt"

// Projections shared by the listing queries. Image assets are dereferenced so
// callers get a ready CDN url.
const (
	imageProjection    = `{alt, caption, "url": asset->url}`
	categoryProjection = `category->{_id, title, slug, color}`
	authorProjection   = `author->{_id, name, "image": image` + imageProjection + `}`

	articleCardProjection = `{
  _id, _createdAt, title, slug, excerpt, publishedAt, featured, breaking,
  "views": coalesce(views, 0),
  "mainImage": mainImage` + imageProjection + `,
  ` + categoryProjection + `,
  ` + authorProjection + `
}`

	articleDetailProjection = `{
  _id, _createdAt, title, slug, excerpt, publishedAt, featured, breaking, body, tags,
  "views": coalesce(views, 0),
  "mainImage": mainImage` + imageProjection + `,
  ` + categoryProjection + `,
  ` + authorProjection + `,
  "authorProfile": author->{_id, name, slug, bio, position, "image": image` + imageProjection + `}
}`

	categoryProjectionFull = `{_id, title, slug, description, color, order}`
)

const (
	queryCategories     = `*[_type == "category"] | order(title asc) ` + categoryProjectionFull
	queryCategoryBySlug = `*[_type == "category" && slug.current == $slug][0] ` + categoryProjectionFull
	queryArticleBySlug  = `*[_type == "article" && slug.current == $slug][0] ` + articleDetailProjection
	queryCountCategory  = `count(*[_type == "article" && category->slug.current == $slug])`
	querySitemap        = `*[_type in ["article", "category"] && defined(slug.current)]{_type, _id, slug, publishedAt}`
	queryPing           = `count(*[_type == "category"])`
)

// slice renders a GROQ slice. Only ints reach the query text; every string
// goes through $params.
func slice(offset, limit int) string {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	return fmt.Sprintf("[%d...%d]", offset, offset+limit)
}

func queryFeatured(limit int) string {
	return `*[_type == "article" && featured == true] | order(_createdAt desc)` + slice(0, limit) + " " + articleCardProjection
}

func queryTrending(limit int) string {
	return `*[_type == "article"] | order(views desc, _createdAt desc)` + slice(0, limit) + " " + articleCardProjection
}

func queryBreaking(limit int) string {
	return `*[_type == "article" && breaking == true] | order(_createdAt desc)` + slice(0, limit) + " " + articleCardProjection
}

func queryLatest(limit int) string {
	return `*[_type == "article"] | order(publishedAt desc)` + slice(0, limit) + " " + articleCardProjection
}

func queryByCategory(offset, limit int) string {
	return `*[_type == "article" && category->slug.current == $slug] | order(publishedAt desc)` + slice(offset, limit) + " " + articleCardProjection
}

func queryRelated(limit int) string {
	return `*[_type == "article" && category._ref == $categoryId && _id != $excludeId] | order(publishedAt desc)` + slice(0, limit) + " " + articleCardProjection
}

func querySearch(limit int) string {
	return `*[_type == "article" && (title match $term || body[].children[].text match $term)] | order(publishedAt desc)` + slice(0, limit) + " " + articleCardProjection
}
