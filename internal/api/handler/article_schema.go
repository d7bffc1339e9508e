package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createArticleRequest struct {
	Title   string `json:"title"   validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// updateArticleRequest is a partial patch: nil fields are not touched.
type updateArticleRequest struct {
	Title   *string `json:"title,omitempty"   validate:"omitempty,max=255"`
	Content *string `json:"content,omitempty"`
}

// --- Response types ---

type authorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type articleResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	Status      string         `json:"status"`
	Author      authorResponse `json:"author"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type listArticlesResponse struct {
	Data []articleResponse `json:"data"`
}
