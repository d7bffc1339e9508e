package handler

import (
	"github.com/pressroom/publishing-system/internal/core/ports"
)

// --- Service result → HTTP response ---

func toArticleResponse(v ports.ArticleView) articleResponse {
	return articleResponse{
		ID:      v.ID,
		Title:   v.Title,
		Content: v.Content,
		Status:  v.Status,
		Author: authorResponse{
			ID:   v.Author.ID,
			Name: v.Author.Name,
			Role: v.Author.Role,
		},
		PublishedAt: v.PublishedAt,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func toListResponse(views []ports.ArticleView) listArticlesResponse {
	items := make([]articleResponse, len(views))
	for i, v := range views {
		items[i] = toArticleResponse(v)
	}
	return listArticlesResponse{Data: items}
}
