package service

import (
	"context"

	"jsonviews/internal/model"
	"jsonviews/pkg/pagination"
)

//go:generate mockgen -source=api.go -destination=./placeholder_api_mock.go -package=service jsonviews/internal/service PlaceholderAPI
type PlaceholderAPI interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	ListPosts(ctx context.Context, page pagination.PageRequest) ([]model.Post, error)
	CreatePost(ctx context.Context, req model.NewPost) (model.Post, error)
}
