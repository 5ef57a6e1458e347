package service

import (
	"context"
	"time"

	"lumina_site/internal/common"
	"lumina_site/internal/domain/model"

	"github.com/gosimple/slug"
)

// ContentService serves the marketing catalogue and blog. Content is
// static demo data; copy comes from the translation tables so every page
// localizes for free.
type ContentService struct {
	products []model.Product
	posts    []model.BlogPost
}

func NewContentService() *ContentService {
	return &ContentService{
		products: []model.Product{
			{ID: "starter", TitleKey: "products.starter.title", DescKey: "products.starter.description", Price: "$9"},
			{ID: "growth", TitleKey: "products.growth.title", DescKey: "products.growth.description", Price: "$29"},
			{ID: "enterprise", TitleKey: "products.enterprise.title", DescKey: "products.enterprise.description", Price: "$99"},
		},
		posts: []model.BlogPost{
			{
				Slug:        slug.Make("Hello world"),
				TitleKey:    "blog.hello.title",
				ExcerptKey:  "blog.hello.excerpt",
				BodyKey:     "blog.hello.body",
				Author:      "Admin User",
				PublishedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			},
			{
				Slug:        slug.Make("Launch notes"),
				TitleKey:    "blog.launch.title",
				ExcerptKey:  "blog.launch.excerpt",
				BodyKey:     "blog.launch.body",
				Author:      "Demo User",
				PublishedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

func (s *ContentService) Products(ctx context.Context) []model.Product {
	return s.products
}

func (s *ContentService) Posts(ctx context.Context) []model.BlogPost {
	return s.posts
}

func (s *ContentService) PostBySlug(ctx context.Context, postSlug string) (*model.BlogPost, error) {
	for i := range s.posts {
		if s.posts[i].Slug == postSlug {
			return &s.posts[i], nil
		}
	}
	return nil, common.ErrNotFound
}
