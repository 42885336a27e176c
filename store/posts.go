package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"kavachjyotish/models"
)

// BlogPostUpdate carries the writable blog post fields for a partial
// update; nil fields are left untouched.
type BlogPostUpdate struct {
	Title       *string
	Content     *string
	Excerpt     *string
	Category    *string
	ImageURL    *string
	IsPublished *bool
}

func (s *Store) CreateBlogPost(post models.BlogPost) (*models.BlogPost, error) {
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// BlogPosts returns every post, drafts included, newest first.
func (s *Store) BlogPosts() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := s.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// PublishedBlogPosts returns only publicly visible posts, newest first.
func (s *Store) PublishedBlogPosts() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := s.db.Where("is_published = ?", true).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// PublishedBlogPost returns one visible post by id, or nil if the id is
// unknown or the post is unpublished.
func (s *Store) PublishedBlogPost(id int) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.db.Where("id = ? AND is_published = ?", id, true).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// UpdateBlogPost applies the non-nil fields and touches updated_at.
// Returns (nil, nil) when no row matches the id.
func (s *Store) UpdateBlogPost(id int, update BlogPostUpdate) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = *update.Content
	}
	if update.Excerpt != nil {
		post.Excerpt = *update.Excerpt
	}
	if update.Category != nil {
		post.Category = *update.Category
	}
	if update.ImageURL != nil {
		post.ImageURL = *update.ImageURL
	}
	if update.IsPublished != nil {
		post.IsPublished = *update.IsPublished
	}
	post.UpdatedAt = time.Now()

	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteBlogPost removes the post. Deleting an unknown id is not an error.
func (s *Store) DeleteBlogPost(id int) error {
	return s.db.Delete(&models.BlogPost{}, id).Error
}
