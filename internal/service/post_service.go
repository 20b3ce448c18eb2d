package service

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/klass-lk/ginblog/internal/apierror"
	"github.com/klass-lk/ginblog/internal/model"
	"github.com/klass-lk/ginblog/internal/repository"
	"github.com/klass-lk/ginblog/internal/validation"
)

// PostStore is the persistence surface the service depends on, satisfied
// by repository.PostRepository and by in-memory doubles in tests.
type PostStore interface {
	FindAll() ([]model.Post, error)
	FindById(id string) (model.Post, error)
	Save(post model.Post) error
	Update(post model.Post) error
	Delete(id string) error
}

// PostRequest carries the content fields accepted on create and update.
type PostRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Body   string `json:"body"`
}

func (r PostRequest) Fields() map[string]string {
	return map[string]string{
		"title":  r.Title,
		"author": r.Author,
		"body":   r.Body,
	}
}

type PostService struct {
	store PostStore
	rules validation.Rules
	now   func() time.Time
}

func NewPostService(store PostStore) *PostService {
	return &PostService{
		store: store,
		rules: validation.PostRules,
		now:   time.Now,
	}
}

// CreatePost validates the request, assigns a fresh id and creation
// timestamp, and inserts the post. Every store call is attempted exactly
// once; faults surface immediately as ApiError values.
func (s *PostService) CreatePost(req PostRequest) (model.Post, error) {
	if violations := s.rules.Validate(req.Fields()); len(violations) > 0 {
		return model.Post{}, apierror.Validation(violations)
	}

	post := model.Post{
		ID:       primitive.NewObjectID().Hex(),
		Title:    req.Title,
		Author:   req.Author,
		Body:     req.Body,
		PostTime: s.now(),
		Modified: false,
	}

	if err := s.store.Save(post); err != nil {
		return model.Post{}, apierror.From(err)
	}
	return post, nil
}

func (s *PostService) GetPosts() ([]model.Post, error) {
	posts, err := s.store.FindAll()
	if err != nil {
		return nil, apierror.From(err)
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return posts, nil
}

func (s *PostService) GetPost(id string) (model.Post, error) {
	post, err := s.store.FindById(id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Post{}, apierror.NotFound("Post not found")
	}
	if err != nil {
		return model.Post{}, apierror.From(err)
	}
	return post, nil
}

// UpdatePost replaces all three content fields of an existing post and
// stamps it modified. ModifyTime is overwritten on every update, not only
// the first.
func (s *PostService) UpdatePost(id string, req PostRequest) (model.Post, error) {
	if violations := s.rules.Validate(req.Fields()); len(violations) > 0 {
		return model.Post{}, apierror.Validation(violations)
	}

	post, err := s.store.FindById(id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Post{}, apierror.NotFound("Post not found")
	}
	if err != nil {
		return model.Post{}, apierror.From(err)
	}

	modifyTime := s.now()
	post.Title = req.Title
	post.Author = req.Author
	post.Body = req.Body
	post.Modified = true
	post.ModifyTime = &modifyTime

	if err := s.store.Update(post); err != nil {
		return model.Post{}, apierror.From(err)
	}
	return post, nil
}

func (s *PostService) DeletePost(id string) error {
	if _, err := s.store.FindById(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apierror.NotFound("Post not found")
		}
		return apierror.From(err)
	}

	if err := s.store.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apierror.NotFound("Post not found")
		}
		return apierror.From(err)
	}
	return nil
}
