package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/postview/internal/client/models"
	"github.com/dmitrijs2005/postview/internal/logging"
)

// PostsAPI is the remote source of posts.
type PostsAPI interface {
	Posts(ctx context.Context) ([]models.Post, error)
	Post(ctx context.Context, id int) (models.Post, error)
}

type PostsState struct {
	Posts   []models.Post
	Loading bool
	Error   string
}

type PostState struct {
	Post    *models.Post
	Loading bool
	Error   string
}

// PostsService loads the post list and single posts. Errors become messages
// in the returned state; the last good list is kept across failed reloads.
type PostsService struct {
	api    PostsAPI
	logger logging.Logger

	mu     sync.Mutex
	list   PostsState
	detail map[int]PostState
}

func NewPostsService(api PostsAPI, logger logging.Logger) *PostsService {
	return &PostsService{
		api:    api,
		logger: logger.With("component", "posts"),
		detail: make(map[int]PostState),
	}
}

// List returns the list state, loading it on first use.
func (s *PostsService) List(ctx context.Context) PostsState {
	s.mu.Lock()
	loaded := s.list.Posts != nil
	st := s.list
	s.mu.Unlock()

	if loaded {
		return st
	}
	return s.Refetch(ctx)
}

// Refetch reloads the list.
func (s *PostsService) Refetch(ctx context.Context) PostsState {
	s.mu.Lock()
	s.list.Loading = true
	s.list.Error = ""
	s.mu.Unlock()

	posts, err := s.api.Posts(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.list.Loading = false
	if err != nil {
		s.logger.Warn(ctx, "fetch posts", "err", err)
		s.list.Error = err.Error()
	} else {
		s.list.Posts = posts
	}
	return s.list
}

// Detail loads post id. Results are not cached; every call fetches.
func (s *PostsService) Detail(ctx context.Context, id int) PostState {
	s.mu.Lock()
	prev := s.detail[id]
	s.detail[id] = PostState{Post: prev.Post, Loading: true}
	s.mu.Unlock()

	p, err := s.api.Post(ctx, id)

	st := PostState{Post: prev.Post}
	if err != nil {
		s.logger.Warn(ctx, "fetch post", "id", id, "err", err)
		st.Error = err.Error()
	} else {
		st.Post = &p
	}

	s.mu.Lock()
	s.detail[id] = st
	s.mu.Unlock()
	return st
}
