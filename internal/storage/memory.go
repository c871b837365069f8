package storage

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"careerkit/internal/models"
)

// MemoryStorage mirrors the mongo semantics in process memory. It backs the
// tests and serves as a store for local development without a database.
// Records are held in insertion order, which is also creation-time order.
type MemoryStorage struct {
	mu       sync.RWMutex
	users    []models.User
	posts    []models.Post
	comments []models.Comment
	resumes  []models.Resume
	roadmaps []models.Roadmap
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Close(ctx context.Context) error {
	return nil
}

// Users

func (s *MemoryStorage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email || u.Username == user.Username {
			return ErrConflict
		}
	}

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStorage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// Posts

func matchesPost(p models.Post, filter models.PostFilter) bool {
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Content), needle) {
			return false
		}
	}
	return true
}

func (s *MemoryStorage) Posts(ctx context.Context, filter models.PostFilter, page, limit int) ([]models.Post, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// newest first: walk the insertion-ordered slice backwards
	matched := []models.Post{}
	for i := len(s.posts) - 1; i >= 0; i-- {
		if matchesPost(s.posts[i], filter) {
			matched = append(matched, s.posts[i])
		}
	}

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []models.Post{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *MemoryStorage) Post(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.postLocked(id)
}

func (s *MemoryStorage) postLocked(id primitive.ObjectID) (*models.Post, error) {
	for i := range s.posts {
		if s.posts[i].ID == id {
			post := s.posts[i]
			return &post, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) CreatePost(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = primitive.NewObjectID()
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.Likes = []primitive.ObjectID{}
	post.Comments = []primitive.ObjectID{}
	s.posts = append(s.posts, *post)
	return nil
}

func (s *MemoryStorage) UpdatePost(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			post.UpdatedAt = time.Now()
			s.posts[i].Title = post.Title
			s.posts[i].Content = post.Content
			s.posts[i].Category = post.Category
			s.posts[i].Tags = post.Tags
			s.posts[i].UpdatedAt = post.UpdatedAt
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStorage) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStorage) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		likes := s.posts[i].Likes
		for j, id := range likes {
			if id == userID {
				s.posts[i].Likes = append(likes[:j], likes[j+1:]...)
				return append([]primitive.ObjectID{}, s.posts[i].Likes...), nil
			}
		}
		s.posts[i].Likes = append(likes, userID)
		return append([]primitive.ObjectID{}, s.posts[i].Likes...), nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) AppendPostComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].Comments = append(s.posts[i].Comments, commentID)
			return nil
		}
	}
	return ErrNotFound
}

// Comments

func (s *MemoryStorage) CreateComment(ctx context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	comment.Likes = []primitive.ObjectID{}
	s.comments = append(s.comments, *comment)
	return nil
}

func (s *MemoryStorage) Comment(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.comments {
		if s.comments[i].ID == id {
			comment := s.comments[i]
			return &comment, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) CommentsByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := []models.Comment{}
	for i := len(s.comments) - 1; i >= 0; i-- {
		if s.comments[i].Post == postID {
			comments = append(comments, s.comments[i])
		}
	}
	return comments, nil
}

// Resumes

func (s *MemoryStorage) CreateResume(ctx context.Context, resume *models.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resume.ID = primitive.NewObjectID()
	now := time.Now()
	resume.CreatedAt = now
	resume.UpdatedAt = now
	s.resumes = append(s.resumes, *resume)
	return nil
}

func (s *MemoryStorage) Resumes(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]models.Resume, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Resume{}
	for i := len(s.resumes) - 1; i >= 0; i-- {
		if s.resumes[i].UserID == userID {
			matched = append(matched, s.resumes[i])
		}
	}

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []models.Resume{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *MemoryStorage) DeleteResume(ctx context.Context, id, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.resumes {
		if s.resumes[i].ID == id && s.resumes[i].UserID == userID {
			s.resumes = append(s.resumes[:i], s.resumes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Roadmaps

func (s *MemoryStorage) CreateRoadmap(ctx context.Context, roadmap *models.Roadmap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	roadmap.ID = primitive.NewObjectID()
	now := time.Now()
	roadmap.CreatedAt = now
	roadmap.UpdatedAt = now
	s.roadmaps = append(s.roadmaps, *roadmap)
	return nil
}

func matchesRoadmap(r models.Roadmap, filter models.RoadmapFilter) bool {
	if filter.JobTitle != "" && !strings.Contains(strings.ToLower(r.JobTitle), strings.ToLower(filter.JobTitle)) {
		return false
	}
	if filter.Level != "" && r.Level != filter.Level {
		return false
	}
	if filter.Mine && r.UserID != filter.UserID {
		return false
	}
	return true
}

func (s *MemoryStorage) Roadmaps(ctx context.Context, filter models.RoadmapFilter, page, limit int) ([]models.Roadmap, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []models.Roadmap{}
	for i := len(s.roadmaps) - 1; i >= 0; i-- {
		if matchesRoadmap(s.roadmaps[i], filter) {
			matched = append(matched, s.roadmaps[i])
		}
	}

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []models.Roadmap{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *MemoryStorage) Roadmap(ctx context.Context, id primitive.ObjectID) (*models.Roadmap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.roadmaps {
		if s.roadmaps[i].ID == id {
			roadmap := s.roadmaps[i]
			return &roadmap, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) DeleteRoadmap(ctx context.Context, id, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.roadmaps {
		if s.roadmaps[i].ID == id && s.roadmaps[i].UserID == userID {
			s.roadmaps = append(s.roadmaps[:i], s.roadmaps[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
