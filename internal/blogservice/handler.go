package blogservice

import (
	"context"
	"log/slog"

	"github.com/sushihentaime/blogist/internal/common"
)

// NewBlogService wires the service to its store. mb may be nil, in which
// case no change events are published.
func NewBlogService(store *common.Store, mb common.MessageProducer, logger *slog.Logger) *BlogService {
	if logger == nil {
		logger = slog.Default()
	}

	return &BlogService{store: store, m: newBlogModel(), mb: mb, logger: logger}
}

// CreateBlog stores a new blog post and returns it with its assigned ID.
func (s *BlogService) CreateBlog(ctx context.Context, input *BlogInput) (*Blog, error) {
	v := common.NewValidator()
	validateInput(v, input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	sess, err := s.store.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	blog := &Blog{Title: *input.Title, Body: *input.Body}

	err = s.m.insert(ctx, sess, blog)
	if err != nil {
		return nil, err
	}

	err = sess.Commit()
	if err != nil {
		return nil, err
	}

	s.publish(ctx, common.BlogCreatedKey, blog.ID, blog)

	return blog, nil
}

// UpdateBlog replaces both title and body of an existing blog post.
func (s *BlogService) UpdateBlog(ctx context.Context, id int64, input *BlogInput) (*Blog, error) {
	v := common.NewValidator()
	validateInput(v, input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	sess, err := s.store.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	blog := &Blog{ID: id, Title: *input.Title, Body: *input.Body}

	err = s.m.update(ctx, sess, blog)
	if err != nil {
		return nil, err
	}

	err = sess.Commit()
	if err != nil {
		return nil, err
	}

	s.publish(ctx, common.BlogUpdatedKey, blog.ID, blog)

	return blog, nil
}

// DeleteBlog removes a blog post.
func (s *BlogService) DeleteBlog(ctx context.Context, id int64) error {
	sess, err := s.store.Session(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	err = s.m.delete(ctx, sess, id)
	if err != nil {
		return err
	}

	err = sess.Commit()
	if err != nil {
		return err
	}

	s.publish(ctx, common.BlogDeletedKey, id, nil)

	return nil
}

// GetBlogs returns every blog post ordered by ID.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	sess, err := s.store.Session(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	blogs, err := s.m.list(ctx, sess)
	if err != nil {
		return nil, err
	}

	return blogs, sess.Commit()
}
