package blogservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/sushihentaime/blogist/internal/common"
)

var ErrRecordNotFound = errors.New("record not found")

func newBlogModel() *BlogModel {
	return &BlogModel{}
}

// insert stores blog and fills in the id the database assigned.
func (m *BlogModel) insert(ctx context.Context, s *common.Session, blog *Blog) error {
	ds := s.Insert(blogsTable).
		Prepared(true).
		Rows(goqu.Record{"title": blog.Title, "body": blog.Body})

	if s.SupportsReturning() {
		_, err := ds.Returning(goqu.C("id")).Executor().ScanValContext(ctx, &blog.ID)
		return err
	}

	res, err := ds.Executor().ExecContext(ctx)
	if err != nil {
		return err
	}

	blog.ID, err = res.LastInsertId()
	return err
}

// update overwrites title and body of the row with blog.ID.
func (m *BlogModel) update(ctx context.Context, s *common.Session, blog *Blog) error {
	res, err := s.Update(blogsTable).
		Prepared(true).
		Set(goqu.Record{"title": blog.Title, "body": blog.Body}).
		Where(goqu.C("id").Eq(blog.ID)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return err
	}

	return expectOneRow(res.RowsAffected())
}

func (m *BlogModel) delete(ctx context.Context, s *common.Session, id int64) error {
	res, err := s.Delete(blogsTable).
		Prepared(true).
		Where(goqu.C("id").Eq(id)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return err
	}

	return expectOneRow(res.RowsAffected())
}

// list returns every blog ordered by id.
func (m *BlogModel) list(ctx context.Context, s *common.Session) ([]Blog, error) {
	var blogs []Blog

	err := s.From(blogsTable).
		Prepared(true).
		Order(goqu.C("id").Asc()).
		ScanStructsContext(ctx, &blogs)
	if err != nil {
		return nil, err
	}

	if blogs == nil {
		blogs = []Blog{}
	}

	return blogs, nil
}

func expectOneRow(rows int64, err error) error {
	if err != nil {
		return err
	}

	switch {
	case rows == 1:
		return nil
	case rows == 0:
		return ErrRecordNotFound
	default:
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	}
}
