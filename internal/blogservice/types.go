package blogservice

import (
	"log/slog"

	"github.com/sushihentaime/blogist/internal/common"
)

const blogsTable = "blogs"

type Blog struct {
	ID    int64  `json:"id" db:"id" goqu:"skipinsert,skipupdate"`
	Title string `json:"title" db:"title"`
	Body  string `json:"body" db:"body"`
}

// BlogInput is the request shape for create and update. Pointers tell a
// missing or null field apart from an empty string.
type BlogInput struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

type BlogModel struct{}

type BlogService struct {
	store  *common.Store
	m      *BlogModel
	mb     common.MessageProducer
	logger *slog.Logger
}
