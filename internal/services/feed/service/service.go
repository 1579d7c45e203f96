// Package service contains post, vote, and comment workflows
package service

import (
	"context"
	"time"

	"devgate/internal/modkit/repokit"
	perr "devgate/internal/platform/errors"
	"devgate/internal/services/feed/domain"
	"devgate/internal/services/feed/repo"
	usersdomain "devgate/internal/services/users/domain"

	"github.com/google/uuid"
)

// Service defines the feed service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the feed service
type Svc struct {
	Repo   repo.Repo
	Users  usersdomain.ServicePort
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	now func() time.Time
}

// New constructs a feed service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], users usersdomain.ServicePort) *Svc {
	if db == nil {
		panic("feed.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("feed.Service requires a non nil Repo binder")
	}
	if users == nil {
		panic("feed.Service requires the users port")
	}
	return &Svc{Repo: binder.Bind(db), Users: users, binder: binder, db: db, now: time.Now}
}

func toPost(p repo.RowPost) domain.Post {
	return domain.Post{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Title:     p.Title,
		Content:   p.Content,
		Upvotes:   p.Upvotes,
		Downvotes: p.Downvotes,
		Score:     p.Upvotes - p.Downvotes,
		CreatedAt: p.CreatedAt,
	}
}

// CreatePost publishes a post for an existing user
func (s *Svc) CreatePost(ctx context.Context, in domain.CreatePostInput) (domain.Post, error) {
	if err := s.Users.MustExist(ctx, in.AuthorID); err != nil {
		return domain.Post{}, err
	}
	row := repo.RowPost{
		ID:        uuid.NewString(),
		AuthorID:  in.AuthorID,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Repo.InsertPost(ctx, row); err != nil {
		return domain.Post{}, err
	}
	return toPost(row), nil
}

// GetPost returns one post by id
func (s *Svc) GetPost(ctx context.Context, id string) (domain.Post, error) {
	if id == "" {
		return domain.Post{}, perr.InvalidArgf("post id is required")
	}
	row, err := s.Repo.GetPost(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	return toPost(row), nil
}

// PostsByAuthor lists an author's posts, newest first
func (s *Svc) PostsByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	if err := s.Users.MustExist(ctx, authorID); err != nil {
		return nil, err
	}
	rows, err := s.Repo.PostsByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Post, 0, len(rows))
	for _, r := range rows {
		out = append(out, toPost(r))
	}
	return out, nil
}

// Vote applies one vote transition inside a transaction. Casting the
// opposite vote flips both tallies; casting the same vote again retracts it
func (s *Svc) Vote(ctx context.Context, in domain.VoteInput) (domain.VoteResult, error) {
	if err := s.Users.MustExist(ctx, in.UserID); err != nil {
		return domain.VoteResult{}, err
	}

	var out domain.VoteResult
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		prev, err := r.Vote(ctx, in.UserID, in.PostID)
		if err != nil {
			return err
		}

		var dUp, dDown int
		next := in.Value
		switch {
		case prev == in.Value:
			// same vote again retracts it
			next = 0
			if in.Value > 0 {
				dUp = -1
			} else {
				dDown = -1
			}
			if err := r.ClearVote(ctx, in.UserID, in.PostID); err != nil {
				return err
			}
		case prev == 0:
			if in.Value > 0 {
				dUp = 1
			} else {
				dDown = 1
			}
			if err := r.SetVote(ctx, in.UserID, in.PostID, in.Value); err != nil {
				return err
			}
		default:
			// flip: remove the old tally and add the new one
			if in.Value > 0 {
				dUp, dDown = 1, -1
			} else {
				dUp, dDown = -1, 1
			}
			if err := r.SetVote(ctx, in.UserID, in.PostID, in.Value); err != nil {
				return err
			}
		}

		if err := r.BumpCounts(ctx, in.PostID, dUp, dDown); err != nil {
			return err
		}

		p, err := r.GetPost(ctx, in.PostID)
		if err != nil {
			return err
		}
		out = domain.VoteResult{
			Upvotes:   p.Upvotes,
			Downvotes: p.Downvotes,
			Score:     p.Upvotes - p.Downvotes,
			UserVote:  next,
		}
		return nil
	})
	if err != nil {
		return domain.VoteResult{}, err
	}
	return out, nil
}

// CreateComment appends a comment, optionally under a parent
func (s *Svc) CreateComment(ctx context.Context, in domain.CreateCommentInput) (domain.Comment, error) {
	if err := s.Users.MustExist(ctx, in.AuthorID); err != nil {
		return domain.Comment{}, err
	}
	if _, err := s.Repo.GetPost(ctx, in.PostID); err != nil {
		return domain.Comment{}, err
	}
	row := repo.RowComment{
		ID:        uuid.NewString(),
		PostID:    in.PostID,
		AuthorID:  in.AuthorID,
		ParentID:  in.ParentID,
		Content:   in.Content,
		CreatedAt: s.now().UTC(),
	}
	if err := s.Repo.InsertComment(ctx, row); err != nil {
		return domain.Comment{}, err
	}
	return domain.Comment{
		ID:        row.ID,
		PostID:    row.PostID,
		AuthorID:  row.AuthorID,
		ParentID:  row.ParentID,
		Content:   row.Content,
		CreatedAt: row.CreatedAt,
		Replies:   []domain.Comment{},
	}, nil
}

// CommentTree returns the post's comments as a nested tree. Each level is
// sorted by creation time ascending; orphaned parents fall back to the root
func (s *Svc) CommentTree(ctx context.Context, postID string) ([]domain.Comment, error) {
	if _, err := s.Repo.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	rows, err := s.Repo.CommentsByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return buildTree(rows), nil
}

// buildTree folds flat rows (already sorted ascending) into nested comments
func buildTree(rows []repo.RowComment) []domain.Comment {
	nodes := make(map[string]*domain.Comment, len(rows))
	order := make([]string, 0, len(rows))
	for _, r := range rows {
		nodes[r.ID] = &domain.Comment{
			ID:        r.ID,
			PostID:    r.PostID,
			AuthorID:  r.AuthorID,
			ParentID:  r.ParentID,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
			Replies:   []domain.Comment{},
		}
		order = append(order, r.ID)
	}

	roots := []domain.Comment{}
	// children attach before their own children are visited because rows
	// arrive in creation order and replies cannot predate their parent
	for _, id := range order {
		n := nodes[id]
		if n.ParentID == "" {
			continue
		}
		if _, ok := nodes[n.ParentID]; !ok {
			n.ParentID = ""
		}
	}
	var attach func(parentID string) []domain.Comment
	attach = func(parentID string) []domain.Comment {
		var out []domain.Comment
		for _, id := range order {
			n := nodes[id]
			if n.ParentID != parentID {
				continue
			}
			c := *n
			c.Replies = attach(id)
			out = append(out, c)
		}
		if out == nil {
			out = []domain.Comment{}
		}
		return out
	}
	roots = attach("")
	return roots
}
