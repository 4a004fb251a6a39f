package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/quickpoll/quickpoll/models"
)

// PollStore persists polls and applies votes. Options and counters live
// in Postgres arrays so they stay positionally matched; the voter set is
// the poll_voter table, whose primary key is what actually enforces
// one-vote-per-user.
type PollStore struct {
	db *sql.DB
}

func NewPollStore(db *sql.DB) *PollStore {
	return &PollStore{db: db}
}

// pollColumns is shared by every poll read so each one carries the
// aggregated voter set.
const pollColumns = `
	p.id, p.question, p.options, p.votes, p.owner_id, p.is_active, p.created_at,
	COALESCE(ARRAY_AGG(v.user_id ORDER BY v.voted_at) FILTER (WHERE v.user_id IS NOT NULL), '{}')
`

const pollFrom = `
	FROM poll p
	LEFT JOIN poll_voter v ON v.poll_id = p.id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoll(row rowScanner) (models.Poll, error) {
	var (
		p        models.Poll
		owner    sql.NullString
		isActive sql.NullBool
	)
	err := row.Scan(
		&p.ID, &p.Question, pq.Array(&p.Options), pq.Array(&p.Votes),
		&owner, &isActive, &p.CreatedAt, pq.Array(&p.Voters),
	)
	if err != nil {
		return models.Poll{}, err
	}
	if owner.Valid {
		p.OwnerID = &owner.String
	}
	// NULL is_active means the row predates the flag; only explicit
	// false closes a poll.
	p.IsActive = !isActive.Valid || isActive.Bool
	if p.Voters == nil {
		p.Voters = []string{}
	}
	return p, nil
}

// CreatePoll validates and inserts a new poll owned by ownerID. Votes
// start at zero for every option and the poll starts active.
func (s *PollStore) CreatePoll(ctx context.Context, question string, options []string, ownerID string) (models.Poll, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.Poll{}, fmt.Errorf("%w: question is required", ErrValidation)
	}
	if len(options) < 2 {
		return models.Poll{}, fmt.Errorf("%w: at least 2 options are required", ErrValidation)
	}
	for _, opt := range options {
		if strings.TrimSpace(opt) == "" {
			return models.Poll{}, fmt.Errorf("%w: options must not be blank", ErrValidation)
		}
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	id := uuid.NewString()
	votes := make([]int64, len(options))
	createdAt := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO poll (id, question, options, votes, owner_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6)
	`, id, question, pq.Array(options), pq.Array(votes), ownerID, createdAt)
	if err != nil {
		return models.Poll{}, fmt.Errorf("insert poll: %w", err)
	}

	return models.Poll{
		ID:        id,
		Question:  question,
		Options:   options,
		Votes:     votes,
		OwnerID:   &ownerID,
		IsActive:  true,
		Voters:    []string{},
		CreatedAt: createdAt,
	}, nil
}

// FindPollByID returns the poll with the given id, or ErrNotFound.
func (s *PollStore) FindPollByID(ctx context.Context, id string) (models.Poll, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx, `
		SELECT `+pollColumns+pollFrom+`
		WHERE p.id = $1
		GROUP BY p.id
	`, id)

	poll, err := scanPoll(row)
	if err == sql.ErrNoRows {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("query poll: %w", err)
	}
	return poll, nil
}

// FindAllPolls returns every poll, newest first.
func (s *PollStore) FindAllPolls(ctx context.Context) ([]models.Poll, error) {
	return s.queryPolls(ctx, `
		SELECT `+pollColumns+pollFrom+`
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id
	`)
}

// FindPollsByOwner returns the polls owned by ownerID, newest first.
func (s *PollStore) FindPollsByOwner(ctx context.Context, ownerID string) ([]models.Poll, error) {
	return s.queryPolls(ctx, `
		SELECT `+pollColumns+pollFrom+`
		WHERE p.owner_id = $1
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id
	`, ownerID)
}

func (s *PollStore) queryPolls(ctx context.Context, query string, args ...any) ([]models.Poll, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		poll, err := scanPoll(rows)
		if err != nil {
			return nil, fmt.Errorf("scan poll: %w", err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate polls: %w", err)
	}
	return polls, nil
}

// SetPollActive toggles a poll's active flag. Ownership is part of the
// lookup predicate, so a poll that exists but belongs to someone else is
// indistinguishable from a missing one. Legacy polls without an owner
// accept the change from any authenticated caller.
func (s *PollStore) SetPollActive(ctx context.Context, id, ownerID string, active bool) (models.Poll, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `
		UPDATE poll
		SET is_active = $3
		WHERE id = $1 AND (owner_id = $2 OR owner_id IS NULL)
	`, id, ownerID, active)
	if err != nil {
		return models.Poll{}, fmt.Errorf("update poll status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Poll{}, fmt.Errorf("update poll status: %w", err)
	}
	if affected == 0 {
		return models.Poll{}, ErrNotFound
	}

	return s.FindPollByID(ctx, id)
}

// DeletePoll removes a poll and its voter records (via cascade). Same
// combined id-and-owner predicate as SetPollActive.
func (s *PollStore) DeletePoll(ctx context.Context, id, ownerID string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM poll
		WHERE id = $1 AND (owner_id = $2 OR owner_id IS NULL)
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete poll: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete poll: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// CastVote applies one vote by voterID for the option at optionIndex.
//
// The voter-set insert and the counter increment commit together or not
// at all. The increment is a targeted update of a single array element,
// so legacy rows missing newer columns are never rewritten, and the
// poll_voter primary key rejects a second vote even when two requests
// from the same user race. Concurrent votes by distinct users serialize
// on the poll row lock, so no increment is ever lost.
func (s *PollStore) CastVote(ctx context.Context, pollID string, optionIndex int, voterID string) (models.Poll, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Poll{}, fmt.Errorf("begin vote: %w", err)
	}
	defer tx.Rollback()

	var (
		options  []string
		isActive sql.NullBool
	)
	err = tx.QueryRowContext(ctx, `
		SELECT options, is_active FROM poll WHERE id = $1
	`, pollID).Scan(pq.Array(&options), &isActive)
	if err == sql.ErrNoRows {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("query poll: %w", err)
	}

	if isActive.Valid && !isActive.Bool {
		return models.Poll{}, ErrPollInactive
	}
	if optionIndex < 0 || optionIndex >= len(options) {
		return models.Poll{}, ErrInvalidOption
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO poll_voter (poll_id, user_id) VALUES ($1, $2)
	`, pollID, voterID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Poll{}, ErrAlreadyVoted
		}
		if isSerializationFailure(err) {
			return models.Poll{}, ErrConflict
		}
		return models.Poll{}, fmt.Errorf("record voter: %w", err)
	}

	// Postgres arrays are 1-indexed.
	_, err = tx.ExecContext(ctx, `
		UPDATE poll SET votes[$2] = votes[$2] + 1 WHERE id = $1
	`, pollID, optionIndex+1)
	if err != nil {
		if isSerializationFailure(err) {
			return models.Poll{}, ErrConflict
		}
		return models.Poll{}, fmt.Errorf("increment vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isSerializationFailure(err) {
			return models.Poll{}, ErrConflict
		}
		return models.Poll{}, fmt.Errorf("commit vote: %w", err)
	}

	return s.FindPollByID(ctx, pollID)
}
