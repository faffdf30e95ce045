package store

import "context"

// TokenKind labels which grammar produced a recorded phrase.
type TokenKind string

const (
	TokenKindDuration TokenKind = "DURATION"
	TokenKindDateTime TokenKind = "DATETIME"
)

// ParseHistory is one successfully parsed timer phrase.
type ParseHistory struct {
	ID        int32
	UID       string
	CreatedTs int64

	// Input is the raw phrase as entered.
	Input string
	// Locale is the BCP 47 tag the phrase was parsed under.
	Locale string
	// Kind records which grammar matched.
	Kind TokenKind
	// Display is the canonical rendering of the parsed token.
	Display string
	// EndTs is the resolved end instant at parse time, unix seconds.
	EndTs int64
}

type FindParseHistory struct {
	ID     *int32
	UID    *string
	Kind   *TokenKind
	Locale *string

	Limit  *int
	Offset *int
}

type DeleteParseHistory struct {
	ID  *int32
	UID *string
	// All drops every record when no narrower filter is set.
	All bool
}

func (s *Store) CreateParseHistory(ctx context.Context, create *ParseHistory) (*ParseHistory, error) {
	return s.driver.CreateParseHistory(ctx, create)
}

func (s *Store) ListParseHistories(ctx context.Context, find *FindParseHistory) ([]*ParseHistory, error) {
	return s.driver.ListParseHistories(ctx, find)
}

func (s *Store) DeleteParseHistory(ctx context.Context, delete *DeleteParseHistory) error {
	return s.driver.DeleteParseHistory(ctx, delete)
}
