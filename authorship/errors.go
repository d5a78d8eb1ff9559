package authorship

import (
	"errors"
	"fmt"
)

// Issue defines the kind of contract violation of the attribution data.
type Issue int

const (
	// IssueEmptyTokens means the token sequence contains no tokens at all.
	IssueEmptyTokens Issue = iota

	// IssueMissingEditor means a token has no editor identifier.
	IssueMissingEditor

	// IssueUnknownRevision means a token refers to a revision missing from the history.
	IssueUnknownRevision
)

func (i Issue) String() string {
	switch i {
	case IssueEmptyTokens:
		return "empty_tokens"
	case IssueMissingEditor:
		return "missing_editor"
	case IssueUnknownRevision:
		return "unknown_revision"
	}
	return fmt.Sprintf("issue(%d)", int(i))
}

var (
	ErrEmptyTokens     = errors.New("token sequence is empty")
	ErrMissingEditor   = errors.New("token has no editor")
	ErrUnknownRevision = errors.New("revision not found in history")
)

// ContractError describes malformed data received from the attribution service.
type ContractError struct {
	Issue Issue // Issue is the kind of the violation.
	Index int   // Index is the position of the offending token, -1 if not applicable.
	Err   error // Err is the underlying sentinel error.
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

func (e *ContractError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Issue, e.Err)
	}
	return fmt.Sprintf("%s: token %d: %v", e.Issue, e.Index, e.Err)
}

// NewContractError is a factory function for creating a *ContractError.
func NewContractError(issue Issue, index int, err error) *ContractError {
	return &ContractError{
		Issue: issue,
		Index: index,
		Err:   err,
	}
}

func newUnknownRevisionError(index int, revID int64) error {
	return NewContractError(IssueUnknownRevision, index, fmt.Errorf("%w: %d", ErrUnknownRevision, revID))
}

// ValidateTokens checks the parts of the token sequence the annotation relies on.
func ValidateTokens(tokens []Token) error {
	if len(tokens) == 0 {
		return NewContractError(IssueEmptyTokens, -1, ErrEmptyTokens)
	}

	for i := range tokens {
		if tokens[i].Editor == "" {
			return NewContractError(IssueMissingEditor, i, ErrMissingEditor)
		}
	}

	return nil
}
