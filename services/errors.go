package services

import (
	"errors"
)

// Expected, recoverable contest conditions. Handlers map these to statuses;
// anything else bubbling out of a service is an infrastructure failure.
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("missing required field")
	ErrDuplicateSubmission = errors.New("already submitted for today")
	ErrSubmissionsClosed   = errors.New("submissions are closed for today")
	ErrSelfVote            = errors.New("cannot vote for your own submission")
	ErrDuplicateVote       = errors.New("already voted on this submission")
	ErrAlreadyMember       = errors.New("already a member of this group")
	ErrInvalidJoinCode     = errors.New("invalid group code")
)
