package services

import (
	"errors"
	"fmt"

	"photo-contest-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteService records votes on submissions. A vote is one transaction: insert
// the ballot (the unique index rejects repeats) and bump the counter with
// votes = votes + 1. Two concurrent voters both land; the same voter twice
// cannot, no matter the interleaving.
type VoteService struct {
	DB *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{DB: db}
}

// CastVote registers voterID's vote on a submission and returns the updated
// vote count.
func (s *VoteService) CastVote(submissionID, voterID string) (int64, error) {
	if voterID == "" {
		return 0, fmt.Errorf("voter id: %w", ErrValidation)
	}

	var votes int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var submission models.Submission
		if err := tx.First(&submission, "id = ?", submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("submission %s: %w", submissionID, ErrNotFound)
			}
			return err
		}

		if submission.UserID == voterID {
			return ErrSelfVote
		}

		ballot := models.Ballot{
			ID:           uuid.NewString(),
			SubmissionID: submissionID,
			VoterID:      voterID,
		}
		if err := tx.Create(&ballot).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateVote
			}
			return fmt.Errorf("record ballot: %w", err)
		}

		if err := tx.Model(&models.Submission{}).
			Where("id = ?", submissionID).
			UpdateColumn("votes", gorm.Expr("votes + 1")).Error; err != nil {
			return fmt.Errorf("bump vote count: %w", err)
		}

		// Re-read inside the transaction so concurrent casts report the
		// count their own increment produced, not a stale snapshot.
		if err := tx.Select("votes").First(&submission, "id = ?", submissionID).Error; err != nil {
			return err
		}
		votes = submission.Votes
		return nil
	})
	if err != nil {
		return 0, err
	}
	return votes, nil
}

// VoterCount returns the size of a submission's voter set, straight from the
// ballots table. Equal to the submission's vote counter by construction.
func (s *VoteService) VoterCount(submissionID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Ballot{}).
		Where("submission_id = ?", submissionID).
		Count(&count).Error
	return count, err
}
