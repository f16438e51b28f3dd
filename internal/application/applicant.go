package application

import (
	"encoding/json"
	"errors"

	"github.com/devpals/devpals-go/internal/apperr"
	"github.com/devpals/devpals-go/internal/domain/applicant"
	"github.com/devpals/devpals-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSelfApply         = apperr.Forbidden("authors cannot apply to their own posting")
	ErrAlreadyApplied    = apperr.Conflict("already applied to this posting")
	ErrApplicantNotFound = apperr.NotFound("applicant not found")
	ErrStatusOnClosed    = apperr.BadRequest("closed postings cannot have applicant status changed")
	ErrSameStatus        = apperr.BadRequest("status is already the same")
	ErrInvalidStatus     = apperr.BadRequest("invalid applicant status")
	ErrNotAuthorQuery    = apperr.Forbidden("only the project author can view applicants")
)

// ApplicantService owns the per-applicant state machine and the
// authorization rules around it.
type ApplicantService struct {
	Repos *repository.Repos
}

func NewApplicantService(repos *repository.Repos) *ApplicantService {
	return &ApplicantService{Repos: repos}
}

// Apply files a WAITING application. An author cannot apply to their own
// posting, and a user applies to a given project at most once.
func (s *ApplicantService) Apply(userID, projectID uint, input applicant.CreateApplicantDTO) (*applicant.Applicant, error) {
	p, err := s.Repos.Project.GetByID(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	if p.AuthorID == userID {
		return nil, ErrSelfApply
	}
	if _, err := s.Repos.Applicant.GetByProjectAndUser(projectID, userID); err == nil {
		return nil, ErrAlreadyApplied
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	a := applicant.Applicant{
		ProjectID:   projectID,
		UserID:      userID,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Message:     input.Message,
		Status:      applicant.StatusWaiting,
	}
	if input.Career != nil {
		career, err := json.Marshal(input.Career)
		if err != nil {
			return nil, apperr.BadRequest("invalid career payload")
		}
		a.Career = career
	}

	if err := s.Repos.Applicant.Create(&a); err != nil {
		// The unique (project, user) index closes the precheck race.
		return nil, ErrAlreadyApplied
	}
	return &a, nil
}

// SetStatus is the author's decision on one applicant. Any status is
// reachable from any other while the project is open; repeating the current
// status is rejected so client bugs surface instead of silently looping.
func (s *ApplicantService) SetStatus(authorID, projectID, targetUserID uint, status applicant.Status) (*applicant.Applicant, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	p, err := s.Repos.Project.GetByID(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	if p.AuthorID != authorID {
		return nil, ErrNotProjectAuthor
	}
	if p.IsDone {
		return nil, ErrStatusOnClosed
	}

	a, err := s.Repos.Applicant.GetByProjectAndUser(projectID, targetUserID)
	if err != nil {
		return nil, ErrApplicantNotFound
	}
	if a.Status == status {
		return nil, ErrSameStatus
	}

	updated, err := s.Repos.Applicant.UpdateStatus(a.ID, status)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListByProject returns every applicant of a posting, author only.
func (s *ApplicantService) ListByProject(authorID, projectID uint) ([]applicant.Applicant, error) {
	if err := s.requireAuthor(authorID, projectID); err != nil {
		return nil, err
	}
	return s.Repos.Applicant.ListByProject(projectID)
}

// ByStatus returns the accepted/rejected partition, author only.
func (s *ApplicantService) ByStatus(authorID, projectID uint) (*applicant.StatusPartition, error) {
	all, err := s.ListByProject(authorID, projectID)
	if err != nil {
		return nil, err
	}
	partition := &applicant.StatusPartition{
		Accepted: []applicant.Applicant{},
		Rejected: []applicant.Applicant{},
	}
	for _, a := range all {
		switch a.Status {
		case applicant.StatusAccepted:
			partition.Accepted = append(partition.Accepted, a)
		case applicant.StatusRejected:
			partition.Rejected = append(partition.Rejected, a)
		}
	}
	return partition, nil
}

// Get returns one applicant's detail, author only.
func (s *ApplicantService) Get(authorID, projectID, targetUserID uint) (*applicant.Applicant, error) {
	if err := s.requireAuthor(authorID, projectID); err != nil {
		return nil, err
	}
	a, err := s.Repos.Applicant.GetByProjectAndUser(projectID, targetUserID)
	if err != nil {
		return nil, ErrApplicantNotFound
	}
	return &a, nil
}

// ListMine is the self-service view: the caller's own applications joined
// with the owning project's title and state.
func (s *ApplicantService) ListMine(userID uint) ([]applicant.ApplicationView, error) {
	return s.Repos.Applicant.ListByUser(userID)
}

func (s *ApplicantService) requireAuthor(authorID, projectID uint) error {
	p, err := s.Repos.Project.GetByID(projectID)
	if err != nil {
		return ErrProjectNotFound
	}
	if p.AuthorID != authorID {
		return ErrNotAuthorQuery
	}
	return nil
}
