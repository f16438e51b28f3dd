package application

import (
	"errors"

	"github.com/devpals/devpals-go/internal/apperr"
	"github.com/devpals/devpals-go/internal/domain/applicant"
	"github.com/devpals/devpals-go/internal/domain/project"
	"github.com/devpals/devpals-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound     = apperr.NotFound("project not found")
	ErrNotProjectAuthor    = apperr.Forbidden("only the project author can do this")
	ErrProjectClosed       = apperr.BadRequest("closed postings cannot be edited")
	ErrMethodNotFound      = apperr.NotFound("method not found")
	ErrSkillTagNotFound    = apperr.NotFound("skill tag not found")
	ErrPositionTagNotFound = apperr.NotFound("position tag not found")
)

// ProjectService owns the posting lifecycle: create, edit with replace-set
// tag updates, the one-way close transition and its applicant cascade.
type ProjectService struct {
	Repos    *repository.Repos
	notifier *NotificationService
}

func NewProjectService(repos *repository.Repos, notifier *NotificationService) *ProjectService {
	return &ProjectService{
		Repos:    repos,
		notifier: notifier,
	}
}

func (s *ProjectService) GetProject(id uint) (*project.Project, error) {
	p, err := s.Repos.Project.GetByID(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	return &p, nil
}

func (s *ProjectService) ListProjects(f project.ListFilter) (*project.ListResult, error) {
	projects, total, err := s.Repos.Project.List(f)
	if err != nil {
		return nil, err
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	lastPage := int((total + repository.PageSize - 1) / repository.PageSize)
	return &project.ListResult{
		Projects:    projects,
		Total:       total,
		CurrentPage: page,
		LastPage:    lastPage,
	}, nil
}

func (s *ProjectService) ProjectCounts() (project.Counts, error) {
	return s.Repos.Project.Counts()
}

// IncrementViews bumps the read counter. Views sit outside the lifecycle
// invariants, so closed projects still count reads.
func (s *ProjectService) IncrementViews(id uint) (*project.Project, error) {
	if _, err := s.Repos.Project.GetByID(id); err != nil {
		return nil, ErrProjectNotFound
	}
	if err := s.Repos.Project.IncrementViews(id); err != nil {
		return nil, err
	}
	return s.GetProject(id)
}

// CreateProject validates every foreign reference up front, then inserts the
// project and both tag-link sets as one transaction.
func (s *ProjectService) CreateProject(authorID uint, input project.CreateProjectDTO) (*project.Project, error) {
	if err := s.validateRefs(&input.MethodID, input.SkillTagIDs, input.PositionTagIDs); err != nil {
		return nil, err
	}

	p := project.Project{
		Title:                input.Title,
		Description:          input.Description,
		TotalMember:          input.TotalMember,
		StartDate:            input.StartDate,
		EstimatedPeriod:      input.EstimatedPeriod,
		MethodID:             input.MethodID,
		AuthorID:             authorID,
		IsBeginner:           input.IsBeginner,
		RecruitmentStartDate: input.RecruitmentStartDate,
		RecruitmentEndDate:   input.RecruitmentEndDate,
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Project.Create(&p); err != nil {
			return err
		}
		if err := tx.Tag.ReplaceProjectSkillTags(p.ID, input.SkillTagIDs); err != nil {
			return err
		}
		return tx.Tag.ReplaceProjectPositionTags(p.ID, input.PositionTagIDs)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ModifyProject applies a partial update. Tag id lists, when present, are
// replaced as a whole inside the same transaction as the field update, so a
// reader never observes an empty or mixed tag set. Closed projects reject
// every edit.
func (s *ProjectService) ModifyProject(authorID, projectID uint, input project.ModifyProjectDTO) (*project.Project, error) {
	existing, err := s.Repos.Project.GetByID(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	if existing.AuthorID != authorID {
		return nil, ErrNotProjectAuthor
	}
	if existing.IsDone {
		return nil, ErrProjectClosed
	}

	// All reference validation happens before any write.
	if err := s.validateRefs(input.MethodID, input.SkillTagIDs, input.PositionTagIDs); err != nil {
		return nil, err
	}

	var updated project.Project
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		// Re-read under lock so an edit cannot interleave with a close.
		p, err := tx.Project.GetByIDForUpdate(projectID)
		if err != nil {
			return ErrProjectNotFound
		}
		if p.IsDone {
			return ErrProjectClosed
		}

		if input.Title != nil {
			p.Title = *input.Title
		}
		if input.Description != nil {
			p.Description = *input.Description
		}
		if input.TotalMember != nil {
			p.TotalMember = *input.TotalMember
		}
		if input.StartDate != nil {
			p.StartDate = *input.StartDate
		}
		if input.EstimatedPeriod != nil {
			p.EstimatedPeriod = *input.EstimatedPeriod
		}
		if input.MethodID != nil {
			p.MethodID = *input.MethodID
		}
		if input.IsBeginner != nil {
			p.IsBeginner = *input.IsBeginner
		}
		if input.RecruitmentStartDate != nil {
			p.RecruitmentStartDate = *input.RecruitmentStartDate
		}
		if input.RecruitmentEndDate != nil {
			p.RecruitmentEndDate = *input.RecruitmentEndDate
		}

		if err := tx.Project.Update(&p); err != nil {
			return err
		}
		if input.SkillTagIDs != nil {
			if err := tx.Tag.ReplaceProjectSkillTags(projectID, input.SkillTagIDs); err != nil {
				return err
			}
		}
		if input.PositionTagIDs != nil {
			if err := tx.Tag.ReplaceProjectPositionTags(projectID, input.PositionTagIDs); err != nil {
				return err
			}
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// CloseProject is the one-way open→done transition, identical for an author
// (actingAuthorID set, authorship enforced) and for the sweep
// (actingAuthorID nil). Closing an already-done project is a no-op success:
// the row lock plus the IsDone recheck guarantee that of two racing closers
// exactly one cascades and mails. The cascade and the flag flip commit
// together; the notification batch goes out after commit and its failures
// are the dispatcher's problem, never the caller's.
func (s *ProjectService) CloseProject(projectID uint, actingAuthorID *uint) (*project.Project, error) {
	var (
		closed      project.Project
		alreadyDone bool
		recipients  []OutcomeRecipient
	)

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		p, err := tx.Project.GetByIDForUpdate(projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}
		if actingAuthorID != nil && p.AuthorID != *actingAuthorID {
			return ErrNotProjectAuthor
		}
		if p.IsDone {
			closed = p
			alreadyDone = true
			return nil
		}

		if _, err := tx.Applicant.BulkRejectWaiting(projectID); err != nil {
			return err
		}

		accepted, err := tx.Applicant.ListByProjectAndStatus(projectID, applicant.StatusAccepted)
		if err != nil {
			return err
		}
		rejected, err := tx.Applicant.ListByProjectAndStatus(projectID, applicant.StatusRejected)
		if err != nil {
			return err
		}
		for _, a := range accepted {
			recipients = append(recipients, OutcomeRecipient{Email: a.Email, Outcome: applicant.StatusAccepted})
		}
		for _, a := range rejected {
			recipients = append(recipients, OutcomeRecipient{Email: a.Email, Outcome: applicant.StatusRejected})
		}

		p.IsDone = true
		if err := tx.Project.Update(&p); err != nil {
			return err
		}
		closed = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !alreadyDone {
		s.notifier.SendOutcome(projectID, closed.Title, recipients)
	}
	return &closed, nil
}

// validateRefs checks the method and both tag id sets against the lookup
// tables. Nil slices and nil method mean "not provided". The error names
// the missing category.
func (s *ProjectService) validateRefs(methodID *uint, skillTagIDs, positionTagIDs []uint) error {
	if methodID != nil {
		if _, err := s.Repos.Tag.GetMethodByID(*methodID); err != nil {
			return ErrMethodNotFound
		}
	}
	if skillTagIDs != nil {
		ids := dedupe(skillTagIDs)
		count, err := s.Repos.Tag.CountSkillTagsByIDs(ids)
		if err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return ErrSkillTagNotFound
		}
	}
	if positionTagIDs != nil {
		ids := dedupe(positionTagIDs)
		count, err := s.Repos.Tag.CountPositionTagsByIDs(ids)
		if err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return ErrPositionTagNotFound
		}
	}
	return nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
