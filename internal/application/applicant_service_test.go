package application

import (
	"testing"

	"github.com/devpals/devpals-go/internal/apperr"
	"github.com/devpals/devpals-go/internal/domain/applicant"
	"github.com/devpals/devpals-go/internal/domain/project"
	"github.com/devpals/devpals-go/internal/repository"
	"github.com/devpals/devpals-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApplicantServiceForTest(t *testing.T) (*ApplicantService, *mock.MockProjectRepo, *mock.MockApplicantRepo) {
	ctrl := gomock.NewController(t)
	projectRepo := mock.NewMockProjectRepo(ctrl)
	applicantRepo := mock.NewMockApplicantRepo(ctrl)

	svc := NewApplicantService(&repository.Repos{
		Project:   projectRepo,
		Applicant: applicantRepo,
	})
	return svc, projectRepo, applicantRepo
}

func TestApply(t *testing.T) {
	input := applicant.CreateApplicantDTO{
		Email:       "dev@test.dev",
		PhoneNumber: "010-0000-0000",
		Message:     "let me in",
	}

	t.Run("files a waiting application", func(t *testing.T) {
		svc, projectRepo, applicantRepo := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).
			Return(project.Project{ID: 10, AuthorID: 1}, nil)
		applicantRepo.EXPECT().GetByProjectAndUser(uint(10), uint(2)).
			Return(applicant.Applicant{}, gorm.ErrRecordNotFound)
		applicantRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *applicant.Applicant) error {
			assert.Equal(t, applicant.StatusWaiting, a.Status)
			a.ID = 5
			return nil
		})

		a, err := svc.Apply(2, 10, input)
		require.NoError(t, err)
		assert.Equal(t, uint(5), a.ID)
		assert.Equal(t, applicant.StatusWaiting, a.Status)
	})

	t.Run("author cannot apply to own posting", func(t *testing.T) {
		svc, projectRepo, _ := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).
			Return(project.Project{ID: 10, AuthorID: 1}, nil)

		_, err := svc.Apply(1, 10, input)
		assert.ErrorIs(t, err, ErrSelfApply)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("second application conflicts", func(t *testing.T) {
		svc, projectRepo, applicantRepo := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).
			Return(project.Project{ID: 10, AuthorID: 1}, nil)
		applicantRepo.EXPECT().GetByProjectAndUser(uint(10), uint(2)).
			Return(applicant.Applicant{ID: 5}, nil)

		_, err := svc.Apply(2, 10, input)
		assert.ErrorIs(t, err, ErrAlreadyApplied)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("insert race maps to the same conflict", func(t *testing.T) {
		svc, projectRepo, applicantRepo := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).
			Return(project.Project{ID: 10, AuthorID: 1}, nil)
		applicantRepo.EXPECT().GetByProjectAndUser(uint(10), uint(2)).
			Return(applicant.Applicant{}, gorm.ErrRecordNotFound)
		applicantRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

		_, err := svc.Apply(2, 10, input)
		assert.ErrorIs(t, err, ErrAlreadyApplied)
	})

	t.Run("missing project", func(t *testing.T) {
		svc, projectRepo, _ := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).
			Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := svc.Apply(2, 10, input)
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestSetStatus(t *testing.T) {
	authorID := uint(1)
	openProject := project.Project{ID: 10, AuthorID: authorID}

	t.Run("moves the applicant to the requested status", func(t *testing.T) {
		svc, projectRepo, applicantRepo := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).Return(openProject, nil)
		applicantRepo.EXPECT().GetByProjectAndUser(uint(10), uint(2)).
			Return(applicant.Applicant{ID: 5, Status: applicant.StatusWaiting}, nil)
		applicantRepo.EXPECT().UpdateStatus(uint(5), applicant.StatusAccepted).
			Return(applicant.Applicant{ID: 5, Status: applicant.StatusAccepted}, nil)

		a, err := svc.SetStatus(authorID, 10, 2, applicant.StatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, applicant.StatusAccepted, a.Status)
	})

	t.Run("accepted can still be rejected while open", func(t *testing.T) {
		svc, projectRepo, applicantRepo := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).Return(openProject, nil)
		applicantRepo.EXPECT().GetByProjectAndUser(uint(10), uint(2)).
			Return(applicant.Applicant{ID: 5, Status: applicant.StatusAccepted}, nil)
		applicantRepo.EXPECT().UpdateStatus(uint(5), applicant.StatusRejected).
			Return(applicant.Applicant{ID: 5, Status: applicant.StatusRejected}, nil)

		a, err := svc.SetStatus(authorID, 10, 2, applicant.StatusRejected)
		require.NoError(t, err)
		assert.Equal(t, applicant.StatusRejected, a.Status)
	})

	t.Run("rejects an unknown status value", func(t *testing.T) {
		svc, _, _ := newApplicantServiceForTest(t)

		_, err := svc.SetStatus(authorID, 10, 2, applicant.Status("PENDING"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("only the author decides", func(t *testing.T) {
		svc, projectRepo, _ := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).Return(openProject, nil)

		_, err := svc.SetStatus(99, 10, 2, applicant.StatusAccepted)
		assert.ErrorIs(t, err, ErrNotProjectAuthor)
	})

	t.Run("closed project freezes applicant status", func(t *testing.T) {
		svc, projectRepo, _ := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).
			Return(project.Project{ID: 10, AuthorID: authorID, IsDone: true}, nil)

		_, err := svc.SetStatus(authorID, 10, 2, applicant.StatusAccepted)
		assert.ErrorIs(t, err, ErrStatusOnClosed)
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	})

	t.Run("missing applicant", func(t *testing.T) {
		svc, projectRepo, applicantRepo := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).Return(openProject, nil)
		applicantRepo.EXPECT().GetByProjectAndUser(uint(10), uint(2)).
			Return(applicant.Applicant{}, gorm.ErrRecordNotFound)

		_, err := svc.SetStatus(authorID, 10, 2, applicant.StatusAccepted)
		assert.ErrorIs(t, err, ErrApplicantNotFound)
	})

	t.Run("repeating the current status is rejected", func(t *testing.T) {
		svc, projectRepo, applicantRepo := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).Return(openProject, nil)
		applicantRepo.EXPECT().GetByProjectAndUser(uint(10), uint(2)).
			Return(applicant.Applicant{ID: 5, Status: applicant.StatusAccepted}, nil)

		_, err := svc.SetStatus(authorID, 10, 2, applicant.StatusAccepted)
		assert.ErrorIs(t, err, ErrSameStatus)
	})
}

func TestByStatus(t *testing.T) {
	authorID := uint(1)

	t.Run("partitions accepted and rejected, drops waiting", func(t *testing.T) {
		svc, projectRepo, applicantRepo := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).
			Return(project.Project{ID: 10, AuthorID: authorID}, nil)
		applicantRepo.EXPECT().ListByProject(uint(10)).Return([]applicant.Applicant{
			{ID: 1, Status: applicant.StatusAccepted},
			{ID: 2, Status: applicant.StatusRejected},
			{ID: 3, Status: applicant.StatusWaiting},
		}, nil)

		partition, err := svc.ByStatus(authorID, 10)
		require.NoError(t, err)
		assert.Len(t, partition.Accepted, 1)
		assert.Len(t, partition.Rejected, 1)
	})

	t.Run("non-author cannot view applicants", func(t *testing.T) {
		svc, projectRepo, _ := newApplicantServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).
			Return(project.Project{ID: 10, AuthorID: authorID}, nil)

		_, err := svc.ByStatus(99, 10)
		assert.ErrorIs(t, err, ErrNotAuthorQuery)
	})
}
