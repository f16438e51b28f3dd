package application

import (
	"sync"
	"testing"

	"github.com/devpals/devpals-go/internal/apperr"
	"github.com/devpals/devpals-go/internal/domain/applicant"
	"github.com/devpals/devpals-go/internal/domain/project"
	"github.com/devpals/devpals-go/internal/domain/tag"
	"github.com/devpals/devpals-go/internal/repository"
	"github.com/devpals/devpals-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingMailer struct {
	mu     sync.Mutex
	sent   []string
	failTo map[string]bool
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTo[to] {
		return assert.AnError
	}
	m.sent = append(m.sent, to)
	return nil
}

func (m *recordingMailer) sentTo() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

func newProjectServiceForTest(t *testing.T) (*ProjectService, *mock.MockProjectRepo, *mock.MockApplicantRepo, *mock.MockTagRepo, *recordingMailer) {
	ctrl := gomock.NewController(t)
	projectRepo := mock.NewMockProjectRepo(ctrl)
	applicantRepo := mock.NewMockApplicantRepo(ctrl)
	tagRepo := mock.NewMockTagRepo(ctrl)

	mailer := &recordingMailer{failTo: map[string]bool{}}
	repos := &repository.Repos{
		Project:   projectRepo,
		Applicant: applicantRepo,
		Tag:       tagRepo,
	}
	svc := NewProjectService(repos, NewNotificationService(mailer))
	return svc, projectRepo, applicantRepo, tagRepo, mailer
}

func TestCloseProject(t *testing.T) {
	authorID := uint(1)

	t.Run("close cascades waiting and mails every decided applicant", func(t *testing.T) {
		svc, projectRepo, applicantRepo, _, mailer := newProjectServiceForTest(t)

		open := project.Project{ID: 10, AuthorID: authorID, Title: "Side Project", IsDone: false}
		projectRepo.EXPECT().GetByIDForUpdate(uint(10)).Return(open, nil)
		applicantRepo.EXPECT().BulkRejectWaiting(uint(10)).Return(int64(2), nil)
		applicantRepo.EXPECT().ListByProjectAndStatus(uint(10), applicant.StatusAccepted).
			Return([]applicant.Applicant{{ID: 1, Email: "accepted@test.dev"}}, nil)
		applicantRepo.EXPECT().ListByProjectAndStatus(uint(10), applicant.StatusRejected).
			Return([]applicant.Applicant{
				{ID: 2, Email: "rejected@test.dev"},
				{ID: 3, Email: ""},
			}, nil)
		projectRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			assert.True(t, p.IsDone)
			return nil
		})

		closed, err := svc.CloseProject(10, &authorID)
		require.NoError(t, err)
		assert.True(t, closed.IsDone)

		sent := mailer.sentTo()
		assert.Len(t, sent, 2)
		assert.Contains(t, sent, "accepted@test.dev")
		assert.Contains(t, sent, "rejected@test.dev")
	})

	t.Run("closing an already closed project is a silent no-op", func(t *testing.T) {
		svc, projectRepo, _, _, mailer := newProjectServiceForTest(t)

		done := project.Project{ID: 10, AuthorID: authorID, IsDone: true}
		projectRepo.EXPECT().GetByIDForUpdate(uint(10)).Return(done, nil)

		closed, err := svc.CloseProject(10, &authorID)
		require.NoError(t, err)
		assert.True(t, closed.IsDone)
		assert.Empty(t, mailer.sentTo())
	})

	t.Run("only the author may close", func(t *testing.T) {
		svc, projectRepo, _, _, _ := newProjectServiceForTest(t)

		other := uint(99)
		projectRepo.EXPECT().GetByIDForUpdate(uint(10)).
			Return(project.Project{ID: 10, AuthorID: authorID}, nil)

		_, err := svc.CloseProject(10, &other)
		assert.ErrorIs(t, err, ErrNotProjectAuthor)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("system close skips the author check", func(t *testing.T) {
		svc, projectRepo, applicantRepo, _, _ := newProjectServiceForTest(t)

		projectRepo.EXPECT().GetByIDForUpdate(uint(10)).
			Return(project.Project{ID: 10, AuthorID: authorID}, nil)
		applicantRepo.EXPECT().BulkRejectWaiting(uint(10)).Return(int64(0), nil)
		applicantRepo.EXPECT().ListByProjectAndStatus(uint(10), applicant.StatusAccepted).
			Return(nil, nil)
		applicantRepo.EXPECT().ListByProjectAndStatus(uint(10), applicant.StatusRejected).
			Return(nil, nil)
		projectRepo.EXPECT().Update(gomock.Any()).Return(nil)

		closed, err := svc.CloseProject(10, nil)
		require.NoError(t, err)
		assert.True(t, closed.IsDone)
	})

	t.Run("missing project", func(t *testing.T) {
		svc, projectRepo, _, _, _ := newProjectServiceForTest(t)

		projectRepo.EXPECT().GetByIDForUpdate(uint(10)).
			Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := svc.CloseProject(10, &authorID)
		assert.ErrorIs(t, err, ErrProjectNotFound)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestCreateProject(t *testing.T) {
	input := project.CreateProjectDTO{
		Title:          "Chat App",
		Description:    "Build a chat app",
		TotalMember:    4,
		MethodID:       1,
		SkillTagIDs:    []uint{1, 2},
		PositionTagIDs: []uint{3},
	}

	t.Run("inserts the project and both tag sets", func(t *testing.T) {
		svc, projectRepo, _, tagRepo, _ := newProjectServiceForTest(t)

		tagRepo.EXPECT().GetMethodByID(uint(1)).Return(tag.Method{ID: 1}, nil)
		tagRepo.EXPECT().CountSkillTagsByIDs([]uint{1, 2}).Return(int64(2), nil)
		tagRepo.EXPECT().CountPositionTagsByIDs([]uint{3}).Return(int64(1), nil)
		projectRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			p.ID = 42
			return nil
		})
		tagRepo.EXPECT().ReplaceProjectSkillTags(uint(42), []uint{1, 2}).Return(nil)
		tagRepo.EXPECT().ReplaceProjectPositionTags(uint(42), []uint{3}).Return(nil)

		p, err := svc.CreateProject(7, input)
		require.NoError(t, err)
		assert.Equal(t, uint(42), p.ID)
		assert.Equal(t, uint(7), p.AuthorID)
	})

	t.Run("unknown method rejects before any write", func(t *testing.T) {
		svc, _, _, tagRepo, _ := newProjectServiceForTest(t)

		tagRepo.EXPECT().GetMethodByID(uint(1)).Return(tag.Method{}, gorm.ErrRecordNotFound)

		_, err := svc.CreateProject(7, input)
		assert.ErrorIs(t, err, ErrMethodNotFound)
	})

	t.Run("unknown skill tag rejects the whole set", func(t *testing.T) {
		svc, _, _, tagRepo, _ := newProjectServiceForTest(t)

		tagRepo.EXPECT().GetMethodByID(uint(1)).Return(tag.Method{ID: 1}, nil)
		tagRepo.EXPECT().CountSkillTagsByIDs([]uint{1, 2}).Return(int64(1), nil)

		_, err := svc.CreateProject(7, input)
		assert.ErrorIs(t, err, ErrSkillTagNotFound)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestModifyProject(t *testing.T) {
	authorID := uint(1)

	t.Run("partial update replaces only the provided tag set", func(t *testing.T) {
		svc, projectRepo, _, tagRepo, _ := newProjectServiceForTest(t)

		existing := project.Project{ID: 10, AuthorID: authorID, Title: "Old"}
		projectRepo.EXPECT().GetByID(uint(10)).Return(existing, nil)
		tagRepo.EXPECT().CountSkillTagsByIDs([]uint{5}).Return(int64(1), nil)
		projectRepo.EXPECT().GetByIDForUpdate(uint(10)).Return(existing, nil)
		projectRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *project.Project) error {
			assert.Equal(t, "New", p.Title)
			return nil
		})
		tagRepo.EXPECT().ReplaceProjectSkillTags(uint(10), []uint{5}).Return(nil)

		title := "New"
		p, err := svc.ModifyProject(authorID, 10, project.ModifyProjectDTO{
			Title:       &title,
			SkillTagIDs: []uint{5},
		})
		require.NoError(t, err)
		assert.Equal(t, "New", p.Title)
	})

	t.Run("closed project rejects every edit", func(t *testing.T) {
		svc, projectRepo, _, _, _ := newProjectServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).
			Return(project.Project{ID: 10, AuthorID: authorID, IsDone: true}, nil)

		title := "New"
		_, err := svc.ModifyProject(authorID, 10, project.ModifyProjectDTO{Title: &title})
		assert.ErrorIs(t, err, ErrProjectClosed)
		assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	})

	t.Run("non-author cannot edit", func(t *testing.T) {
		svc, projectRepo, _, _, _ := newProjectServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).
			Return(project.Project{ID: 10, AuthorID: authorID}, nil)

		title := "New"
		_, err := svc.ModifyProject(99, 10, project.ModifyProjectDTO{Title: &title})
		assert.ErrorIs(t, err, ErrNotProjectAuthor)
	})

	t.Run("invalid position tag leaves the project untouched", func(t *testing.T) {
		svc, projectRepo, _, tagRepo, _ := newProjectServiceForTest(t)

		projectRepo.EXPECT().GetByID(uint(10)).
			Return(project.Project{ID: 10, AuthorID: authorID}, nil)
		tagRepo.EXPECT().CountPositionTagsByIDs([]uint{8, 9}).Return(int64(1), nil)

		_, err := svc.ModifyProject(authorID, 10, project.ModifyProjectDTO{
			PositionTagIDs: []uint{8, 9},
		})
		assert.ErrorIs(t, err, ErrPositionTagNotFound)
	})
}

func TestListProjects(t *testing.T) {
	svc, projectRepo, _, _, _ := newProjectServiceForTest(t)

	projectRepo.EXPECT().List(gomock.Any()).
		Return([]project.Project{{ID: 1}, {ID: 2}}, int64(25), nil)

	result, err := svc.ListProjects(project.ListFilter{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 2, result.CurrentPage)
	assert.Equal(t, 3, result.LastPage)
	assert.Len(t, result.Projects, 2)
}
