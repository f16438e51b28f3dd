package application

import (
	"github.com/devpals/devpals-go/internal/repository"
	"github.com/devpals/devpals-go/internal/storage"
)

type Services struct {
	Project      *ProjectService
	Applicant    *ApplicantService
	Tag          *TagService
	User         *UserService
	Notification *NotificationService
}

func New(repos *repository.Repos, mailer Mailer, images storage.ImageStore) *Services {
	notification := NewNotificationService(mailer)
	return &Services{
		Project:      NewProjectService(repos, notification),
		Applicant:    NewApplicantService(repos),
		Tag:          NewTagService(repos),
		User:         NewUserService(repos, images),
		Notification: notification,
	}
}
