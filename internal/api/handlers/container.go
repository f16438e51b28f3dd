package handlers

import (
	"github.com/devpals/devpals-go/internal/application"
	"github.com/devpals/devpals-go/internal/chat"
)

type Handlers struct {
	Project   *ProjectHandler
	Applicant *ApplicantHandler
	Tag       *TagHandler
	User      *UserHandler
	Chat      *ChatHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Project:   NewProjectHandler(svc.Project),
		Applicant: NewApplicantHandler(svc.Applicant),
		Tag:       NewTagHandler(svc.Tag),
		User:      NewUserHandler(svc.User, svc.Applicant),
		Chat:      NewChatHandler(chat.NewHub()),
	}
}
