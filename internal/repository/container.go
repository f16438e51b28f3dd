package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Project   ProjectRepo
	Applicant ApplicantRepo
	Tag       TagRepo
	User      UserRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Project:   NewProjectRepo(db),
		Applicant: NewApplicantRepo(db),
		Tag:       NewTagRepo(db),
		User:      NewUserRepo(db),
		db:        db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Project:   r.Project.WithTx(tx),
		Applicant: r.Applicant.WithTx(tx),
		Tag:       r.Tag.WithTx(tx),
		User:      r.User.WithTx(tx),
		db:        tx,
	}
}

// ExecTx runs fn inside one database transaction. Without a db handle
// (mocked repos in unit tests) fn runs against the container as-is.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
