package repository

import (
	"github.com/devpals/devpals-go/internal/domain/applicant"
	"gorm.io/gorm"
)

type ApplicantRepo interface {
	Create(a *applicant.Applicant) error
	GetByProjectAndUser(projectID, userID uint) (applicant.Applicant, error)
	ListByProject(projectID uint) ([]applicant.Applicant, error)
	ListByProjectAndStatus(projectID uint, status applicant.Status) ([]applicant.Applicant, error)
	UpdateStatus(id uint, status applicant.Status) (applicant.Applicant, error)
	// BulkRejectWaiting moves every WAITING row of the project to REJECTED
	// in one statement and reports how many rows changed.
	BulkRejectWaiting(projectID uint) (int64, error)
	ListByUser(userID uint) ([]applicant.ApplicationView, error)
	WithTx(tx *gorm.DB) ApplicantRepo
}

type DBApplicantRepo struct {
	db *gorm.DB
}

func NewApplicantRepo(db *gorm.DB) *DBApplicantRepo {
	return &DBApplicantRepo{db: db}
}

func (r *DBApplicantRepo) Create(a *applicant.Applicant) error {
	return r.db.Create(a).Error
}

func (r *DBApplicantRepo) GetByProjectAndUser(projectID, userID uint) (applicant.Applicant, error) {
	var a applicant.Applicant
	err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&a).Error
	return a, err
}

func (r *DBApplicantRepo) ListByProject(projectID uint) ([]applicant.Applicant, error) {
	var applicants []applicant.Applicant
	err := r.db.Where("project_id = ?", projectID).Find(&applicants).Error
	return applicants, err
}

func (r *DBApplicantRepo) ListByProjectAndStatus(projectID uint, status applicant.Status) ([]applicant.Applicant, error) {
	var applicants []applicant.Applicant
	err := r.db.Where("project_id = ? AND status = ?", projectID, status).Find(&applicants).Error
	return applicants, err
}

func (r *DBApplicantRepo) UpdateStatus(id uint, status applicant.Status) (applicant.Applicant, error) {
	if err := r.db.Model(&applicant.Applicant{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return applicant.Applicant{}, err
	}
	var a applicant.Applicant
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBApplicantRepo) BulkRejectWaiting(projectID uint) (int64, error) {
	res := r.db.Model(&applicant.Applicant{}).
		Where("project_id = ? AND status = ?", projectID, applicant.StatusWaiting).
		Update("status", applicant.StatusRejected)
	return res.RowsAffected, res.Error
}

func (r *DBApplicantRepo) ListByUser(userID uint) ([]applicant.ApplicationView, error) {
	var views []applicant.ApplicationView
	err := r.db.Table("applicants a").
		Select("p.id AS project_id, p.title AS project_title, a.status, p.recruitment_end_date").
		Joins("JOIN projects p ON p.id = a.project_id").
		Where("a.user_id = ? AND p.is_done = ?", userID, true).
		Scan(&views).Error
	return views, err
}

func (r *DBApplicantRepo) WithTx(tx *gorm.DB) ApplicantRepo {
	if tx == nil {
		return r
	}
	return &DBApplicantRepo{db: tx}
}
