package repository

import (
	"time"

	"github.com/devpals/devpals-go/internal/domain/project"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PageSize is the fixed board page size.
const PageSize = 12

type ProjectRepo interface {
	Create(p *project.Project) error
	GetByID(id uint) (project.Project, error)
	// GetByIDForUpdate locks the project row for the rest of the
	// transaction. Callers must be inside ExecTx.
	GetByIDForUpdate(id uint) (project.Project, error)
	List(f project.ListFilter) ([]project.Project, int64, error)
	Counts() (project.Counts, error)
	Update(p *project.Project) error
	IncrementViews(id uint) error
	ListExpiredOpen(now time.Time) ([]project.Project, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) Create(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) GetByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) GetByIDForUpdate(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) List(f project.ListFilter) ([]project.Project, int64, error) {
	q := r.db.Model(&project.Project{})

	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", kw, kw)
	}
	if f.MethodID != nil {
		q = q.Where("method_id = ?", *f.MethodID)
	}
	if f.IsBeginner != nil {
		q = q.Where("is_beginner = ?", *f.IsBeginner)
	}
	if f.PositionTag != nil {
		q = q.Where("id IN (?)", r.db.Table("project_position_tags").
			Select("project_id").Where("position_tag_id = ?", *f.PositionTag))
	}
	if len(f.SkillTags) > 0 {
		q = q.Where("id IN (?)", r.db.Table("project_skill_tags").
			Select("project_id").Where("skill_tag_id IN ?", f.SkillTags))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := f.Page
	if page < 1 {
		page = 1
	}

	var projects []project.Project
	err := q.Order("created_at DESC").
		Offset((page - 1) * PageSize).
		Limit(PageSize).
		Find(&projects).Error
	return projects, total, err
}

func (r *DBProjectRepo) Counts() (project.Counts, error) {
	var c project.Counts
	if err := r.db.Model(&project.Project{}).Count(&c.Total).Error; err != nil {
		return c, err
	}
	if err := r.db.Model(&project.Project{}).Where("is_done = ?", true).Count(&c.Ended).Error; err != nil {
		return c, err
	}
	c.Ongoing = c.Total - c.Ended
	return c, nil
}

func (r *DBProjectRepo) Update(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) IncrementViews(id uint) error {
	return r.db.Model(&project.Project{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *DBProjectRepo) ListExpiredOpen(now time.Time) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Where("recruitment_end_date <= ? AND is_done = ?", now, false).
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{db: tx}
}
