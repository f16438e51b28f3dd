package repository

import (
	"github.com/devpals/devpals-go/internal/domain/tag"
	"gorm.io/gorm"
)

type TagRepo interface {
	ListSkillTags() ([]tag.SkillTag, error)
	ListPositionTags() ([]tag.PositionTag, error)
	ListMethods() ([]tag.Method, error)
	GetMethodByID(id uint) (tag.Method, error)
	GetPositionTagByID(id uint) (tag.PositionTag, error)
	// CountSkillTagsByIDs / CountPositionTagsByIDs report how many of the
	// given ids exist, so callers can validate a whole set in one query.
	CountSkillTagsByIDs(ids []uint) (int64, error)
	CountPositionTagsByIDs(ids []uint) (int64, error)

	ListProjectSkillTagIDs(projectID uint) ([]uint, error)
	ListProjectPositionTagIDs(projectID uint) ([]uint, error)
	ReplaceProjectSkillTags(projectID uint, ids []uint) error
	ReplaceProjectPositionTags(projectID uint, ids []uint) error

	ListUserSkillTags(userID uint) ([]tag.SkillTag, error)
	ReplaceUserSkillTags(userID uint, ids []uint) error

	WithTx(tx *gorm.DB) TagRepo
}

type DBTagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *DBTagRepo {
	return &DBTagRepo{db: db}
}

func (r *DBTagRepo) ListSkillTags() ([]tag.SkillTag, error) {
	var tags []tag.SkillTag
	err := r.db.Find(&tags).Error
	return tags, err
}

func (r *DBTagRepo) ListPositionTags() ([]tag.PositionTag, error) {
	var tags []tag.PositionTag
	err := r.db.Find(&tags).Error
	return tags, err
}

func (r *DBTagRepo) ListMethods() ([]tag.Method, error) {
	var methods []tag.Method
	err := r.db.Find(&methods).Error
	return methods, err
}

func (r *DBTagRepo) GetMethodByID(id uint) (tag.Method, error) {
	var m tag.Method
	err := r.db.First(&m, id).Error
	return m, err
}

func (r *DBTagRepo) GetPositionTagByID(id uint) (tag.PositionTag, error) {
	var t tag.PositionTag
	err := r.db.First(&t, id).Error
	return t, err
}

func (r *DBTagRepo) CountSkillTagsByIDs(ids []uint) (int64, error) {
	var count int64
	err := r.db.Model(&tag.SkillTag{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *DBTagRepo) CountPositionTagsByIDs(ids []uint) (int64, error) {
	var count int64
	err := r.db.Model(&tag.PositionTag{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *DBTagRepo) ListProjectSkillTagIDs(projectID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&tag.ProjectSkillTag{}).
		Where("project_id = ?", projectID).
		Pluck("skill_tag_id", &ids).Error
	return ids, err
}

func (r *DBTagRepo) ListProjectPositionTagIDs(projectID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&tag.ProjectPositionTag{}).
		Where("project_id = ?", projectID).
		Pluck("position_tag_id", &ids).Error
	return ids, err
}

func (r *DBTagRepo) ReplaceProjectSkillTags(projectID uint, ids []uint) error {
	if err := r.db.Where("project_id = ?", projectID).
		Delete(&tag.ProjectSkillTag{}).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	links := make([]tag.ProjectSkillTag, 0, len(ids))
	for _, id := range ids {
		links = append(links, tag.ProjectSkillTag{ProjectID: projectID, SkillTagID: id})
	}
	return r.db.Create(&links).Error
}

func (r *DBTagRepo) ReplaceProjectPositionTags(projectID uint, ids []uint) error {
	if err := r.db.Where("project_id = ?", projectID).
		Delete(&tag.ProjectPositionTag{}).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	links := make([]tag.ProjectPositionTag, 0, len(ids))
	for _, id := range ids {
		links = append(links, tag.ProjectPositionTag{ProjectID: projectID, PositionTagID: id})
	}
	return r.db.Create(&links).Error
}

func (r *DBTagRepo) ListUserSkillTags(userID uint) ([]tag.SkillTag, error) {
	var tags []tag.SkillTag
	err := r.db.Table("skill_tags st").
		Joins("JOIN user_skill_tags ust ON ust.skill_tag_id = st.id").
		Where("ust.user_id = ?", userID).
		Scan(&tags).Error
	return tags, err
}

func (r *DBTagRepo) ReplaceUserSkillTags(userID uint, ids []uint) error {
	if err := r.db.Where("user_id = ?", userID).
		Delete(&tag.UserSkillTag{}).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	links := make([]tag.UserSkillTag, 0, len(ids))
	for _, id := range ids {
		links = append(links, tag.UserSkillTag{UserID: userID, SkillTagID: id})
	}
	return r.db.Create(&links).Error
}

func (r *DBTagRepo) WithTx(tx *gorm.DB) TagRepo {
	if tx == nil {
		return r
	}
	return &DBTagRepo{db: tx}
}
