package application

import (
	"github.com/devpals/devpals-go/internal/domain/tag"
	"github.com/devpals/devpals-go/internal/repository"
)

// TagService serves the static pick lists.
type TagService struct {
	Repos *repository.Repos
}

func NewTagService(repos *repository.Repos) *TagService {
	return &TagService{Repos: repos}
}

func (s *TagService) ListSkillTags() ([]tag.SkillTag, error) {
	return s.Repos.Tag.ListSkillTags()
}

func (s *TagService) ListPositionTags() ([]tag.PositionTag, error) {
	return s.Repos.Tag.ListPositionTags()
}

func (s *TagService) ListMethods() ([]tag.Method, error) {
	return s.Repos.Tag.ListMethods()
}
