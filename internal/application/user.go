package application

import (
	"context"
	"errors"
	"time"

	"github.com/devpals/devpals-go/internal/api/middleware"
	"github.com/devpals/devpals-go/internal/apperr"
	"github.com/devpals/devpals-go/internal/domain/user"
	"github.com/devpals/devpals-go/internal/repository"
	"github.com/devpals/devpals-go/internal/storage"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = apperr.NotFound("user not found")
	ErrNicknameTaken      = apperr.Conflict("nickname already taken")
	ErrEmailTaken         = apperr.Conflict("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct {
	Repos  *repository.Repos
	images storage.ImageStore
}

func NewUserService(repos *repository.Repos, images storage.ImageStore) *UserService {
	return &UserService{
		Repos:  repos,
		images: images,
	}
}

func (s *UserService) Register(input user.SignupDTO) error {
	if _, err := s.Repos.User.GetByNickname(input.Nickname); err == nil {
		return ErrNicknameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if _, err := s.Repos.User.GetByEmail(input.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.Repos.User.Create(&user.User{
		Nickname: input.Nickname,
		Email:    input.Email,
		Password: string(hashed),
	})
}

func (s *UserService) Login(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetByEmail(email)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Nickname, 24*time.Hour)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) NicknameAvailable(nickname string) (bool, error) {
	_, err := s.Repos.User.GetByNickname(nickname)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	return false, err
}

func (s *UserService) EmailAvailable(email string) (bool, error) {
	_, err := s.Repos.User.GetByEmail(email)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	return false, err
}

// MyInfo resolves the profile together with its tag names.
func (s *UserService) MyInfo(userID uint) (*user.MyInfo, error) {
	usr, err := s.Repos.User.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	info := &user.MyInfo{User: usr, SkillTags: []string{}}
	if usr.PositionTagID != nil {
		if pt, err := s.Repos.Tag.GetPositionTagByID(*usr.PositionTagID); err == nil {
			info.PositionTagName = pt.Name
		}
	}
	skills, err := s.Repos.Tag.ListUserSkillTags(userID)
	if err != nil {
		return nil, err
	}
	for _, st := range skills {
		info.SkillTags = append(info.SkillTags, st.Name)
	}
	return info, nil
}

// UpdateProfile applies a partial profile edit. The skill-tag list, when
// present, is a replace-set swapped inside the same transaction as the
// field update.
func (s *UserService) UpdateProfile(userID uint, input user.UpdateUserDTO) (*user.User, error) {
	usr, err := s.Repos.User.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if input.Nickname != nil && *input.Nickname != usr.Nickname {
		if _, err := s.Repos.User.GetByNickname(*input.Nickname); err == nil {
			return nil, ErrNicknameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		usr.Nickname = *input.Nickname
	}
	if input.Bio != nil {
		usr.Bio = input.Bio
	}
	if input.PositionTagID != nil {
		if _, err := s.Repos.Tag.GetPositionTagByID(*input.PositionTagID); err != nil {
			return nil, ErrPositionTagNotFound
		}
		usr.PositionTagID = input.PositionTagID
	}
	if input.SkillTagIDs != nil {
		ids := dedupe(input.SkillTagIDs)
		count, err := s.Repos.Tag.CountSkillTagsByIDs(ids)
		if err != nil {
			return nil, err
		}
		if count != int64(len(ids)) {
			return nil, ErrSkillTagNotFound
		}
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.User.Update(&usr); err != nil {
			return err
		}
		if input.SkillTagIDs != nil {
			return tx.Tag.ReplaceUserSkillTags(userID, input.SkillTagIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &usr, nil
}

func (s *UserService) UpdateProfileImage(ctx context.Context, userID uint, data []byte, contentType string) (*user.User, error) {
	usr, err := s.Repos.User.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	url, err := s.images.UploadProfileImage(ctx, userID, data, contentType)
	if err != nil {
		return nil, err
	}

	usr.ProfileImg = &url
	if err := s.Repos.User.Update(&usr); err != nil {
		return nil, err
	}
	return &usr, nil
}
