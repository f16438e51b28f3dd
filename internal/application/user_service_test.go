package application

import (
	"testing"
	"time"

	"github.com/devpals/devpals-go/internal/api/middleware"
	"github.com/devpals/devpals-go/internal/domain/tag"
	"github.com/devpals/devpals-go/internal/domain/user"
	"github.com/devpals/devpals-go/internal/repository"
	"github.com/devpals/devpals-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserServiceForTest(t *testing.T) (*UserService, *mock.MockUserRepo, *mock.MockTagRepo) {
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepo(ctrl)
	tagRepo := mock.NewMockTagRepo(ctrl)

	svc := NewUserService(&repository.Repos{
		User: userRepo,
		Tag:  tagRepo,
	}, nil)
	return svc, userRepo, tagRepo
}

func TestRegister(t *testing.T) {
	input := user.SignupDTO{Nickname: "dev", Email: "dev@test.dev", Password: "secret123"}

	t.Run("hashes the password before storing", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceForTest(t)

		userRepo.EXPECT().GetByNickname("dev").Return(user.User{}, gorm.ErrRecordNotFound)
		userRepo.EXPECT().GetByEmail("dev@test.dev").Return(user.User{}, gorm.ErrRecordNotFound)
		userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *user.User) error {
			assert.NotEqual(t, "secret123", u.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
			return nil
		})

		assert.NoError(t, svc.Register(input))
	})

	t.Run("taken nickname conflicts", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceForTest(t)

		userRepo.EXPECT().GetByNickname("dev").Return(user.User{ID: 1}, nil)

		assert.ErrorIs(t, svc.Register(input), ErrNicknameTaken)
	})

	t.Run("taken email conflicts", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceForTest(t)

		userRepo.EXPECT().GetByNickname("dev").Return(user.User{}, gorm.ErrRecordNotFound)
		userRepo.EXPECT().GetByEmail("dev@test.dev").Return(user.User{ID: 1}, nil)

		assert.ErrorIs(t, svc.Register(input), ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stored := user.User{ID: 1, Nickname: "dev", Email: "dev@test.dev", Password: string(hashed)}

	origGenerate := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, nickname string, expireDuration time.Duration) (string, error) {
		return "test-token", nil
	}
	t.Cleanup(func() { middleware.GenerateToken = origGenerate })

	t.Run("returns a token on valid credentials", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceForTest(t)

		userRepo.EXPECT().GetByEmail("dev@test.dev").Return(stored, nil)

		usr, token, err := svc.Login("dev@test.dev", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "test-token", token)
		assert.Equal(t, uint(1), usr.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceForTest(t)

		userRepo.EXPECT().GetByEmail("dev@test.dev").Return(stored, nil)

		_, _, err := svc.Login("dev@test.dev", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email looks identical to a wrong password", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceForTest(t)

		userRepo.EXPECT().GetByEmail("ghost@test.dev").Return(user.User{}, gorm.ErrRecordNotFound)

		_, _, err := svc.Login("ghost@test.dev", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("replaces the skill tag set with the profile fields", func(t *testing.T) {
		svc, userRepo, tagRepo := newUserServiceForTest(t)

		userRepo.EXPECT().GetByID(uint(1)).Return(user.User{ID: 1, Nickname: "dev"}, nil)
		tagRepo.EXPECT().CountSkillTagsByIDs([]uint{1, 2}).Return(int64(2), nil)
		userRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *user.User) error {
			assert.Equal(t, "gopher", u.Nickname)
			return nil
		})
		userRepo.EXPECT().GetByNickname("gopher").Return(user.User{}, gorm.ErrRecordNotFound)
		tagRepo.EXPECT().ReplaceUserSkillTags(uint(1), []uint{1, 2}).Return(nil)

		nickname := "gopher"
		usr, err := svc.UpdateProfile(1, user.UpdateUserDTO{
			Nickname:    &nickname,
			SkillTagIDs: []uint{1, 2},
		})
		require.NoError(t, err)
		assert.Equal(t, "gopher", usr.Nickname)
	})

	t.Run("unknown skill tag rejects the whole edit", func(t *testing.T) {
		svc, userRepo, tagRepo := newUserServiceForTest(t)

		userRepo.EXPECT().GetByID(uint(1)).Return(user.User{ID: 1, Nickname: "dev"}, nil)
		tagRepo.EXPECT().CountSkillTagsByIDs([]uint{1, 99}).Return(int64(1), nil)

		_, err := svc.UpdateProfile(1, user.UpdateUserDTO{SkillTagIDs: []uint{1, 99}})
		assert.ErrorIs(t, err, ErrSkillTagNotFound)
	})
}

func TestMyInfo(t *testing.T) {
	svc, userRepo, tagRepo := newUserServiceForTest(t)

	position := uint(3)
	userRepo.EXPECT().GetByID(uint(1)).Return(user.User{ID: 1, Nickname: "dev", PositionTagID: &position}, nil)
	tagRepo.EXPECT().GetPositionTagByID(uint(3)).Return(tag.PositionTag{ID: 3, Name: "Backend"}, nil)
	tagRepo.EXPECT().ListUserSkillTags(uint(1)).Return([]tag.SkillTag{{ID: 1, Name: "Go"}}, nil)

	info, err := svc.MyInfo(1)
	require.NoError(t, err)
	assert.Equal(t, "Backend", info.PositionTagName)
	assert.Equal(t, []string{"Go"}, info.SkillTags)
}
