package user

type SignupDTO struct {
	Nickname string `json:"nickname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserDTO is a partial profile update. SkillTagIDs is a replace-set,
// applied only when present.
type UpdateUserDTO struct {
	Nickname      *string `json:"nickname,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	PositionTagID *uint   `json:"positionTagId,omitempty"`
	SkillTagIDs   []uint  `json:"skillTagId,omitempty"`
}

// MyInfo is the profile readback with resolved tag names.
type MyInfo struct {
	User
	PositionTagName string   `json:"positionTagName,omitempty"`
	SkillTags       []string `json:"skillTags"`
}
