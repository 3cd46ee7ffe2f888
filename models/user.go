// File: /models/user.go
package models

type User struct {
	UserID          int    `json:"user_id"`
	Email           string `json:"email"`
	Password        string `json:"-"`
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url"`
}

// UserPublic is the login payload: a user without the password
type UserPublic struct {
	UserID          int    `json:"user_id"`
	Email           string `json:"email"`
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url"`
}

// UserProfile is what GET /users/:id/profile returns
type UserProfile struct {
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

func (u User) ToPublic() UserPublic {
	return UserPublic{
		UserID:          u.UserID,
		Email:           u.Email,
		Nickname:        u.Nickname,
		ProfileImageURL: u.ProfileImageURL,
	}
}

func (u User) ToProfile() UserProfile {
	return UserProfile{
		ImageURL: u.ProfileImageURL,
		Email:    u.Email,
		Nickname: u.Nickname,
	}
}
