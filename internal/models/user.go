package models

// UserType represents what kind of account a user registered as
type UserType string

const (
	UserTypeTourist UserType = "tourist"
	UserTypeDriver  UserType = "driver"
	UserTypeGuide   UserType = "guide"
)

// ValidUserTypes maps the account types accepted at registration.
// The type is fixed at sign-up and never changes afterwards.
var ValidUserTypes = map[UserType]bool{
	UserTypeTourist: true,
	UserTypeDriver:  true,
	UserTypeGuide:   true,
}

type User struct {
	ID        string   `json:"id" db:"id"`
	Email     string   `json:"email" db:"email"`
	Password  string   `json:"-" db:"password"` // Never return password in JSON
	FullName  string   `json:"full_name" db:"full_name"`
	Phone     *string  `json:"phone" db:"phone"`
	AvatarURL *string  `json:"avatar_url" db:"avatar_url"`
	UserType  UserType `json:"user_type" db:"user_type"`
	CreatedAt int64    `json:"created_at" db:"created_at"`
	UpdatedAt int64    `json:"updated_at" db:"updated_at"`
}

// Profile is the public view of a user returned to clients.
type Profile struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FullName  string   `json:"full_name"`
	Phone     *string  `json:"phone"`
	AvatarURL *string  `json:"avatar_url"`
	UserType  UserType `json:"user_type"`
	CreatedAt int64    `json:"created_at"`
}

func (u *User) ToProfile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
		UserType:  u.UserType,
		CreatedAt: u.CreatedAt,
	}
}

// FCMToken represents a Firebase Cloud Messaging token for a user
type FCMToken struct {
	ID         int    `json:"id" db:"id"`
	UserID     string `json:"user_id" db:"user_id"`
	Token      string `json:"token" db:"token"`
	DeviceType string `json:"device_type" db:"device_type"` // "ios" or "android"
	CreatedAt  int64  `json:"created_at" db:"created_at"`
	UpdatedAt  int64  `json:"updated_at" db:"updated_at"`
}
