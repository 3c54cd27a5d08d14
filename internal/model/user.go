package model

// User 用户表 — 对应 users
type User struct {
	UserID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email           string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash    string `gorm:"type:varchar(255);not null"                     json:"-"`
	FirstName       string `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName        string `gorm:"type:varchar(100);not null;default:''"          json:"last_name"`
	ProfileImageURL string `gorm:"type:varchar(500);not null;default:''"          json:"profile_image_url"`
	Department      string `gorm:"type:varchar(100);not null;default:''"          json:"department"`
	Role            string `gorm:"type:varchar(20);not null;default:'worker'"     json:"role"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// FullName 拼接显示姓名
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
