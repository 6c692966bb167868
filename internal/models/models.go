package models

type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"        json:"id"`
	Name          string  `gorm:"not null"                        json:"name"`
	Artist        string  `gorm:"not null"                        json:"artist"`
	Description   string  `gorm:"not null"                        json:"description"`
	Category      string  `gorm:"not null;index"                  json:"category"`
	OriginalPrice float64 `gorm:"not null"                        json:"original_price"`
	CurrentPrice  float64 `gorm:"not null"                        json:"current_price"`
	ImageURL      string  `gorm:"not null"                        json:"image_url"`
	Rating        float64 `gorm:"not null;default:0"              json:"rating"`
	Stock         int     `gorm:"not null;default:0"              json:"stock"`
	Slug          string  `gorm:"not null;uniqueIndex"            json:"slug"`
	Shape         *string `json:"shape"`
}

type User struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Firstname      string `gorm:"not null"                 json:"firstname"`
	Lastname       string `gorm:"not null"                 json:"lastname"`
	Email          string `gorm:"uniqueIndex;not null"     json:"email"`
	HashedPassword string `gorm:"not null"                 json:"-"`
}

type Admin struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string `gorm:"not null"                 json:"first_name"`
	LastName       string `gorm:"not null"                 json:"last_name"`
	Email          string `gorm:"uniqueIndex;not null"     json:"email"`
	HashedPassword string `gorm:"not null"                 json:"-"`
}

// All lists every persisted entity, in migration order.
func All() []any {
	return []any{&Product{}, &User{}, &Admin{}}
}
