package transport

import "github.com/jaiswalarts/artshop/internal/models"

type UserCreate struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,max=72"`
}

type AdminCreate struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,max=72"`
}

// Login only requires presence; a malformed email fails like an unknown one.
type Login struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProductForm is the multipart body of the add-product endpoint; the image
// travels as a separate file part.
type ProductForm struct {
	Name          string   `form:"name"           validate:"required"`
	Artist        string   `form:"artist"         validate:"required"`
	Description   string   `form:"description"    validate:"required"`
	OriginalPrice *float64 `form:"original_price" validate:"required,gte=0"`
	CurrentPrice  *float64 `form:"current_price"  validate:"required,gte=0"`
	Category      string   `form:"category"       validate:"required"`
	Shape         string   `form:"shape"`
}

type OrderRequest struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

type UserResponse struct {
	ID        uint   `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Firstname: u.Firstname, Lastname: u.Lastname, Email: u.Email}
}

type AdminResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func NewAdminResponse(a *models.Admin) AdminResponse {
	return AdminResponse{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName, Email: a.Email}
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SearchResponse struct {
	Total int64            `json:"total"`
	Items []models.Product `json:"items"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
}
