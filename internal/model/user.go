package model

// User преподаватель, зарегистрированный вместе со своим классом
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Whatsapp string `json:"whatsapp"`
	Bio      string `json:"bio"`
}
