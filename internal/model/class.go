package model

// Class предложение преподавателя по одному предмету
type Class struct {
	ID      int64   `json:"id"`
	Subject string  `json:"subject"`
	Cost    float64 `json:"cost"`
	UserID  int64   `json:"user_id"`
}

// ClassListing строка результата поиска: поля класса и его владельца
type ClassListing struct {
	ID       int64   `json:"id"` // id класса
	Subject  string  `json:"subject"`
	Cost     float64 `json:"cost"`
	UserID   int64   `json:"user_id"`
	Name     string  `json:"name"`
	Avatar   string  `json:"avatar"`
	Whatsapp string  `json:"whatsapp"`
	Bio      string  `json:"bio"`
}
