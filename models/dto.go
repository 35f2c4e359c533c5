package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Nama     string `json:"nama" binding:"max=100"`
	Daerah   string `json:"daerah" binding:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Content payload requests carry both json and form tags: plain saves arrive
// as JSON, saves with an attached thumbnail arrive as multipart form data.

type KamusRequest struct {
	Kata         string   `json:"kata" form:"kata" binding:"required,min=1,max=100"`
	Arti         string   `json:"arti" form:"arti" binding:"required"`
	BahasaDaerah string   `json:"bahasa_daerah" form:"bahasa_daerah" binding:"required,max=100"`
	Contoh       string   `json:"contoh" form:"contoh"`
	Tags         []string `json:"tags" form:"tags"`
}

type KamusBatchRequest struct {
	Entries []KamusRequest `json:"entries" binding:"required,min=1,dive"`
	Submit  bool           `json:"submit"`
}

type CeritaRequest struct {
	Judul        string   `json:"judul" form:"judul" binding:"required,min=1,max=255"`
	Isi          string   `json:"isi" form:"isi" binding:"required"`
	BahasaDaerah string   `json:"bahasa_daerah" form:"bahasa_daerah" binding:"max=100"`
	Tags         []string `json:"tags" form:"tags"`
}

type MaknaKataRequest struct {
	Kata         string   `json:"kata" form:"kata" binding:"required,min=1,max=100"`
	Makna        string   `json:"makna" form:"makna" binding:"required"`
	BahasaDaerah string   `json:"bahasa_daerah" form:"bahasa_daerah" binding:"max=100"`
	Tags         []string `json:"tags" form:"tags"`
}

type ArtikelRequest struct {
	Judul string   `json:"judul" form:"judul" binding:"required,min=1,max=255"`
	Isi   string   `json:"isi" form:"isi" binding:"required"`
	Tags  []string `json:"tags" form:"tags"`
}

type KontenListParams struct {
	Status    string `form:"status"`
	UserID    uint   `form:"user_id"`
	TagID     uint   `form:"tag_id"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
}

type GetEmailByUsernameRequest struct {
	Username string `json:"username" binding:"required"`
}
