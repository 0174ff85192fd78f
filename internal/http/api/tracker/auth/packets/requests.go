package packets

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateCurrentProfileRequest struct {
	Name string `json:"name" binding:"required"`
}
