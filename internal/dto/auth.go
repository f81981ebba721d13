package dto

type RegisterRequestDTO struct {
	Login        string `json:"login" example:"user@example.com"`
	Password     string `json:"password" example:"password123"`
	Phone        string `json:"phone" example:"+254700000000"`
	ReferralCode string `json:"referral_code,omitempty" example:"A1B2C3D4E5"`
}

type RegisterResponseDTO struct {
	Message      string `json:"message" example:"User successfully registered"`
	ReferralCode string `json:"referral_code" example:"A1B2C3D4E5"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"user@example.com"`
	Password string `json:"password" example:"password123"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
}
