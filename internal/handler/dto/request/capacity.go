package request

type HistoryQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=365"`
}

type SpecAvailabilityQuery struct {
	MaxPax int `form:"max_pax" binding:"required,oneof=2 4 6 8"`
	Stays  int `form:"stays" binding:"required,min=1,max=4"`
}

type RecommendQuery struct {
	PartySize int `form:"party_size" binding:"required,min=1"`
	Stays     int `form:"stays" binding:"omitempty,min=1"`
}

type JoinWaitlistRequest struct {
	Email        string `json:"email" binding:"required,email"`
	PartySize    int    `json:"party_size" binding:"required,min=1"`
	DesiredStays int    `json:"desired_stays" binding:"required,min=1,max=4"`
}

type SetProductSalesRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
