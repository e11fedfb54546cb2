package dto

type UpdateSubscriptionRequest struct {
	Tier string `json:"tier" binding:"required,oneof=BASELINE PROMOTION"`
}

type UpdateSettingsRequest struct {
	ReviewMode *bool `json:"review_mode"`
}
