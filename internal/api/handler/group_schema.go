package handler

// Validation rules mirror the boundary contract: group names are capped
// at 255 characters and every referenced id must be a positive integer.

type createGroupRequest struct {
	Name    string  `json:"name"    validate:"required,max=255"`
	UserIDs []int64 `json:"userIds" validate:"dive,gt=0"`
}

type addUsersRequest struct {
	UserIDs []int64 `json:"userIds" validate:"dive,gt=0"`
}

type addDocumentsRequest struct {
	DocumentIDs []int64 `json:"documentIds" validate:"dive,gt=0"`
}
