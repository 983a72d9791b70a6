package party

import "ElectionAssistant/pkg/response"

var (
	ErrPartyNotFound         = response.NewError(404, "party not found")
	ErrUnknownDatasetSource  = response.NewError(500, "unknown dataset source")
	ErrDatasetPathRequired   = response.NewError(500, "dataset path required")
	ErrDatasetLoadFailed     = response.NewError(500, "failed to load dataset")
	ErrRepositoryUnavailable = response.NewError(500, "party repository unavailable")
)
