package models

import "doctors-portal-service/internal/pkg/dto/responses"

// UpdateOutcome is the store's acknowledgement of an update or upsert.
type UpdateOutcome struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedCount int64
	UpsertedID    string
}

func (u UpdateOutcome) ConvertIntoResponse() responses.UpdateResult {
	return responses.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  u.MatchedCount,
		ModifiedCount: u.ModifiedCount,
		UpsertedCount: u.UpsertedCount,
		UpsertedID:    u.UpsertedID,
	}
}
