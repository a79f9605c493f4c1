package cancel_job

import "github.com/urbanseva/booking-service/internal/service/jobs/models"

type CancelJobRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

func (r *CancelJobRequest) ToServiceRequest(userID int64) *models.CancelJobRequest {
	return &models.CancelJobRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
