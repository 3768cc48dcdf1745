package daily

import (
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/test"
	"testing"
)

func TestSummaryRejectsBadDate(t *testing.T) {
	resp := test.DoGet(t, Summary, "date=05-06-2024")
	test.CodeEqual(t, response.ErrInvalidRequest, resp)
}
