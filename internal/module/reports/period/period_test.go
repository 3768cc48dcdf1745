package period

import (
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/test"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestReportRejectsInvertedRange(t *testing.T) {
	resp := test.DoGet(t, Report, "start_date=2024-06-09&end_date=2024-06-03")
	test.CodeEqual(t, response.ErrInvalidRequest, resp)
}

func TestReportRejectsBadDate(t *testing.T) {
	resp := test.DoGet(t, Report, "start_date=06/03/2024")
	test.CodeEqual(t, response.ErrInvalidRequest, resp)

	resp = test.DoGet(t, Report, "start_date=2024-06-03&end_date=昨天")
	test.CodeEqual(t, response.ErrInvalidRequest, resp)
}

func TestParseRangeSingleSide(t *testing.T) {
	// 只给一端时另一端等于它，汇总单日
	resp := test.DoGet(t, func(c *gin.Context) {
		start, end, failErr := parseRange(c)
		assert.Nil(t, failErr)
		assert.True(t, start.Equal(end))
		response.Success(c, nil)
	}, "start_date=2024-06-05")
	test.NoError(t, resp)
}
