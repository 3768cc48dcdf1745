package timeclock

import (
	"childcare-center-backend/internal/global/database"
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/internal/model"
	"childcare-center-backend/test"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doWithID 带路径参数 id 调用 handler
func doWithID(t *testing.T, handlerFunc gin.HandlerFunc, id string) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/test", nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

func TestDeletePunchNotFound(t *testing.T) {
	database.DB = test.NewDB(t, &model.Employee{}, &model.Punch{})

	// 删除不存在的记录必须报 404，不能静默成功
	resp := doWithID(t, DeletePunch, "9999")
	test.CodeEqual(t, response.ErrNotFound, resp)
}

func TestDeletePunchRemovesRecord(t *testing.T) {
	database.DB = test.NewDB(t, &model.Employee{}, &model.Punch{})
	punch := model.Punch{EmployeeID: 1, StartTime: time.Now(), EntryType: model.EntryTypeShift}
	require.NoError(t, database.DB.Create(&punch).Error)

	resp := doWithID(t, DeletePunch, "1")
	test.NoError(t, resp)

	var count int64
	require.NoError(t, database.DB.Model(&model.Punch{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestInsertPunchRequiresLogin(t *testing.T) {
	start := time.Now()
	resp := test.DoRequest(t, InsertPunch, PunchInsertRequest{EmployeeID: 1, StartTime: &start})
	test.ErrorEqual(t, response.ErrUnauthorized, resp)
}
