package pin

import (
	"childcare-center-backend/internal/model"
	"childcare-center-backend/test"
	"errors"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPinDB(t *testing.T) *gorm.DB {
	return test.NewDB(t, &model.Employee{}, &model.Parent{}, &model.KioskPin{})
}

func pinPtr(s string) *string { return &s }

func TestNormalize(t *testing.T) {
	raw := " 1234 "
	got := Normalize(&raw)
	assert.NotNil(t, got)
	assert.Equal(t, "1234", *got)

	empty := "   "
	assert.Nil(t, Normalize(&empty)) // 空串表示不设置 PIN
	assert.Nil(t, Normalize(nil))
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, IsDuplicate(&mysqldriver.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.True(t, IsDuplicate(gorm.ErrDuplicatedKey))
	assert.False(t, IsDuplicate(&mysqldriver.MySQLError{Number: 1452}))
	assert.False(t, IsDuplicate(errors.New("network down")))
	assert.False(t, IsDuplicate(nil))
}

func TestAvailableCrossPool(t *testing.T) {
	db := newPinDB(t)
	require.NoError(t, db.Create(&model.Parent{
		Name: "李家长", Phone: "13800000001", Password: "x", PinCode: pinPtr("1234"),
	}).Error)

	// 家长已占用的 PIN，员工侧预检同样要报冲突
	ok, err := Available(db, "1234", OwnerEmployee, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Available(db, "5678", OwnerEmployee, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAvailableExcludesSelfPoolOnly(t *testing.T) {
	db := newPinDB(t)
	emp := model.Employee{Name: "张老师", Username: "zhang", Password: "x", PinCode: pinPtr("1234")}
	require.NoError(t, db.Create(&emp).Error)
	parent := model.Parent{Name: "李家长", Phone: "13800000002", Password: "x", PinCode: pinPtr("9999")}
	require.NoError(t, db.Create(&parent).Error)

	// 更新自己时排除自身持有的 PIN
	ok, err := Available(db, "1234", OwnerEmployee, emp.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// 同一 excludeID 豁免不了另一个池子里的占用
	require.Equal(t, emp.ID, parent.ID) // 两张表各自从 1 编号
	ok, err = Available(db, "9999", OwnerEmployee, emp.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAssignUniqueIndexIsAuthority(t *testing.T) {
	db := newPinDB(t)
	require.NoError(t, Assign(db, OwnerEmployee, 1, pinPtr("1234")))

	// 预检漏掉的并发抢占由唯一索引兜底
	err := Assign(db, OwnerParent, 2, pinPtr("1234"))
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))

	// 原持有者解绑后才能重新占用
	require.NoError(t, Assign(db, OwnerEmployee, 1, nil))
	require.NoError(t, Assign(db, OwnerParent, 2, pinPtr("1234")))
}
